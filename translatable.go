package mctext

// TranslatableText is a node whose content is a translation key, optionally
// parameterised by further text nodes.
type TranslatableText struct {
	style
	key  string
	args []Text
}

func (t *TranslatableText) Key() string { return t.key }

func (t *TranslatableText) Args() []Text {
	return append([]Text(nil), t.args...)
}

func (t *TranslatableText) HasArguments() bool { return len(t.args) > 0 }

func (t *TranslatableText) Equal(other Text) bool {
	o, ok := other.(*TranslatableText)
	if !ok || t.key != o.key || len(t.args) != len(o.args) {
		return false
	}
	for i := range t.args {
		if !t.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return t.style.equal(&o.style)
}

func (t *TranslatableText) ToBuilder() *TranslatableBuilder {
	b := Translatable(t.key, t.args...)
	b.restore(&t.style)
	return b
}

type TranslatableBuilder struct {
	styleBuilder[*TranslatableBuilder]
	key  string
	args []Text
}

// Translatable returns a builder for a translatable text node with the given
// translation key and arguments.
func Translatable(key string, args ...Text) *TranslatableBuilder {
	b := &TranslatableBuilder{key: key, args: append([]Text(nil), args...)}
	b.init(b)
	return b
}

func (b *TranslatableBuilder) Key(key string) *TranslatableBuilder {
	b.key = key
	return b
}

func (b *TranslatableBuilder) Argument(args ...Text) *TranslatableBuilder {
	b.args = append(b.args, args...)
	return b
}

func (b *TranslatableBuilder) Build() *TranslatableText {
	return &TranslatableText{
		style: b.snapshot(),
		key:   b.key,
		args:  append([]Text(nil), b.args...),
	}
}
