package mctext

// LiteralText is a node whose content is a plain string.
type LiteralText struct {
	style
	content string
}

func (t *LiteralText) Content() string { return t.content }

func (t *LiteralText) Equal(other Text) bool {
	o, ok := other.(*LiteralText)
	return ok && t.content == o.content && t.style.equal(&o.style)
}

func (t *LiteralText) ToBuilder() *LiteralBuilder {
	b := Literal(t.content)
	b.restore(&t.style)
	return b
}

type LiteralBuilder struct {
	styleBuilder[*LiteralBuilder]
	content string
}

// Literal returns a builder for a literal text node with the given content.
func Literal(content string) *LiteralBuilder {
	b := &LiteralBuilder{content: content}
	b.init(b)
	return b
}

func (b *LiteralBuilder) Content(content string) *LiteralBuilder {
	b.content = content
	return b
}

func (b *LiteralBuilder) Build() *LiteralText {
	return &LiteralText{style: b.snapshot(), content: b.content}
}
