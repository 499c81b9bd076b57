package mctext

// KeybindText is a node whose content is the client-side name of a key
// binding.
type KeybindText struct {
	style
	keybind string
}

func (t *KeybindText) Keybind() string { return t.keybind }

func (t *KeybindText) Equal(other Text) bool {
	o, ok := other.(*KeybindText)
	return ok && t.keybind == o.keybind && t.style.equal(&o.style)
}

func (t *KeybindText) ToBuilder() *KeybindBuilder {
	b := Keybind(t.keybind)
	b.restore(&t.style)
	return b
}

type KeybindBuilder struct {
	styleBuilder[*KeybindBuilder]
	keybind string
}

// Keybind returns a builder for a keybind text node.
func Keybind(keybind string) *KeybindBuilder {
	b := &KeybindBuilder{keybind: keybind}
	b.init(b)
	return b
}

func (b *KeybindBuilder) Keybind(keybind string) *KeybindBuilder {
	b.keybind = keybind
	return b
}

func (b *KeybindBuilder) Build() *KeybindText {
	return &KeybindText{style: b.snapshot(), keybind: b.keybind}
}
