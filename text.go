package mctext

// Text is a single node of a chat text tree. The variant set is closed:
// *LiteralText, *TranslatableText and *KeybindText are the only
// implementations. Nodes are immutable once built; use the variant builders
// (or ToBuilder on a node) to derive new ones.
type Text interface {
	Decorations() map[Decoration]bool
	Decoration(d Decoration) State
	HasDecoration(d Decoration) bool
	Bold() bool
	Italic() bool
	Underlined() bool
	Strikethrough() bool
	Obfuscated() bool
	Colour() Colour
	Insertion() (string, bool)
	ClickEvent() (ClickEvent, bool)
	HoverEvent() (HoverEvent, bool)
	Children() []Text
	HasChildren() bool
	Contains(t Text) bool
	Equal(t Text) bool

	isText()
}

// State is the tri-state value of a decoration on a node: explicitly on,
// explicitly off, or unset (inherited from the parent).
type State int8

const (
	StateUnset State = iota
	StateTrue
	StateFalse
)

func (s State) String() string {
	switch s {
	case StateTrue:
		return "true"
	case StateFalse:
		return "false"
	default:
		return "unset"
	}
}

type style struct {
	decorations map[Decoration]bool
	colour      Colour
	insertion   *string
	click       *ClickEvent
	hover       *HoverEvent
	children    []Text
}

func (*style) isText() {}

func (s *style) Decorations() map[Decoration]bool {
	out := make(map[Decoration]bool, len(s.decorations))
	for d, active := range s.decorations {
		out[d] = active
	}
	return out
}

func (s *style) Decoration(d Decoration) State {
	active, ok := s.decorations[d]
	switch {
	case !ok:
		return StateUnset
	case active:
		return StateTrue
	default:
		return StateFalse
	}
}

func (s *style) HasDecoration(d Decoration) bool { return s.decorations[d] }

func (s *style) Bold() bool          { return s.HasDecoration(Bold) }
func (s *style) Italic() bool        { return s.HasDecoration(Italic) }
func (s *style) Underlined() bool    { return s.HasDecoration(Underlined) }
func (s *style) Strikethrough() bool { return s.HasDecoration(Strikethrough) }
func (s *style) Obfuscated() bool    { return s.HasDecoration(Obfuscated) }

func (s *style) Colour() Colour { return s.colour }

func (s *style) Insertion() (string, bool) {
	if s.insertion == nil {
		return "", false
	}
	return *s.insertion, true
}

func (s *style) ClickEvent() (ClickEvent, bool) {
	if s.click == nil {
		return ClickEvent{}, false
	}
	return *s.click, true
}

func (s *style) HoverEvent() (HoverEvent, bool) {
	if s.hover == nil {
		return HoverEvent{}, false
	}
	return *s.hover, true
}

func (s *style) Children() []Text {
	return append([]Text(nil), s.children...)
}

func (s *style) HasChildren() bool { return len(s.children) > 0 }

func (s *style) Contains(t Text) bool {
	for _, child := range s.children {
		if child.Equal(t) {
			return true
		}
	}
	return false
}

func (s *style) equal(o *style) bool {
	if len(s.decorations) != len(o.decorations) || s.colour != o.colour {
		return false
	}
	for d, active := range s.decorations {
		other, ok := o.decorations[d]
		if !ok || other != active {
			return false
		}
	}
	if (s.insertion == nil) != (o.insertion == nil) {
		return false
	}
	if s.insertion != nil && *s.insertion != *o.insertion {
		return false
	}
	if (s.click == nil) != (o.click == nil) {
		return false
	}
	if s.click != nil && !s.click.Equal(*o.click) {
		return false
	}
	if (s.hover == nil) != (o.hover == nil) {
		return false
	}
	if s.hover != nil && !s.hover.Equal(*o.hover) {
		return false
	}
	if len(s.children) != len(o.children) {
		return false
	}
	for i := range s.children {
		if !s.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}
