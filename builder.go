package mctext

// styleBuilder is the shared operation set of the three variant builders.
// The type parameter is the concrete builder so that chaining keeps the
// variant-specific methods available.
type styleBuilder[B any] struct {
	self        B
	decorations map[Decoration]bool
	colour      Colour
	insertion   *string
	click       *ClickEvent
	hover       *HoverEvent
	children    []Text
}

func (b *styleBuilder[B]) init(self B) {
	b.self = self
	b.decorations = make(map[Decoration]bool)
	b.colour = None
}

// Decorate records an explicit on/off opinion for d, or removes the entry
// when s is StateUnset. Applying Reset instead clears every recorded
// decoration and resets the colour to None; Reset is never stored.
func (b *styleBuilder[B]) Decorate(d Decoration, s State) B {
	switch {
	case d == Reset:
		clear(b.decorations)
		b.colour = None
	case s == StateUnset:
		delete(b.decorations, d)
	default:
		b.decorations[d] = s == StateTrue
	}
	return b.self
}

func (b *styleBuilder[B]) Apply(d Decoration) B   { return b.Decorate(d, StateTrue) }
func (b *styleBuilder[B]) Unapply(d Decoration) B { return b.Decorate(d, StateFalse) }

func (b *styleBuilder[B]) Colour(c Colour) B {
	b.colour = c
	return b.self
}

func (b *styleBuilder[B]) Insertion(insertion string) B {
	b.insertion = &insertion
	return b.self
}

func (b *styleBuilder[B]) Click(e ClickEvent) B {
	b.click = &e
	return b.self
}

func (b *styleBuilder[B]) Hover(e HoverEvent) B {
	b.hover = &e
	return b.self
}

func (b *styleBuilder[B]) Append(children ...Text) B {
	b.children = append(b.children, children...)
	return b.self
}

// snapshot copies the accumulated state so that further builder calls cannot
// reach into an already built node.
func (b *styleBuilder[B]) snapshot() style {
	st := style{
		decorations: make(map[Decoration]bool, len(b.decorations)),
		colour:      b.colour,
		insertion:   b.insertion,
		click:       b.click,
		hover:       b.hover,
		children:    append([]Text(nil), b.children...),
	}
	for d, active := range b.decorations {
		st.decorations[d] = active
	}
	return st
}

func (b *styleBuilder[B]) restore(st *style) {
	for d, active := range st.decorations {
		b.decorations[d] = active
	}
	b.colour = st.colour
	b.insertion = st.insertion
	b.click = st.click
	b.hover = st.hover
	b.children = append(b.children, st.children...)
}
