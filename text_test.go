package mctext

import "testing"

func TestBuilderResetClearsStyle(t *testing.T) {
	text := Literal("hi").
		Apply(Bold).
		Unapply(Italic).
		Colour(Red).
		Apply(Reset).
		Build()

	if got := len(text.Decorations()); got != 0 {
		t.Fatalf("expected no decorations after reset, got %d", got)
	}
	if text.Colour() != None {
		t.Fatalf("expected colour none after reset, got %s", text.Colour())
	}
}

func TestBuilderResetIsNotStored(t *testing.T) {
	text := Literal("hi").Apply(Reset).Build()

	if text.Decoration(Reset) != StateUnset {
		t.Fatalf("reset must not be recorded as a decoration")
	}
}

func TestDecorateTristate(t *testing.T) {
	b := Literal("hi").Apply(Bold).Unapply(Italic)

	text := b.Build()
	if got := text.Decoration(Bold); got != StateTrue {
		t.Fatalf("expected bold to be true, got %s", got)
	}
	if got := text.Decoration(Italic); got != StateFalse {
		t.Fatalf("expected italic to be false, got %s", got)
	}
	if got := text.Decoration(Underlined); got != StateUnset {
		t.Fatalf("expected underline to be unset, got %s", got)
	}

	text = b.Decorate(Bold, StateUnset).Build()
	if got := text.Decoration(Bold); got != StateUnset {
		t.Fatalf("expected bold to be removed, got %s", got)
	}
}

func TestDecorationHelpers(t *testing.T) {
	text := Literal("hi").Apply(Bold).Apply(Strikethrough).Unapply(Italic).Build()

	if !text.Bold() || !text.Strikethrough() {
		t.Fatalf("expected bold and strikethrough to read true")
	}
	if text.Italic() {
		t.Fatalf("explicitly false italic must read false")
	}
	if text.Obfuscated() {
		t.Fatalf("unset obfuscated must read false")
	}
}

func TestOptionalFieldsAbsentByDefault(t *testing.T) {
	text := Literal("hi").Build()

	if _, ok := text.Insertion(); ok {
		t.Fatalf("expected no insertion")
	}
	if _, ok := text.ClickEvent(); ok {
		t.Fatalf("expected no click event")
	}
	if _, ok := text.HoverEvent(); ok {
		t.Fatalf("expected no hover event")
	}
	if text.HasChildren() {
		t.Fatalf("expected no children")
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	a := Literal("a").Build()
	b := Literal("b").Build()
	c := Literal("c").Build()

	text := Literal("root").Append(a, b).Append(c).Build()

	children := text.Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	for i, want := range []*LiteralText{a, b, c} {
		if !children[i].Equal(want) {
			t.Fatalf("child %d out of order", i)
		}
	}
	if !text.Contains(b) {
		t.Fatalf("expected tree to contain appended child")
	}
}

func TestStructuralEquality(t *testing.T) {
	build := func() Text {
		return Literal("hi").
			Apply(Bold).
			Colour(Gold).
			Insertion("ins").
			Click(ClickEvent{Action: RunCommand, Value: Literal("/say hi").Build()}).
			Append(Literal("child").Build()).
			Build()
	}

	if !build().Equal(build()) {
		t.Fatalf("identically built trees must be equal")
	}

	other := Literal("hi").Apply(Bold).Colour(Gold).Build()
	if build().Equal(other) {
		t.Fatalf("trees with different fields must not be equal")
	}
}

func TestEqualityIsVariantSensitive(t *testing.T) {
	lit := Literal("x").Build()
	key := Keybind("x").Build()

	if lit.Equal(key) {
		t.Fatalf("literal and keybind variants must not be equal")
	}
}

func TestEqualityIsChildOrderSensitive(t *testing.T) {
	a := Literal("a").Build()
	b := Literal("b").Build()

	ab := Literal("root").Append(a, b).Build()
	ba := Literal("root").Append(b, a).Build()

	if ab.Equal(ba) {
		t.Fatalf("child order must be significant")
	}
}

func TestTranslatableArguments(t *testing.T) {
	text := Translatable("chat.type.text", Literal("A").Build()).
		Argument(Literal("B").Build()).
		Build()

	if !text.HasArguments() {
		t.Fatalf("expected arguments")
	}
	args := text.Args()
	if len(args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(args))
	}
	if !args[0].Equal(Literal("A").Build()) || !args[1].Equal(Literal("B").Build()) {
		t.Fatalf("arguments out of order")
	}

	bare := Translatable("chat.type.text").Build()
	if bare.HasArguments() {
		t.Fatalf("expected no arguments")
	}
}

func TestToBuilderRoundTrip(t *testing.T) {
	original := Translatable("key", Literal("arg").Build()).
		Apply(Bold).
		Colour(Blue).
		Insertion("ins").
		Hover(HoverEvent{Action: ShowText, Value: Literal("tip").Build()}).
		Append(Literal("child").Build()).
		Build()

	rebuilt := original.ToBuilder().Build()
	if !original.Equal(rebuilt) {
		t.Fatalf("ToBuilder().Build() must reproduce the node")
	}

	changed := original.ToBuilder().Colour(Red).Build()
	if original.Equal(changed) {
		t.Fatalf("deriving a new node must not equal the original")
	}
	if original.Colour() != Blue {
		t.Fatalf("original node mutated by derived builder")
	}
}

func TestBuiltNodeIsImmutable(t *testing.T) {
	b := Literal("hi").Apply(Bold)
	text := b.Build()

	// Later builder calls must not leak into the built node.
	b.Unapply(Bold).Append(Literal("late").Build())
	if text.Decoration(Bold) != StateTrue || text.HasChildren() {
		t.Fatalf("builder reuse mutated a built node")
	}

	// Neither must mutation of accessor copies.
	text.Decorations()[Italic] = true
	if text.Decoration(Italic) != StateUnset {
		t.Fatalf("decorations accessor leaked internal state")
	}
}
