package mctext

import "testing"

func TestPlainFlattensNestedLiterals(t *testing.T) {
	text := Literal("a").
		Append(Literal("b").Append(Literal("c").Build()).Build()).
		Append(Literal("d").Build()).
		Build()

	if got := Plain(text); got != "abcd" {
		t.Fatalf("expected %q, got %q", "abcd", got)
	}
}

func TestPlainIgnoresStyling(t *testing.T) {
	text := Literal("a").
		Apply(Bold).
		Colour(Red).
		Append(Literal("b").Colour(Blue).Build()).
		Build()

	if got := Plain(text); got != "ab" {
		t.Fatalf("expected %q, got %q", "ab", got)
	}
}

func TestPlainNonLiteralYieldsNothing(t *testing.T) {
	if got := Plain(Keybind("key.jump").Build()); got != "" {
		t.Fatalf("expected empty string for keybind, got %q", got)
	}

	// A non-literal node contributes nothing, including its children.
	translatable := Translatable("chat.type.text").
		Append(Literal("hidden").Build()).
		Build()
	if got := Plain(translatable); got != "" {
		t.Fatalf("expected empty string for translatable, got %q", got)
	}

	// And inside a literal tree a non-literal child is skipped.
	mixed := Literal("a").
		Append(Keybind("key.jump").Build()).
		Append(Literal("b").Build()).
		Build()
	if got := Plain(mixed); got != "ab" {
		t.Fatalf("expected %q, got %q", "ab", got)
	}
}
