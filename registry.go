package mctext

import "sort"

// Registry maps an internal wire name to a registered value. Registries are
// populated once at startup and read-only afterwards, which keeps lookups
// safe for concurrent use without locking. The codec resolves wire strings
// against these entries; applications may register additional values before
// the codec is first used.
type Registry[T any] struct {
	entries map[string]T
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{entries: make(map[string]T)}
}

// Register adds v under the given internal name. Registering a name twice is
// a programming error and panics.
func (r *Registry[T]) Register(name string, v T) {
	if _, exists := r.entries[name]; exists {
		panic("mctext: duplicate registration of " + name)
	}
	r.entries[name] = v
}

func (r *Registry[T]) Lookup(name string) (T, bool) {
	v, ok := r.entries[name]
	return v, ok
}

// Names returns the registered internal names in sorted order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	Colours      = NewRegistry[Colour]()
	Decorations  = NewRegistry[Decoration]()
	ClickActions = NewRegistry[ClickAction]()
	HoverActions = NewRegistry[HoverAction]()
)

func init() {
	for _, c := range []Colour{
		None, Black, DarkBlue, DarkGreen, DarkCyan, DarkRed, Purple, Gold,
		Grey, DarkGrey, Blue, BrightGreen, Cyan, Red, Pink, Yellow, White,
	} {
		Colours.Register(c.Name(), c)
	}

	// Reset is deliberately absent: it is not a storable decoration state.
	for _, d := range []Decoration{Obfuscated, Bold, Strikethrough, Underlined, Italic} {
		Decorations.Register(d.Name(), d)
	}

	for _, a := range []ClickAction{OpenURL, RunCommand, SuggestCommand, ChangePage} {
		ClickActions.Register(a.Name(), a)
	}

	for _, a := range []HoverAction{ShowText, ShowItem, ShowEntity, ShowAchievement} {
		HoverActions.Register(a.Name(), a)
	}
}
