package mctext

// ClickAction is the kind of reaction to a node being clicked on. Equality
// is by internal name.
type ClickAction struct {
	name string
}

// ClickActionOf returns an ad-hoc click action backed by the given internal
// name. It does not register the action; see ClickActions.
func ClickActionOf(name string) ClickAction { return ClickAction{name} }

func (a ClickAction) Name() string   { return a.name }
func (a ClickAction) String() string { return a.name }

var (
	OpenURL        = ClickActionOf("open_url")
	RunCommand     = ClickActionOf("run_command")
	SuggestCommand = ClickActionOf("suggest_command")
	ChangePage     = ClickActionOf("change_page")
)

// HoverAction is the kind of reaction to a node being hovered over.
// Equality is by internal name.
type HoverAction struct {
	name string
}

// HoverActionOf returns an ad-hoc hover action backed by the given internal
// name. It does not register the action; see HoverActions.
func HoverActionOf(name string) HoverAction { return HoverAction{name} }

func (a HoverAction) Name() string   { return a.name }
func (a HoverAction) String() string { return a.name }

var (
	ShowText        = HoverActionOf("show_text")
	ShowItem        = HoverActionOf("show_item")
	ShowEntity      = HoverActionOf("show_entity")
	ShowAchievement = HoverActionOf("show_achievement")
)

// ClickEvent describes what happens when a node is clicked on. The value is
// itself a text tree.
type ClickEvent struct {
	Action ClickAction
	Value  Text
}

func (e ClickEvent) Equal(other ClickEvent) bool {
	return e.Action == other.Action && textsEqual(e.Value, other.Value)
}

// HoverEvent describes what happens when a node is hovered over. The value
// is itself a text tree.
type HoverEvent struct {
	Action HoverAction
	Value  Text
}

func (e HoverEvent) Equal(other HoverEvent) bool {
	return e.Action == other.Action && textsEqual(e.Value, other.Value)
}

func textsEqual(a, b Text) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(b)
}
