package mctext

// Colour is a named text colour. Equality is by internal name only: two
// independently constructed colours with the same name are interchangeable,
// and a Colour is usable as a map key.
type Colour struct {
	name string
}

// ColourOf returns an ad-hoc colour backed by the given internal name. It
// does not register the colour; see Colours.
func ColourOf(name string) Colour { return Colour{name} }

func (c Colour) Name() string   { return c.name }
func (c Colour) String() string { return c.name }

// None takes the colour of the parent node, or the default colour.
var None = ColourOf("none")

// Internal names follow the identifiers Mojang uses on the wire.
var (
	Black       = ColourOf("black")
	DarkBlue    = ColourOf("dark_blue")
	DarkGreen   = ColourOf("dark_green")
	DarkCyan    = ColourOf("dark_aqua")
	DarkRed     = ColourOf("dark_red")
	Purple      = ColourOf("dark_purple")
	Gold        = ColourOf("gold")
	Grey        = ColourOf("gray")
	DarkGrey    = ColourOf("dark_gray")
	Blue        = ColourOf("blue")
	BrightGreen = ColourOf("green")
	Cyan        = ColourOf("aqua")
	Red         = ColourOf("red")
	Pink        = ColourOf("light_purple")
	Yellow      = ColourOf("yellow")
	White       = ColourOf("white")
)

// Decoration is a binary style flag with tri-state semantics on a node:
// explicitly on, explicitly off, or unset. Equality is by internal name.
type Decoration struct {
	name string
}

// DecorationOf returns an ad-hoc decoration backed by the given internal
// name. It does not register the decoration; see Decorations.
func DecorationOf(name string) Decoration { return Decoration{name} }

func (d Decoration) Name() string   { return d.name }
func (d Decoration) String() string { return d.name }

// Reset removes all decorations and the colour when applied through a
// builder. It is not a storable decoration state.
var Reset = DecorationOf("reset")

var (
	Obfuscated    = DecorationOf("obfuscated")
	Bold          = DecorationOf("bold")
	Strikethrough = DecorationOf("strikethrough")
	Underlined    = DecorationOf("underline")
	Italic        = DecorationOf("italic")
)
