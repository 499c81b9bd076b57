package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/obeliskdev/mctext"
	"github.com/valyala/bytebufferpool"
)

var (
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrNoContent         = errors.New("no recognised content field")
)

// ParseError reports a chat component document that could not be
// deserialised.
type ParseError struct {
	Detail string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return "codec: " + e.Detail + ": " + e.Cause.Error()
	}
	return "codec: " + e.Detail
}

func (e *ParseError) Unwrap() error { return e.Cause }

func parseErr(cause error, format string, args ...any) *ParseError {
	return &ParseError{Detail: fmt.Sprintf(format, args...), Cause: cause}
}

// Marshal serialises a text tree to Mojang's json chat format. Optional
// fields are omitted entirely when absent, never emitted as null.
// Decoration flags are written as the strings "true"/"false", the encoding
// the vanilla server historically produced.
func Marshal(t mctext.Text) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(encode(t)); err != nil {
		return nil, fmt.Errorf("encode component: %w", err)
	}

	// Encoder terminates the document with a newline.
	out := buf.B
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return append([]byte(nil), out...), nil
}

func encode(t mctext.Text) map[string]any {
	obj := make(map[string]any)

	switch n := t.(type) {
	case *mctext.LiteralText:
		obj["text"] = n.Content()

	case *mctext.TranslatableText:
		obj["translate"] = n.Key()
		if n.HasArguments() {
			args := n.Args()
			with := make([]any, len(args))
			for i, arg := range args {
				with[i] = encode(arg)
			}
			obj["with"] = with
		}

	case *mctext.KeybindText:
		obj["keybind"] = n.Keybind()
	}

	for d, active := range t.Decorations() {
		obj[d.Name()] = strconv.FormatBool(active)
	}

	if c := t.Colour(); c != mctext.None {
		obj["color"] = c.Name()
	}

	if insertion, ok := t.Insertion(); ok {
		obj["insertion"] = insertion
	}

	if e, ok := t.ClickEvent(); ok {
		obj["clickEvent"] = map[string]any{
			"action": e.Action.Name(),
			"value":  encode(e.Value),
		}
	}

	if e, ok := t.HoverEvent(); ok {
		obj["hoverEvent"] = map[string]any{
			"action": e.Action.Name(),
			"value":  encode(e.Value),
		}
	}

	if t.HasChildren() {
		children := t.Children()
		extra := make([]any, len(children))
		for i, child := range children {
			extra[i] = encode(child)
		}
		obj["extra"] = extra
	}

	return obj
}

// Unmarshal deserialises Mojang's json chat format into a text tree. The
// document must be a json object carrying one of the recognised content
// fields; colour and event action strings must resolve against the mctext
// registries. Recursion depth is bounded only by the input.
func Unmarshal(data []byte) (mctext.Text, error) {
	return decode(data)
}

func decode(data []byte) (mctext.Text, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, parseErr(err, "component must be a json object")
	}
	if obj == nil {
		return nil, parseErr(nil, "component must be a json object")
	}

	switch {
	case hasField(obj, "text"):
		content, err := decodeString(obj["text"], "text")
		if err != nil {
			return nil, err
		}
		b := mctext.Literal(content)
		if err := decodeStyle(obj, b); err != nil {
			return nil, err
		}
		return b.Build(), nil

	case hasField(obj, "translate"):
		key, err := decodeString(obj["translate"], "translate")
		if err != nil {
			return nil, err
		}
		b := mctext.Translatable(key)
		// A present but non-array "with" is ignored rather than rejected.
		if raw, ok := obj["with"]; ok && isArray(raw) {
			var elems []json.RawMessage
			if err := json.Unmarshal(raw, &elems); err != nil {
				return nil, parseErr(err, "with must be an array")
			}
			for _, elem := range elems {
				arg, err := decode(elem)
				if err != nil {
					return nil, err
				}
				b.Argument(arg)
			}
		}
		if err := decodeStyle(obj, b); err != nil {
			return nil, err
		}
		return b.Build(), nil

	case hasField(obj, "keybind"):
		keybind, err := decodeString(obj["keybind"], "keybind")
		if err != nil {
			return nil, err
		}
		b := mctext.Keybind(keybind)
		if err := decodeStyle(obj, b); err != nil {
			return nil, err
		}
		return b.Build(), nil

	default:
		return nil, parseErr(ErrNoContent, "cannot determine component variant")
	}
}

// styled is the builder operation set shared by every variant builder.
type styled[B any] interface {
	Decorate(d mctext.Decoration, s mctext.State) B
	Colour(c mctext.Colour) B
	Insertion(insertion string) B
	Click(e mctext.ClickEvent) B
	Hover(e mctext.HoverEvent) B
	Append(children ...mctext.Text) B
}

func decodeStyle[B styled[B]](obj map[string]json.RawMessage, b B) error {
	for _, name := range mctext.Decorations.Names() {
		raw, ok := obj[name]
		if !ok {
			continue
		}
		active, err := decodeBool(raw, name)
		if err != nil {
			return err
		}
		d, _ := mctext.Decorations.Lookup(name)
		state := mctext.StateFalse
		if active {
			state = mctext.StateTrue
		}
		b.Decorate(d, state)
	}

	if raw, ok := obj["color"]; ok {
		name, err := decodeString(raw, "color")
		if err != nil {
			return err
		}
		colour, ok := mctext.Colours.Lookup(name)
		if !ok {
			return parseErr(ErrUnknownIdentifier, "colour %q", name)
		}
		b.Colour(colour)
	}

	if raw, ok := obj["insertion"]; ok {
		insertion, err := decodeString(raw, "insertion")
		if err != nil {
			return err
		}
		b.Insertion(insertion)
	}

	if raw, ok := obj["clickEvent"]; ok {
		name, value, err := decodeEvent(raw, "clickEvent")
		if err != nil {
			return err
		}
		action, ok := mctext.ClickActions.Lookup(name)
		if !ok {
			return parseErr(ErrUnknownIdentifier, "click action %q", name)
		}
		b.Click(mctext.ClickEvent{Action: action, Value: value})
	}

	if raw, ok := obj["hoverEvent"]; ok {
		name, value, err := decodeEvent(raw, "hoverEvent")
		if err != nil {
			return err
		}
		action, ok := mctext.HoverActions.Lookup(name)
		if !ok {
			return parseErr(ErrUnknownIdentifier, "hover action %q", name)
		}
		b.Hover(mctext.HoverEvent{Action: action, Value: value})
	}

	if raw, ok := obj["extra"]; ok {
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return parseErr(err, "extra must be an array")
		}
		for _, elem := range elems {
			child, err := decode(elem)
			if err != nil {
				return err
			}
			b.Append(child)
		}
	}

	return nil
}

func decodeEvent(raw json.RawMessage, field string) (string, mctext.Text, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", nil, parseErr(err, "%s must be a json object", field)
	}

	actionRaw, ok := obj["action"]
	if !ok {
		return "", nil, parseErr(nil, "%s is missing its action", field)
	}
	action, err := decodeString(actionRaw, field+".action")
	if err != nil {
		return "", nil, err
	}

	valueRaw, ok := obj["value"]
	if !ok {
		return "", nil, parseErr(nil, "%s is missing its value", field)
	}
	value, err := decode(valueRaw)
	if err != nil {
		return "", nil, err
	}

	return action, value, nil
}

func decodeString(raw json.RawMessage, field string) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", parseErr(err, "%s must be a string", field)
	}
	return s, nil
}

// decodeBool accepts both a native json boolean and the string form
// "true"/"false"; the wire format has carried both across revisions.
func decodeBool(raw json.RawMessage, field string) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		active, err := strconv.ParseBool(s)
		if err != nil {
			return false, parseErr(err, "%s must be a boolean", field)
		}
		return active, nil
	}

	return false, parseErr(nil, "%s must be a boolean", field)
}

func hasField(obj map[string]json.RawMessage, name string) bool {
	_, ok := obj[name]
	return ok
}

func isArray(raw json.RawMessage) bool {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return c == '['
		}
	}
	return false
}
