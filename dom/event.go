// Package dom defines the native-style event and element model that hosts
// feed into a primitive's interaction handlers. The shapes mirror browser
// conventions (key names, preventDefault, relatedTarget) so that a DOM host
// can forward its events directly, while terminal and headless hosts
// construct them from their own input layer.
package dom

// Handler map keys returned by a logic layer's Handlers lookup.
const (
	OnClick      = "onClick"
	OnKeyDown    = "onKeyDown"
	OnFocus      = "onFocus"
	OnBlur       = "onBlur"
	OnMouseDown  = "onMouseDown"
	OnMouseEnter = "onMouseEnter"
)

// Key names follow the DOM KeyboardEvent.key convention.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeyEscape     = "Escape"
	KeyTab        = "Tab"
)

// Rect is an element's bounding box in host coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Element is the minimal surface the logic layer needs from a host element:
// geometry for pointer math, containment for blur checks, and focus.
type Element interface {
	Bounds() Rect
	Contains(other Element) bool
	Focus()
}

// Event is a native-style input event. Hosts populate only the fields that
// apply: Key/Code for keyboard events, X/Y for pointer events, and
// RelatedTarget for focus transitions.
type Event struct {
	Type string

	Key  string
	Code string

	X, Y float64

	ShiftKey bool
	CtrlKey  bool
	AltKey   bool
	MetaKey  bool

	CurrentTarget Element
	RelatedTarget Element

	defaultPrevented bool
}

// PreventDefault marks the event so the host suppresses its default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// KeyEvent builds a keydown event for the given key name.
func KeyEvent(key string) *Event {
	return &Event{Type: "keydown", Key: key}
}

// ClickEvent builds a click event at the given host coordinates.
func ClickEvent(x, y float64) *Event {
	return &Event{Type: "click", X: x, Y: y}
}
