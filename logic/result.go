package logic

// Part names a semantic sub-element of a primitive ("trigger", "panel",
// "thumb"). Parts key the a11y and interaction lookups.
type Part string

// EventName identifies a semantic event ("itemToggle", "navigate", "select"),
// as opposed to the raw host event that triggered it.
type EventName string

// Result is the outcome of an event or interaction handler: either the name
// of the semantic event that occurred, or nothing. It replaces the
// string-or-nil convention with an explicit comma-ok shape.
type Result struct {
	event   EventName
	handled bool
}

// Handled reports that the handler performed the named semantic event.
func Handled(name EventName) Result {
	return Result{event: name, handled: true}
}

// Unhandled reports that the handler declined the event without effect.
func Unhandled() Result {
	return Result{}
}

// Event returns the semantic event name and whether the handler did anything.
func (r Result) Event() (EventName, bool) {
	return r.event, r.handled
}
