package logic

// FocusController moves host focus to the element rendering a given item.
// Keyboard navigation decides which item id should receive focus; how focus
// actually lands there is the host's business (a DOM host queries its tree,
// a terminal host repositions its cursor, a headless test records the call).
type FocusController interface {
	Focus(itemID string)
}

// FocusFunc adapts a plain function to a FocusController.
type FocusFunc func(itemID string)

// Focus calls f.
func (f FocusFunc) Focus(itemID string) {
	f(itemID)
}

// NopFocus discards focus requests. It is the default when no controller is
// injected.
var NopFocus FocusController = FocusFunc(func(string) {})

// Context is threaded through every handler invocation. It carries the
// capabilities a handler may use besides the state snapshot it was handed:
// deferring work to the end of the current dispatch, and moving focus.
//
// A Context exposes no way to read current state; handlers depend only on
// the snapshot parameter captured once by the dispatch machinery.
type Context struct {
	enqueue func(func())
	focus   FocusController
}

// Defer schedules fn to run after the current dispatch returns and state has
// settled. Tasks run in FIFO order. This is the end-of-turn effect used for
// aggregate notifications (an accordion's expanded-set callback fires here,
// after the per-item toggle callback has already fired synchronously).
func (c Context) Defer(fn func()) {
	c.enqueue(fn)
}

// Focus asks the host to move focus to the element for itemID.
func (c Context) Focus(itemID string) {
	c.focus.Focus(itemID)
}
