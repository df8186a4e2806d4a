package action

// Call invokes a zero-argument callback and finishes immediately. The call is
// treated as instantaneous, so the entire delta passes through as leftover.
type Call struct {
	Base
	fn   func()
	done bool
}

// NewCall builds a one-shot function action. A nil fn is allowed and the
// action simply finishes without calling anything.
func NewCall(fn func()) *Call {
	c := &Call{fn: fn}
	c.Bind(c)
	return c
}

// IsDone reports whether the callback has run.
func (c *Call) IsDone() bool { return c.done }

// Update invokes the callback and marks the action done. While not Running
// it produces neither progress nor leftover.
func (c *Call) Update(delta float64) float64 {
	if !c.IsRunning() {
		return 0
	}
	if c.fn != nil {
		c.fn()
	}
	c.done = true
	return c.Base.Update(delta)
}
