package action

// Condition waits for an external value to reach a target. The action only
// reads through the pointer; the caller must keep the referent alive for the
// action's whole lifetime. Time is never consumed while waiting: the full
// delta passes through as leftover on the tick the condition becomes true,
// and nothing before that.
type Condition[T comparable] struct {
	Base
	ref  *T
	want T
	done bool
}

// NewCondition builds a condition that finishes once *ref equals want.
func NewCondition[T comparable](ref *T, want T) *Condition[T] {
	c := &Condition[T]{ref: ref, want: want}
	c.Bind(c)
	return c
}

// IsDone reports whether the watched value matched the target on the most
// recent update.
func (c *Condition[T]) IsDone() bool { return c.done }

// Update evaluates the comparison. While not Running it produces neither
// progress nor leftover.
func (c *Condition[T]) Update(delta float64) float64 {
	if !c.IsRunning() {
		return 0
	}
	c.done = *c.ref == c.want
	if !c.done {
		delta = 0
	}
	return c.Base.Update(delta)
}
