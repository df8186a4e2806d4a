package action

// WaitAny finishes as soon as any one of its children finishes. Every child
// receives the same full delta each tick; once a child wins, the remaining
// children are canceled.
type WaitAny struct {
	Base
	children []Action
}

// NewWaitAny builds a first-to-finish group over the given children.
func NewWaitAny(children ...Action) *WaitAny {
	w := &WaitAny{children: children}
	w.Bind(w)
	return w
}

// Add appends a child to the group.
func (w *WaitAny) Add(child Action) {
	w.children = append(w.children, child)
}

// IsDone reports whether at least one child has finished.
func (w *WaitAny) IsDone() bool {
	for _, child := range w.children {
		if child.IsFinished() {
			return true
		}
	}
	return false
}

// Pause pauses the group and every child.
func (w *WaitAny) Pause() {
	w.Base.Pause()
	for _, child := range w.children {
		child.Pause()
	}
}

// Resume resumes the group and every child.
func (w *WaitAny) Resume() {
	w.Base.Resume()
	for _, child := range w.children {
		child.Resume()
	}
}

// Stop cancels the group and every child.
func (w *WaitAny) Stop() {
	w.Base.Stop()
	for _, child := range w.children {
		child.Stop()
	}
}

// Update gives each running child the full delta and reports the largest
// leftover any of them produced.
func (w *WaitAny) Update(delta float64) float64 {
	var maxLeft float64
	for _, child := range w.children {
		if child.IsInit() {
			child.Start()
		}
		if child.IsRunning() {
			if left := child.Update(delta); left > maxLeft {
				maxLeft = left
			}
		}
	}

	return w.Base.Update(maxLeft)
}

// UpdateStatus runs the base completion check and, once the group has
// finished, cancels every child that did not win.
func (w *WaitAny) UpdateStatus() {
	w.Base.UpdateStatus()
	if w.Base.IsFinished() {
		for _, child := range w.children {
			if !child.IsFinished() {
				child.Stop()
			}
		}
	}
}
