package action

// WaitAll finishes only once every one of its children has finished. Every
// child receives the same full delta each tick. An empty group is done
// immediately.
type WaitAll struct {
	Base
	children []Action
}

// NewWaitAll builds an all-must-finish group over the given children.
func NewWaitAll(children ...Action) *WaitAll {
	w := &WaitAll{children: children}
	w.Bind(w)
	return w
}

// Add appends a child to the group.
func (w *WaitAll) Add(child Action) {
	w.children = append(w.children, child)
}

// IsDone reports whether every child has finished.
func (w *WaitAll) IsDone() bool {
	for _, child := range w.children {
		if !child.IsFinished() {
			return false
		}
	}
	return true
}

// Pause pauses the group and every child.
func (w *WaitAll) Pause() {
	w.Base.Pause()
	for _, child := range w.children {
		child.Pause()
	}
}

// Resume resumes the group and every child.
func (w *WaitAll) Resume() {
	w.Base.Resume()
	for _, child := range w.children {
		child.Resume()
	}
}

// Stop cancels the group and every child.
func (w *WaitAll) Stop() {
	w.Base.Stop()
	for _, child := range w.children {
		child.Stop()
	}
}

// Update gives each running child the full delta. The reported leftover
// starts at zero and only ever moves below it, so the group never donates
// time to a successor; see DESIGN.md for why this is kept as-is.
func (w *WaitAll) Update(delta float64) float64 {
	var minLeft float64
	for _, child := range w.children {
		if child.IsInit() {
			child.Start()
		}
		if child.IsRunning() {
			if left := child.Update(delta); left < minLeft {
				minLeft = left
			}
		}
	}

	return w.Base.Update(minLeft)
}
