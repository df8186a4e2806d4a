package action

// Sequence runs its children strictly in order; only the child at the cursor
// is ever active. Leftover time from a child that finishes early is offered
// to the next child within the same tick, so one Update call can complete
// several children.
type Sequence struct {
	Base
	children []Action
	cursor   int
}

// NewSequence builds a sequence over the given children.
func NewSequence(children ...Action) *Sequence {
	s := &Sequence{children: children}
	s.Bind(s)
	return s
}

// Add appends a child to the end of the sequence.
func (s *Sequence) Add(child Action) {
	s.children = append(s.children, child)
}

// IsDone reports whether the cursor has moved past the last child. An empty
// sequence is done immediately.
func (s *Sequence) IsDone() bool {
	return s.cursor >= len(s.children)
}

// Pause pauses the sequence and the child currently at the cursor. Children
// already finished or not yet started are left alone.
func (s *Sequence) Pause() {
	s.Base.Pause()
	if s.cursor < len(s.children) {
		s.children[s.cursor].Pause()
	}
}

// Resume resumes the sequence and the child currently at the cursor.
func (s *Sequence) Resume() {
	s.Base.Resume()
	if s.cursor < len(s.children) {
		s.children[s.cursor].Resume()
	}
}

// Stop cancels the sequence and the child currently at the cursor.
func (s *Sequence) Stop() {
	s.Base.Stop()
	if s.cursor < len(s.children) {
		s.children[s.cursor].Stop()
	}
}

// Update drives the child at the cursor, carrying leftover time forward to
// the next child whenever the current one finishes within this tick.
func (s *Sequence) Update(delta float64) float64 {
	for s.cursor < len(s.children) {
		child := s.children[s.cursor]
		if child.IsInit() {
			child.Start()
		}
		// A pause that landed on the sequence mid-tick reaches the active
		// child here.
		if child.IsRunning() && s.Base.IsPaused() {
			child.Pause()
		}
		if delta > 0 && child.IsRunning() {
			delta = child.Update(delta)
		}
		if !child.IsFinished() {
			break
		}
		s.cursor++
	}

	return s.Base.Update(delta)
}
