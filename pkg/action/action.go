// Package action models time-extended behaviors as explicit state machines
// advanced once per tick by a caller-supplied time delta. Leaf actions
// (Condition, Delay, Call) can be composed with Sequence, WaitAny and WaitAll
// into larger behaviors, and a Manager drives named root actions from the
// host's frame loop. Everything is cooperative and single-threaded: nothing
// here spawns goroutines, takes locks, or fires callbacks outside the tick
// that triggered them.
package action

// Listener receives transition events from an action. Listeners fire
// synchronously, in registration order, inside the call that caused the
// transition.
type Listener func(a Action, event Event)

// Action is the contract every behavior implements. Concrete actions embed
// Base for the shared status machine and override IsDone plus whatever else
// their semantics need.
type Action interface {
	// Start moves the action from Init to Running. No-op in any other state.
	Start()
	// Pause moves the action from Running to Paused. No-op otherwise.
	Pause()
	// Resume moves the action from Paused back to Running. No-op otherwise.
	Resume()
	// Stop cancels the action unconditionally, whatever its current status.
	Stop()
	// Update advances the action by delta and returns the leftover: the
	// portion of delta the action did not consume. Leftover is how a single
	// tick can complete several actions in a row.
	Update(delta float64) float64
	// UpdateStatus moves the action to Finished once IsDone reports true.
	UpdateStatus()
	// IsDone reports whether the action's own completion condition holds.
	IsDone() bool

	Status() Status
	IsInit() bool
	IsRunning() bool
	IsPaused() bool
	IsFinished() bool
	IsCanceled() bool
	IsEndOfLife() bool

	// AddOnEvent registers a listener for every future event on this action.
	// Listeners cannot be removed.
	AddOnEvent(fn Listener)
}

// Base implements the shared status machine: guarded transitions, listener
// bookkeeping, and the default completion check. Embed it in a concrete
// action and call Bind with the outer value so that IsDone and UpdateStatus
// overrides are honored when base behavior runs.
type Base struct {
	self      Action
	status    Status
	listeners []Listener
}

// Bind wires the embedded Base to its outer action. Constructors in this
// package call it; custom actions embedding Base must call it before use.
func (b *Base) Bind(self Action) {
	b.self = self
}

// Start moves the action from Init to Running and emits Started.
func (b *Base) Start() {
	if b.status == StatusInit {
		b.status = StatusRunning
		b.emit(EventStarted)
	}
}

// Pause moves the action from Running to Paused and emits Paused.
func (b *Base) Pause() {
	if b.status == StatusRunning {
		b.status = StatusPaused
		b.emit(EventPaused)
	}
}

// Resume moves the action from Paused back to Running and emits Resumed.
func (b *Base) Resume() {
	if b.status == StatusPaused {
		b.status = StatusRunning
		b.emit(EventResumed)
	}
}

// Stop sets the status to Canceled and emits Canceled regardless of the
// current status, including Finished.
func (b *Base) Stop() {
	b.status = StatusCanceled
	b.emit(EventCanceled)
}

// UpdateStatus moves the action to Finished and emits Finished once the
// completion condition holds. Terminal states are left alone.
func (b *Base) UpdateStatus() {
	if b.IsEndOfLife() {
		return
	}
	if b.self.IsDone() {
		b.status = StatusFinished
		b.emit(EventFinished)
	}
}

// Update runs the completion check and passes delta through untouched. Every
// overriding action calls this as its final step so completion is always
// detected the same way.
func (b *Base) Update(delta float64) float64 {
	b.self.UpdateStatus()
	return delta
}

// Status returns the current status.
func (b *Base) Status() Status { return b.status }

func (b *Base) IsInit() bool     { return b.status == StatusInit }
func (b *Base) IsRunning() bool  { return b.status == StatusRunning }
func (b *Base) IsPaused() bool   { return b.status == StatusPaused }
func (b *Base) IsFinished() bool { return b.status == StatusFinished }
func (b *Base) IsCanceled() bool { return b.status == StatusCanceled }

// IsEndOfLife reports whether the action reached Finished or Canceled.
func (b *Base) IsEndOfLife() bool { return b.status >= StatusFinished }

// AddOnEvent appends a listener. All registered listeners fire for every
// future event on this action, in registration order.
func (b *Base) AddOnEvent(fn Listener) {
	b.listeners = append(b.listeners, fn)
}

func (b *Base) emit(event Event) {
	for _, fn := range b.listeners {
		fn(b.self, event)
	}
}
