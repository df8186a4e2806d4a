package action

// Status describes where an action is in its lifecycle. The declaration order
// matters: Finished and Canceled are the two largest values, so end-of-life
// checks compare ordinally against StatusFinished.
type Status uint8

const (
	StatusInit Status = iota
	StatusRunning
	StatusPaused
	StatusFinished
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusInit:
		return "init"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusFinished:
		return "finished"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Event identifies a status transition reported to listeners.
type Event uint8

const (
	EventStarted Event = iota
	EventPaused
	EventResumed
	EventFinished
	EventCanceled
)

func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventFinished:
		return "finished"
	case EventCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}
