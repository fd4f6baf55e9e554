package life

// EventKind identifies which operation produced an Event.
type EventKind uint8

const (
	EventRandomized EventKind = iota
	EventStepped
	EventCleared
)

func (k EventKind) String() string {
	switch k {
	case EventRandomized:
		return "randomized"
	case EventStepped:
		return "stepped"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event reports the outcome of a state-changing call.
type Event struct {
	Kind       EventKind
	Generation int
	Live       int
}

// Observer receives an Event after every randomize, step and clear. It runs
// synchronously on the caller's goroutine.
type Observer func(Event)
