package blockingqueue

// State is the observable state of a Queue.
type State int

const (
	// StateEmpty means Len() == 0.
	StateEmpty State = iota
	// StatePartial means 0 < Len() < Cap().
	StatePartial
	// StateFull means Len() == Cap().
	StateFull
	// StateClosed is terminal.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partial"
	case StateFull:
		return "full"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
