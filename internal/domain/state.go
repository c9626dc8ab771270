package domain

// State is the lifecycle phase of an evaluation derived from its dates.
type State string

const (
	StateNew      State = "NEW"
	StateActive   State = "ACTIVE"
	StateDue      State = "DUE"
	StateClosed   State = "CLOSED"
	StateViewable State = "VIEWABLE"
	StateUnknown  State = "UNKNOWN"
)

var stateOrder = map[State]int{
	StateNew:      0,
	StateActive:   1,
	StateDue:      2,
	StateClosed:   3,
	StateViewable: 4,
}

func (s State) IsValid() bool {
	_, ok := stateOrder[s]
	return ok
}

// Before reports whether s comes strictly earlier in the lifecycle than other.
// Unknown or empty states are never before anything.
func (s State) Before(other State) bool {
	a, ok := stateOrder[s]
	if !ok {
		return false
	}
	b, ok := stateOrder[other]
	if !ok {
		return false
	}
	return a < b
}

func (s State) IsRunning() bool {
	return s == StateActive || s == StateDue
}

func (s State) IsTerminal() bool {
	return s == StateViewable
}

func (s State) In(states ...State) bool {
	for _, st := range states {
		if s == st {
			return true
		}
	}
	return false
}

func ToState(state string) State {
	switch state {
	case "NEW":
		return StateNew
	case "ACTIVE":
		return StateActive
	case "DUE":
		return StateDue
	case "CLOSED":
		return StateClosed
	case "VIEWABLE":
		return StateViewable
	default:
		return StateUnknown
	}
}
