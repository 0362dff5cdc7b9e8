package alarm

// State describes where a scheduler is in its arm/fire cycle.
type State int

const (
	// StateIdle means no alarm is being watched: either no target is set
	// or ticking was stopped manually.
	StateIdle State = iota
	// StateArmed means a target is set and ticks are compared against it.
	StateArmed
	// StateFired means the alarm went off and ticking is halted until re-armed.
	StateFired
)

// String returns a lowercase name suitable for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateFired:
		return "fired"
	default:
		return "unknown"
	}
}
