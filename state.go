package guard

// State reports where a guard is in its lifecycle.
type State int

const (
	// Alive is the initial state. The guard holds its value and the
	// cleanup is still pending.
	Alive State = iota

	// Finalized means the cleanup has run (or is running). The value and
	// the cleanup function are gone; only [Guard.Finalize], [Guard.Close]
	// and [Guard.State] remain callable.
	Finalized
)

// String returns the human-readable name of the state.
func (s State) String() string {
	switch s {
	case Alive:
		return "alive"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}
