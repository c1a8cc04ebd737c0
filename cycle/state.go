package cycle

// State identifies a position in the controller's cycle state machine:
//
//	StateAwaitingData -> StateScoring -> (StateAccepted |
//	    StateBelowThreshold | StateAlreadyConfirmed) -> StateIdle
//
// A Step always ends in StateIdle; Outcome.State preserves the terminal
// decision state of the cycle that just ran.
type State int

const (
	// StateAwaitingData means no scorable patterns exist yet; the cycle ended
	// early and more data is needed.
	StateAwaitingData State = iota
	// StateScoring is the transient state while candidates are ranked.
	StateScoring
	// StateAccepted means the top candidate cleared the confidence threshold
	// and was recorded as a derived principle.
	StateAccepted
	// StateBelowThreshold means the top candidate did not reach the
	// confidence threshold; nothing was recorded.
	StateBelowThreshold
	// StateAlreadyConfirmed means the top candidate is already a derived
	// principle; the cycle was a no-op.
	StateAlreadyConfirmed
	// StateIdle is the resting state between cycles.
	StateIdle
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateAwaitingData:
		return "AWAITING_DATA"
	case StateScoring:
		return "SCORING"
	case StateAccepted:
		return "ACCEPTED"
	case StateBelowThreshold:
		return "BELOW_THRESHOLD"
	case StateAlreadyConfirmed:
		return "ALREADY_CONFIRMED"
	case StateIdle:
		return "IDLE"
	default:
		return "UNKNOWN"
	}
}
