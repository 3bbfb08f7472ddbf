// Package reminder implements the break reminder cycle: wait while the user
// works, ask them to look away, hold the break, then ring a bell.
package reminder

// Phase is one state of the reminder cycle.
type Phase int

const (
	PhaseWorking Phase = iota
	PhaseAwaitingAcknowledgement
	PhaseAway
	PhaseAlerting
)

func (p Phase) String() string {
	switch p {
	case PhaseWorking:
		return "working"
	case PhaseAwaitingAcknowledgement:
		return "awaiting_acknowledgement"
	case PhaseAway:
		return "away"
	case PhaseAlerting:
		return "alerting"
	default:
		return "unknown"
	}
}

