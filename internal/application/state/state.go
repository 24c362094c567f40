package state

// SessionState represents the current state of the demo session
type SessionState int

const (
	StatePlaying SessionState = iota
	StatePaused
	StateReplaying
	StateFinished
)

// String returns the string representation of the session state
func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Running reports whether the session advances in this state
func (s SessionState) Running() bool {
	return s == StatePlaying || s == StateReplaying
}

// TogglePause flips between paused and the state paused from
func (s SessionState) TogglePause(resume SessionState) SessionState {
	switch s {
	case StatePaused:
		return resume
	case StateFinished:
		return s
	default:
		return StatePaused
	}
}
