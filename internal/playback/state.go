// internal/playback/state.go
package playback

// Phase represents the playback phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePaused
	PhasePlaying
	PhaseComplete
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePaused:
		return "Paused"
	case PhasePlaying:
		return "Playing"
	case PhaseComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// CanPlay returns true if Play has an effect in this phase.
func (p Phase) CanPlay() bool {
	return p == PhasePaused
}

// Direction is the direction of travel of a step change.
type Direction int

const (
	Forward Direction = iota
	Backward
	Jump // reset or load
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case Jump:
		return "Jump"
	default:
		return "Unknown"
	}
}
