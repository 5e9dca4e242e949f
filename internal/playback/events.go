package playback

import (
	"time"

	"github.com/llehouerou/sortviz/internal/sorting"
	"github.com/llehouerou/sortviz/internal/step"
)

// StepChange is emitted whenever the index moves.
//
// Emitted by:
//   - StepForward/StepBackward: one event per index change, in order
//   - autoplay ticks: same as StepForward
//   - Load/Reset: Direction Jump, Index 0
//
// Consumers render Step directly; it is the stored snapshot, never recomputed.
type StepChange struct {
	Previous  int
	Index     int
	Step      step.Step
	Direction Direction
}

// PhaseChange is emitted when the playback phase changes.
type PhaseChange struct {
	Previous Phase
	Current  Phase
}

// SequenceChange is emitted when a new sequence replaces the previous one.
type SequenceChange struct {
	Algorithm sorting.Algorithm
	Input     []int
	Len       int
}

// SpeedChange is emitted when the speed changes.
type SpeedChange struct {
	Speed int
	Delay time.Duration
}
