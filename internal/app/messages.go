package app

import (
	"time"

	"github.com/llehouerou/sortviz/internal/playback"
)

// Controller events, forwarded into the update loop by WatchEvents.
type (
	StepMsg     playback.StepChange
	PhaseMsg    playback.PhaseChange
	SequenceMsg playback.SequenceChange
	SpeedMsg    playback.SpeedChange
)

// EventsClosedMsg is sent once the controller has been closed.
type EventsClosedMsg struct{}

// FrameMsg drives the bar animation.
type FrameMsg time.Time
