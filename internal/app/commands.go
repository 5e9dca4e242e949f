package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sortviz/internal/playback"
	"github.com/llehouerou/sortviz/internal/ui/bars"
)

// WatchEvents waits for the next controller event and converts it to a
// message. The update loop re-issues it after every event.
func WatchEvents(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StepChanged:
			return StepMsg(e)
		case e := <-sub.PhaseChanged:
			return PhaseMsg(e)
		case e := <-sub.SequenceChanged:
			return SequenceMsg(e)
		case e := <-sub.SpeedChanged:
			return SpeedMsg(e)
		case <-sub.Done:
			return EventsClosedMsg{}
		}
	}
}

// FrameCmd schedules the next animation frame.
func FrameCmd() tea.Cmd {
	return tea.Tick(time.Second/bars.FPS, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
