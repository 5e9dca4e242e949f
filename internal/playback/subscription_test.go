package playback

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/llehouerou/sortviz/internal/sorting"
	"github.com/llehouerou/sortviz/internal/step"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendStep(StepChange{Previous: 0, Index: 1, Step: step.Step{Array: []int{1, 2}}, Direction: Forward})
		sub.sendPhase(PhaseChange{Previous: PhasePaused, Current: PhasePlaying})
		sub.sendSequence(SequenceChange{Algorithm: sorting.Heap, Input: []int{2, 1}, Len: 4})
		sub.sendSpeed(SpeedChange{Speed: 2, Delay: Delay(2)})

		s := <-sub.StepChanged
		if s.Index != 1 || s.Direction != Forward {
			t.Errorf("StepChanged = %+v, want Index 1 Forward", s)
		}

		p := <-sub.PhaseChanged
		if p.Current != PhasePlaying {
			t.Errorf("PhaseChanged.Current = %v, want Playing", p.Current)
		}

		q := <-sub.SequenceChanged
		if q.Algorithm != sorting.Heap || q.Len != 4 {
			t.Errorf("SequenceChanged = %+v, want Heap with 4 steps", q)
		}

		sp := <-sub.SpeedChanged
		if sp.Speed != 2 {
			t.Errorf("SpeedChanged.Speed = %d, want 2", sp.Speed)
		}
		if want := 500 * time.Millisecond / 3; sp.Delay != want {
			t.Errorf("SpeedChanged.Delay = %v, want %v", sp.Delay, want)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for range eventBufferSize + 5 {
		sub.sendStep(StepChange{})
	}

	count := 0
	for {
		select {
		case <-sub.StepChanged:
			count++
		default:
			goto done
		}
	}
done:
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
}
