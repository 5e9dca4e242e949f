package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StepChanged     <-chan StepChange
	PhaseChanged    <-chan PhaseChange
	SequenceChanged <-chan SequenceChange
	SpeedChanged    <-chan SpeedChange
	Done            <-chan struct{}

	// Internal write channels
	stepCh     chan StepChange
	phaseCh    chan PhaseChange
	sequenceCh chan SequenceChange
	speedCh    chan SpeedChange
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		stepCh:     make(chan StepChange, eventBufferSize),
		phaseCh:    make(chan PhaseChange, eventBufferSize),
		sequenceCh: make(chan SequenceChange, eventBufferSize),
		speedCh:    make(chan SpeedChange, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StepChanged = s.stepCh
	s.PhaseChanged = s.phaseCh
	s.SequenceChanged = s.sequenceCh
	s.SpeedChanged = s.speedCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendStep sends a step change event (non-blocking).
func (s *Subscription) sendStep(e StepChange) {
	select {
	case s.stepCh <- e:
	default:
		// Drop if buffer full; the controller remains the source of truth.
	}
}

// sendPhase sends a phase change event (non-blocking).
func (s *Subscription) sendPhase(e PhaseChange) {
	select {
	case s.phaseCh <- e:
	default:
	}
}

// sendSequence sends a sequence change event (non-blocking).
func (s *Subscription) sendSequence(e SequenceChange) {
	select {
	case s.sequenceCh <- e:
	default:
	}
}

// sendSpeed sends a speed change event (non-blocking).
func (s *Subscription) sendSpeed(e SpeedChange) {
	select {
	case s.speedCh <- e:
	default:
	}
}
