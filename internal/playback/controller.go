// internal/playback/controller.go
package playback

import (
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/llehouerou/sortviz/internal/input"
	"github.com/llehouerou/sortviz/internal/sorting"
	"github.com/llehouerou/sortviz/internal/step"
)

// Controller is the playback state machine over a precomputed step sequence.
// All operations are total: out-of-bounds navigation and transitions that do
// not apply to the current phase are no-ops.
type Controller interface {
	// Sequence lifecycle
	Load(a sorting.Algorithm, src input.Source)
	Reset()

	// Playback control
	Play()
	Pause()
	Toggle()
	StepForward() bool
	StepBackward() bool
	SetSpeed(speed int)

	// State queries
	Phase() Phase
	Index() int
	Len() int
	Current() (step.Step, bool)
	Sequence() step.Sequence
	Algorithm() sorting.Algorithm
	Input() []int
	Speed() int
	Delay() time.Duration
	AtStart() bool
	AtEnd() bool

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}

// Verify controller implements Controller at compile time.
var _ Controller = (*controller)(nil)

// Option configures a controller.
type Option func(*controller)

// WithScheduler replaces the autoplay scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *controller) {
		c.sched = s
	}
}

// WithSpeed sets the initial speed.
func WithSpeed(speed int) Option {
	return func(c *controller) {
		c.speed = ClampSpeed(speed)
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(c *controller) {
		if l != nil {
			c.log = l
		}
	}
}

type controller struct {
	mu sync.Mutex

	sched Scheduler
	log   *slog.Logger

	alg   sorting.Algorithm
	src   input.Source
	input []int
	seq   step.Sequence
	index int
	speed int
	phase Phase

	// timer is the single pending autoplay tick. generation is bumped on every
	// cancel so a tick that already fired but lost the race to the lock is
	// recognized as stale.
	timer      Timer
	generation uint64

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates an idle controller. Call Load to build the first sequence.
func New(opts ...Option) Controller {
	c := &controller{
		sched: RealScheduler(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load discards the current sequence and builds a new one for a and src.
func (c *controller) Load(a sorting.Algorithm, src input.Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.alg = a
	c.src = src
	c.rebuildLocked()
}

// Reset regenerates the sequence from the source and returns to index 0.
// Explicit sources yield the original input; random sources draw a new array.
func (c *controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.phase == PhaseIdle {
		return
	}
	c.rebuildLocked()
}

func (c *controller) rebuildLocked() {
	c.cancelTimerLocked()

	c.input = c.src.Next()
	c.seq = sorting.Generate(c.alg, c.input)
	prev := c.index
	c.index = 0

	c.log.Debug("sequence built",
		"algorithm", c.alg.ID(),
		"input_len", len(c.input),
		"steps", c.seq.Len())

	c.broadcast(func(s *Subscription) {
		s.sendSequence(SequenceChange{Algorithm: c.alg, Input: slices.Clone(c.input), Len: c.seq.Len()})
	})
	c.emitStepLocked(prev, Jump)

	if c.index == c.seq.Len()-1 {
		c.setPhaseLocked(PhaseComplete)
		return
	}
	c.setPhaseLocked(PhasePaused)
}

// Play starts autoplay. No-op unless paused.
func (c *controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.phase.CanPlay() {
		return
	}
	c.setPhaseLocked(PhasePlaying)
	c.scheduleLocked()
}

// Pause stops autoplay. No-op unless playing.
func (c *controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.phase != PhasePlaying {
		return
	}
	c.cancelTimerLocked()
	c.setPhaseLocked(PhasePaused)
}

// Toggle switches between playing and paused.
func (c *controller) Toggle() {
	if c.Phase() == PhasePlaying {
		c.Pause()
		return
	}
	c.Play()
}

// StepForward advances one step. Reaching the last step completes playback.
func (c *controller) StepForward() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	return c.stepForwardLocked()
}

func (c *controller) stepForwardLocked() bool {
	if c.index >= c.seq.Len()-1 {
		return false
	}
	prev := c.index
	c.index++
	c.emitStepLocked(prev, Forward)

	if c.index == c.seq.Len()-1 {
		c.cancelTimerLocked()
		c.setPhaseLocked(PhaseComplete)
	}
	return true
}

// StepBackward replays the previous stored step. Leaving the last step
// returns a completed controller to paused.
func (c *controller) StepBackward() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.index <= 0 {
		return false
	}
	prev := c.index
	c.index--
	c.emitStepLocked(prev, Backward)

	if c.phase == PhaseComplete {
		c.setPhaseLocked(PhasePaused)
	}
	return true
}

// SetSpeed changes the autoplay speed. While playing, the pending tick is
// replaced by one scheduled with the new delay.
func (c *controller) SetSpeed(speed int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	speed = ClampSpeed(speed)
	if c.closed || speed == c.speed {
		return
	}
	c.speed = speed
	c.broadcast(func(s *Subscription) {
		s.sendSpeed(SpeedChange{Speed: speed, Delay: Delay(speed)})
	})
	if c.phase == PhasePlaying {
		c.scheduleLocked()
	}
}

// scheduleLocked replaces any pending tick with a new one.
func (c *controller) scheduleLocked() {
	c.cancelTimerLocked()
	gen := c.generation
	c.timer = c.sched.AfterFunc(Delay(c.speed), func() {
		c.tick(gen)
	})
}

// cancelTimerLocked stops the pending tick and invalidates any tick that has
// already fired but not yet acquired the lock.
func (c *controller) cancelTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
}

func (c *controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.generation || c.phase != PhasePlaying {
		c.log.Debug("stale tick dropped", "generation", gen)
		return
	}
	c.timer = nil
	c.stepForwardLocked()
	if c.phase == PhasePlaying {
		c.scheduleLocked()
	}
}

func (c *controller) setPhaseLocked(p Phase) {
	if p == c.phase {
		return
	}
	prev := c.phase
	c.phase = p
	c.broadcast(func(s *Subscription) {
		s.sendPhase(PhaseChange{Previous: prev, Current: p})
	})
}

func (c *controller) emitStepLocked(prev int, dir Direction) {
	if c.seq.Len() == 0 {
		return
	}
	e := StepChange{Previous: prev, Index: c.index, Step: c.seq.At(c.index), Direction: dir}
	c.broadcast(func(s *Subscription) {
		s.sendStep(e)
	})
}

func (c *controller) broadcast(send func(*Subscription)) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		send(sub)
	}
}

// Phase returns the current phase.
func (c *controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Index returns the current step index.
func (c *controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Len returns the number of steps in the current sequence.
func (c *controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.Len()
}

// Current returns the step at the current index, or false when idle.
func (c *controller) Current() (step.Step, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq.Len() == 0 {
		return step.Step{}, false
	}
	return c.seq.At(c.index), true
}

// Sequence returns the current sequence.
func (c *controller) Sequence() step.Sequence {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Algorithm returns the algorithm of the current sequence.
func (c *controller) Algorithm() sorting.Algorithm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alg
}

// Input returns a copy of the array the current sequence was built from.
func (c *controller) Input() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.input)
}

// Speed returns the current speed.
func (c *controller) Speed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// Delay returns the autoplay interval for the current speed.
func (c *controller) Delay() time.Duration {
	return Delay(c.Speed())
}

// AtStart reports whether StepBackward would be a no-op.
func (c *controller) AtStart() bool {
	return c.Index() == 0
}

// AtEnd reports whether StepForward would be a no-op.
func (c *controller) AtEnd() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index >= c.seq.Len()-1
}

// Subscribe creates a new event subscription.
func (c *controller) Subscribe() *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	if c.closed {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Close cancels autoplay and closes all subscriptions.
func (c *controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.cancelTimerLocked()
	c.closed = true

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	c.log.Debug("playback closed")
	return nil
}
