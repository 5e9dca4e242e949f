package playback

import "time"

// Speed bounds accepted by SetSpeed.
const (
	MinSpeed = -4
	MaxSpeed = 4
)

const (
	baseDelay     = 500 * time.Millisecond
	minDelay      = 50 * time.Millisecond
	slowDelayUnit = 400 * time.Millisecond
)

// Delay maps a speed to the autoplay interval. Non-negative speeds divide the
// base delay by speed+1 with a 50ms floor; negative speeds slow down linearly
// at 400ms per unit.
func Delay(speed int) time.Duration {
	if speed < 0 {
		return time.Duration(-speed) * slowDelayUnit
	}
	return max(baseDelay/time.Duration(speed+1), minDelay)
}

// ClampSpeed bounds speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed int) int {
	return min(max(speed, MinSpeed), MaxSpeed)
}

// Timer is a pending scheduled call.
type Timer interface {
	// Stop prevents the call from firing. It reports whether the call was
	// still pending.
	Stop() bool
}

// Scheduler schedules a call after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// realScheduler schedules on the runtime timer heap.
type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealScheduler returns a Scheduler backed by time.AfterFunc.
func RealScheduler() Scheduler {
	return realScheduler{}
}
