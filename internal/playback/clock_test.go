package playback

import (
	"testing"
	"testing/synctest"
	"time"
)

func TestDelay(t *testing.T) {
	tests := []struct {
		speed int
		want  time.Duration
	}{
		{0, 500 * time.Millisecond},
		{1, 250 * time.Millisecond},
		{4, 100 * time.Millisecond},
		{9, 50 * time.Millisecond},
		{20, 50 * time.Millisecond},
		{-1, 400 * time.Millisecond},
		{-2, 800 * time.Millisecond},
		{-4, 1600 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := Delay(tt.speed); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.speed, got, tt.want)
		}
	}
}

func TestDelay_AsymmetricAroundZero(t *testing.T) {
	// -1 is faster than 0: the two branches are not continuous.
	if Delay(-1) >= Delay(0) {
		t.Errorf("Delay(-1) = %v, want less than Delay(0) = %v", Delay(-1), Delay(0))
	}
}

func TestDelay_MonotonicForNonNegative(t *testing.T) {
	for s := range MaxSpeed {
		if Delay(s+1) > Delay(s) {
			t.Errorf("Delay(%d) = %v > Delay(%d) = %v", s+1, Delay(s+1), s, Delay(s))
		}
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{MaxSpeed, MaxSpeed},
		{MaxSpeed + 3, MaxSpeed},
		{MinSpeed, MinSpeed},
		{-100, MinSpeed},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.in); got != tt.want {
			t.Errorf("ClampSpeed(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRealScheduler_FiresAfterDelay(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		fired := make(chan time.Time, 1)
		start := time.Now()
		RealScheduler().AfterFunc(Delay(0), func() { fired <- time.Now() })

		at := <-fired
		if got := at.Sub(start); got != 500*time.Millisecond {
			t.Errorf("fired after %v, want 500ms", got)
		}
	})
}

func TestRealScheduler_StopPreventsCall(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		called := false
		tm := RealScheduler().AfterFunc(time.Second, func() { called = true })
		if !tm.Stop() {
			t.Fatal("Stop() = false, want true for pending timer")
		}
		time.Sleep(2 * time.Second)
		if called {
			t.Error("callback ran after Stop")
		}
	})
}
