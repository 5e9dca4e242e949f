package controlbar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/sortviz/internal/input"
	"github.com/llehouerou/sortviz/internal/playback"
	"github.com/llehouerou/sortviz/internal/ui/testutil"
)

func TestCounter(t *testing.T) {
	assert.Equal(t, "Step 1 of 5", Counter(0, 5))
	assert.Equal(t, "Step 1,204 of 1,204", Counter(1203, 1204))
	assert.Equal(t, "No steps", Counter(0, 0))
}

func TestSpeedLabel(t *testing.T) {
	assert.Equal(t, "speed +0 · 500ms", SpeedLabel(0, playback.Delay(0)))
	assert.Equal(t, "speed +2 · 167ms", SpeedLabel(2, playback.Delay(2)))
	assert.Equal(t, "speed -2 · 800ms", SpeedLabel(-2, playback.Delay(-2)))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "▶", Symbol(playback.PhasePlaying))
	assert.Equal(t, "⏸", Symbol(playback.PhasePaused))
	assert.Equal(t, "✓", Symbol(playback.PhaseComplete))
	assert.Equal(t, "■", Symbol(playback.PhaseIdle))
}

func TestSettings(t *testing.T) {
	assert.Equal(t, "random · range 20", Settings(State{Mode: input.ModeRandom, Range: 20}))
	assert.Equal(t, "explicit · 1,500 values", Settings(State{Mode: input.ModeExplicit, InputLen: 1500}))
}

func TestRender_Wide(t *testing.T) {
	s := State{Phase: playback.PhasePlaying, Index: 2, Len: 5, Speed: 1, Delay: 250 * time.Millisecond, Range: 10}

	out := testutil.StripANSI(Render(s, 100))
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, Height)
	assert.Contains(t, out, "▶  Step 3 of 5")
	assert.Contains(t, out, "random · range 10")
	assert.Contains(t, out, "speed +1 · 250ms")
	assert.Contains(t, out, "━")
	for _, line := range lines {
		assert.Equal(t, 100, testutil.MeasureWidth(line))
	}
}

func TestRender_NarrowDropsSettings(t *testing.T) {
	s := State{Phase: playback.PhasePaused, Index: 0, Len: 3, Delay: 500 * time.Millisecond, Range: 10}

	out := testutil.StripANSI(Render(s, 50))

	assert.NotContains(t, out, "range")
	assert.Contains(t, out, "Step 1 of 3")
}

func TestProgress(t *testing.T) {
	assert.Equal(t, "──────────", testutil.StripANSI(progress(0, 5, 10)))
	assert.Equal(t, "━━━━━━━━━━", testutil.StripANSI(progress(4, 5, 10)))
	assert.Equal(t, "━━━━━─────", testutil.StripANSI(progress(2, 5, 10)))
	assert.Equal(t, "────", testutil.StripANSI(progress(0, 1, 4)))
}
