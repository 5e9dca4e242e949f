package bars

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// FPS is the animation frame rate.
	FPS = 60

	springFrequency = 9.0
	springDamping   = 0.9
	settleEpsilon   = 0.05
)

// springField eases one value per bar toward its target.
type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newSpringField() springField {
	return springField{spring: harmonica.NewSpring(harmonica.FPS(FPS), springFrequency, springDamping)}
}

// resize keeps existing positions and starts new bars at their target.
func (s *springField) resize(targets []float64) {
	if len(s.pos) == len(targets) {
		return
	}
	s.pos = append([]float64(nil), targets...)
	s.vel = make([]float64, len(targets))
}

// advance moves every bar one frame toward targets and reports whether any
// bar is still moving.
func (s *springField) advance(targets []float64) bool {
	moving := false
	for i, target := range targets {
		p, v := s.spring.Update(s.pos[i], s.vel[i], target)
		if math.Abs(p-target) < settleEpsilon && math.Abs(v) < settleEpsilon {
			p, v = target, 0
		} else {
			moving = true
		}
		s.pos[i], s.vel[i] = p, v
	}
	return moving
}

// snap places every bar at its target.
func (s *springField) snap(targets []float64) {
	s.pos = append(s.pos[:0], targets...)
	s.vel = make([]float64, len(targets))
}
