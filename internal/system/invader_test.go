package system

import (
	"testing"

	"go-turret-defense/internal/config"
	"go-turret-defense/internal/defs"
	"go-turret-defense/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvaders(seed int64) (*InvaderSystem, *utils.ManualClock) {
	clock := newTestClock()
	tuning := config.DefaultTuning()
	tuning.Lifespans["top"] = 2.5
	return NewInvaderSystem(defs.InvaderLibrary, clock, utils.NewPRNGService(seed), tuning), clock
}

func TestInvaderSystemCreatesEmittersInLibraryOrder(t *testing.T) {
	s, _ := newTestInvaders(1)
	require.Len(t, s.Invaders(), len(defs.InvaderLibrary))
	for i, inv := range s.Invaders() {
		assert.Equal(t, defs.InvaderLibrary[i].Kind, inv.Def.Kind)
		assert.False(t, inv.Emitter.Drawable)
		assert.False(t, inv.Emitter.Running())
	}
}

func TestInvaderAimRegularEdges(t *testing.T) {
	s, _ := newTestInvaders(7)
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)

	for round := 0; round < 200; round++ {
		score := round * 3
		bonus := 0.75 * float64(score)
		for _, inv := range s.Invaders()[:4] {
			s.Aim(inv, score)
			e := inv.Emitter
			pos, vel := e.Position, e.LaunchVelocity

			switch inv.Def.Edge {
			case defs.EdgeTop:
				assert.Zero(t, pos.Y())
				assert.True(t, pos.X() >= w*0.05-1 && pos.X() < w*0.95)
				assert.Zero(t, vel.X())
				assert.True(t, vel.Y() >= 400+bonus && vel.Y() <= 600+bonus, "vy=%v", vel.Y())
			case defs.EdgeLeft:
				assert.Zero(t, pos.X())
				assert.True(t, pos.Y() >= h*0.05-1 && pos.Y() < h*0.95)
				assert.True(t, vel.X() >= 400+bonus && vel.X() <= 600+bonus)
			case defs.EdgeRight:
				assert.Equal(t, w, pos.X())
				assert.True(t, vel.X() <= -400-bonus && vel.X() >= -600-bonus)
			case defs.EdgeBottom:
				assert.Equal(t, h, pos.Y())
				assert.Zero(t, vel.X())
				assert.True(t, vel.Y() <= -400-bonus && vel.Y() >= -600-bonus)
			}

			assert.Equal(t, pos.X(), float64(int(pos.X())), "edge positions are whole pixels")
			assert.True(t, e.FiringDir >= -45 && e.FiringDir <= 45, "dir=%v", e.FiringDir)
			assert.Equal(t, e.FiringDir, float64(int(e.FiringDir)))
			extra := float64(score) / 500
			assert.True(t, e.Rate >= 0.25+extra && e.Rate < 0.51+extra, "rate=%v", e.Rate)
		}
	}
}

func TestInvaderAimSpecialCorner(t *testing.T) {
	s, _ := newTestInvaders(3)
	special := s.Invaders()[4]
	require.Equal(t, defs.EdgeCorner, special.Def.Edge)

	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	seen := map[[2]float64]bool{}
	for i := 0; i < 400; i++ {
		s.Aim(special, 100)
		e := special.Emitter
		pos, vel := e.Position, e.LaunchVelocity
		seen[[2]float64{pos.X(), pos.Y()}] = true

		assert.Contains(t, []float64{0, w}, pos.X())
		assert.Contains(t, []float64{0, h}, pos.Y())
		assert.InDelta(t, 1575.0, abs(vel.X()), 1e-9)
		assert.InDelta(t, 1575.0, abs(vel.Y()), 1e-9)
		assert.Equal(t, pos.X() == 0, vel.X() > 0, "moves away from its corner")
		assert.Equal(t, pos.Y() == 0, vel.Y() > 0)
		assert.True(t, e.Rate >= 0.14 && e.Rate < 0.21, "special rate ignores score")
	}
	assert.Len(t, seen, 4, "all corners are used")
}

func TestInvaderAimLifespanFromTuning(t *testing.T) {
	s, _ := newTestInvaders(5)
	for _, inv := range s.Invaders() {
		s.Aim(inv, 0)
	}
	assert.Equal(t, 2500.0, s.Invaders()[0].Emitter.Lifespan)
	assert.Equal(t, config.DefaultLifespanSeconds*1000, s.Invaders()[1].Emitter.Lifespan)

	tuning := config.DefaultTuning()
	tuning.Lifespans["left"] = 1
	s.SetTuning(tuning)
	s.Aim(s.Invaders()[1], 0)
	assert.Equal(t, 1000.0, s.Invaders()[1].Emitter.Lifespan)
}

func TestInvaderStartStopAll(t *testing.T) {
	s, clock := newTestInvaders(9)
	clock.Set(500)
	s.StartAll()
	for _, inv := range s.Invaders() {
		assert.True(t, inv.Emitter.Running())
	}
	s.StopAll()
	for _, inv := range s.Invaders() {
		assert.False(t, inv.Emitter.Running())
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
