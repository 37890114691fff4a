package system

import (
	"testing"

	"go-turret-defense/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileLifespan(t *testing.T) {
	clock := newTestClock()
	sys := NewProjectileSystem(clock)

	p := projectileAt(0, 0)
	p.Lifespan = 4000
	p.Birthtime = 0
	sys.Add(p)

	for _, tc := range []struct {
		now     float64
		present bool
	}{
		{0, true},
		{3999, true},
		{4000, true},
		{4001, false},
	} {
		clock.Set(tc.now)
		sys.Update()
		assert.Equal(t, tc.present, sys.Len() == 1, "t=%v", tc.now)
	}
}

func TestProjectileUpdateAdvances(t *testing.T) {
	clock := newTestClock()
	sys := NewProjectileSystem(clock)

	p := projectileAt(100, 500)
	p.Velocity = mgl64.Vec2{0, -1000}
	sys.Add(p)

	sys.Update()
	require.Equal(t, 1, sys.Len())
	got := sys.Projectiles[0].Position
	assert.InDelta(t, 100.0, got.X(), 1e-9)
	assert.InDelta(t, 500-1000*clock.Delta(), got.Y(), 1e-9)
}

func TestImmortalStillProjectileIsFixedPoint(t *testing.T) {
	clock := newTestClock()
	sys := NewProjectileSystem(clock)
	sys.Add(projectileAt(12, 34))

	for i := 0; i < 100; i++ {
		clock.Advance(1e6)
		sys.Update()
	}
	require.Equal(t, 1, sys.Len())
	assert.Equal(t, mgl64.Vec2{12, 34}, sys.Projectiles[0].Position)
}

func TestUpdateOnEmptySystem(t *testing.T) {
	sys := NewProjectileSystem(newTestClock())
	assert.NotPanics(t, sys.Update)
	assert.Zero(t, sys.Len())
}

func TestRemoveNearOnEmptySystem(t *testing.T) {
	sys := NewProjectileSystem(newTestClock())
	assert.Zero(t, sys.RemoveNear(mgl64.Vec2{0, 0}, 100))
}

func TestRemoveNearNothingInRange(t *testing.T) {
	sys := NewProjectileSystem(newTestClock())
	cue := &countingCue{}
	sys.SetImpactCue(cue)
	sys.Add(projectileAt(0, 0))
	sys.Add(projectileAt(50, 0))

	before := append(sys.Projectiles[:0:0], sys.Projectiles...)
	assert.Zero(t, sys.RemoveNear(mgl64.Vec2{200, 200}, 10))
	assert.Zero(t, sys.RemoveNear(mgl64.Vec2{200, 200}, 10))
	assert.Equal(t, before, sys.Projectiles)
	assert.Zero(t, cue.plays)
}

func TestRemoveNearIsStrict(t *testing.T) {
	sys := NewProjectileSystem(newTestClock())
	sys.Add(projectileAt(10, 0))

	assert.Zero(t, sys.RemoveNear(mgl64.Vec2{0, 0}, 10), "distance equal to threshold is not a hit")
	assert.Equal(t, 1, sys.RemoveNear(mgl64.Vec2{0, 0}, 10.0001))
}

func TestRemoveNearRemovesExactSubset(t *testing.T) {
	points := []mgl64.Vec2{
		{0, 0}, {3, 4}, {5, 0}, {4.9, 0}, {-3, -3}, {100, 100}, {0, 4.99}, {-5, 0}, {0, 0}, {7, 7},
	}
	center := mgl64.Vec2{0, 0}
	const dist = 5.0

	want := 0
	for _, p := range points {
		if p.Len() < dist {
			want++
		}
	}

	rng := utils.NewPRNGService(42)
	for round := 0; round < 20; round++ {
		order := make([]mgl64.Vec2, len(points))
		copy(order, points)
		for i := len(order) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			order[i], order[j] = order[j], order[i]
		}

		sys := NewProjectileSystem(newTestClock())
		cue := &countingCue{}
		sys.SetImpactCue(cue)
		for _, p := range order {
			sys.Add(projectileAt(p.X(), p.Y()))
		}

		removed := sys.RemoveNear(center, dist)
		assert.Equal(t, want, removed)
		assert.Equal(t, want, cue.plays)
		assert.Equal(t, len(points)-want, sys.Len())
		for _, p := range sys.Projectiles {
			assert.GreaterOrEqual(t, p.Position.Sub(center).Len(), dist)
		}
	}
}

func TestRemoveByIndex(t *testing.T) {
	sys := NewProjectileSystem(newTestClock())
	sys.Add(projectileAt(1, 0))
	sys.Add(projectileAt(2, 0))
	sys.Add(projectileAt(3, 0))

	sys.Remove(1)
	require.Equal(t, 2, sys.Len())
	assert.Equal(t, 1.0, sys.Projectiles[0].Position.X())
	assert.Equal(t, 3.0, sys.Projectiles[1].Position.X())

	assert.Panics(t, func() { sys.Remove(5) })
}
