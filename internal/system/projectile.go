// internal/system/projectile.go
package system

import (
	"slices"

	"go-turret-defense/internal/component"
	"go-turret-defense/internal/interfaces"
	"go-turret-defense/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

// ProjectileSystem владеет набором снарядов одного эмиттера:
// массовое продвижение, истечение срока жизни и удаление по близости.
type ProjectileSystem struct {
	Projectiles []component.Projectile
	clock       interfaces.Clock
	impactCue   interfaces.Cue
}

func NewProjectileSystem(clock interfaces.Clock) *ProjectileSystem {
	return &ProjectileSystem{clock: clock}
}

func (s *ProjectileSystem) Add(p component.Projectile) {
	s.Projectiles = append(s.Projectiles, p)
}

// Remove удаляет снаряд по индексу. Индекс не проверяется.
func (s *ProjectileSystem) Remove(i int) {
	s.Projectiles = slices.Delete(s.Projectiles, i, i+1)
}

func (s *ProjectileSystem) Len() int {
	return len(s.Projectiles)
}

// SetImpactCue задаёт звук, проигрываемый на каждый сбитый снаряд. nil отключает звук.
func (s *ProjectileSystem) SetImpactCue(cue interfaces.Cue) {
	s.impactCue = cue
}

// RemoveNear удаляет все снаряды строго ближе dist к point и возвращает их число.
// Один проход со сжатием: выжившие сдвигаются к началу среза.
func (s *ProjectileSystem) RemoveNear(point mgl64.Vec2, dist float64) int {
	kept := s.Projectiles[:0]
	removed := 0
	for _, p := range s.Projectiles {
		if p.Position.Sub(point).Len() < dist {
			removed++
			if s.impactCue != nil {
				s.impactCue.Play()
			}
			continue
		}
		kept = append(kept, p)
	}
	clear(s.Projectiles[len(kept):])
	s.Projectiles = kept
	return removed
}

// Update сначала удаляет истёкшие снаряды, затем двигает оставшиеся на velocity*dt.
func (s *ProjectileSystem) Update() {
	if len(s.Projectiles) == 0 {
		return
	}

	now := s.clock.ElapsedMillis()
	s.Projectiles = slices.DeleteFunc(s.Projectiles, func(p component.Projectile) bool {
		return p.Expired(now)
	})

	dt := physics.FrameDelta(s.clock)
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
	}
}
