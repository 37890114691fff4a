// internal/system/explosion.go
package system

import (
	"slices"

	"go-turret-defense/internal/component"
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/interfaces"
	"go-turret-defense/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

// Explosion — веер обломков из точки попадания с собственным временем жизни.
// Обломки живут, пока живёт взрыв.
type Explosion struct {
	component.Transform
	Debris    []component.Debris
	Points    int
	Lifespan  float64 // мс
	Birthtime float64 // мс
}

// NewExplosion создаёт count обломков в site. Обломок i получает силу power*1000,
// повёрнутую на i*360/count градусов, поэтому веер равномерный.
func NewExplosion(site mgl64.Vec2, points int, lifeSeconds, power float64, count int, now float64) *Explosion {
	e := &Explosion{
		Transform: component.NewTransform(),
		Points:    points,
		Lifespan:  lifeSeconds * 1000,
		Birthtime: now,
	}
	e.SetPosition(site)

	if count <= 0 {
		return e
	}
	e.Debris = make([]component.Debris, 0, count)
	base := mgl64.Vec2{0, power * 1000}
	step := 360.0 / float64(count)
	for i := range count {
		d := component.NewDebris(site)
		d.ApplyForce(component.Rotate(base, float64(i)*step))
		e.Debris = append(e.Debris, d)
	}
	return e
}

// Update интегрирует каждый обломок один раз. Начальный импульс гасится демпфированием.
func (e *Explosion) Update(dt float64) {
	for i := range e.Debris {
		d := &e.Debris[i]
		physics.Integrate(&d.Transform, &d.Body, dt)
	}
}

func (e *Explosion) Age(now float64) float64 {
	return now - e.Birthtime
}

func (e *Explosion) Expired(now float64) bool {
	return e.Lifespan != component.Immortal && e.Age(now) > e.Lifespan
}

// ExplosionSystem хранит активные взрывы и создаёт новые по текущей настройке.
type ExplosionSystem struct {
	explosions []*Explosion
	clock      interfaces.Clock

	Power float64
	Life  float64 // секунды
	Dust  int
}

func NewExplosionSystem(clock interfaces.Clock, tuning config.Tuning) *ExplosionSystem {
	s := &ExplosionSystem{clock: clock}
	s.Configure(tuning)
	return s
}

// Configure переносит параметры взрыва из настройки. Уже созданные взрывы не меняются.
func (s *ExplosionSystem) Configure(tuning config.Tuning) {
	s.Power = tuning.BoomPower
	s.Life = tuning.BoomLife
	s.Dust = tuning.BoomDust
}

func (s *ExplosionSystem) Spawn(site mgl64.Vec2, points int) *Explosion {
	e := NewExplosion(site, points, s.Life, s.Power, s.Dust, s.clock.ElapsedMillis())
	s.explosions = append(s.explosions, e)
	return e
}

func (s *ExplosionSystem) Update() {
	if len(s.explosions) == 0 {
		return
	}
	dt := physics.FrameDelta(s.clock)
	for _, e := range s.explosions {
		e.Update(dt)
	}
}

// RemoveExpired удаляет истёкшие взрывы вместе с их обломками и возвращает их число.
func (s *ExplosionSystem) RemoveExpired() int {
	before := len(s.explosions)
	now := s.clock.ElapsedMillis()
	s.explosions = slices.DeleteFunc(s.explosions, func(e *Explosion) bool {
		return e.Expired(now)
	})
	return before - len(s.explosions)
}

func (s *ExplosionSystem) All() []*Explosion {
	return s.explosions
}

func (s *ExplosionSystem) Len() int {
	return len(s.explosions)
}

func (s *ExplosionSystem) Clear() {
	s.explosions = nil
}
