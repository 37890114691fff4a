// internal/system/invader.go
package system

import (
	"log"

	"go-turret-defense/internal/config"
	"go-turret-defense/internal/defs"
	"go-turret-defense/internal/interfaces"

	"github.com/go-gl/mathgl/mgl64"
)

// Invader связывает определение захватчика с его эмиттером.
type Invader struct {
	Def     defs.InvaderDefinition
	Emitter *Emitter
}

// InvaderSystem создаёт эмиттеры захватчиков и каждый тик заново прицеливает их:
// случайная точка на краю, скорость растёт со счётом, случайное направление и темп.
type InvaderSystem struct {
	invaders []*Invader
	rng      interfaces.Random
	tuning   config.Tuning
	width    float64
	height   float64
}

// NewInvaderSystem создаёт по эмиттеру на каждое определение, сохраняя порядок библиотеки.
// Эмиттеры невидимы и остановлены до начала игры.
func NewInvaderSystem(library []defs.InvaderDefinition, clock interfaces.Clock, rng interfaces.Random, tuning config.Tuning) *InvaderSystem {
	s := &InvaderSystem{
		rng:    rng,
		tuning: tuning,
		width:  config.ScreenWidth,
		height: config.ScreenHeight,
	}
	for _, def := range library {
		e := NewEmitter(NewProjectileSystem(clock), clock)
		e.Drawable = false
		e.SetRate(def.InitialRate())
		e.SetPosition(s.edgeCenter(def.Edge))
		e.SetVelocity(s.inward(def.Edge, 0, def.SpeedMin))
		s.invaders = append(s.invaders, &Invader{Def: def, Emitter: e})
	}
	log.Printf("Created %d invader emitters", len(s.invaders))
	return s
}

func (s *InvaderSystem) Invaders() []*Invader {
	return s.invaders
}

func (s *InvaderSystem) SetTuning(t config.Tuning) {
	s.tuning = t
}

func (s *InvaderSystem) StartAll() {
	for _, inv := range s.invaders {
		if !inv.Emitter.Running() {
			inv.Emitter.Start()
		}
	}
}

func (s *InvaderSystem) StopAll() {
	for _, inv := range s.invaders {
		inv.Emitter.Stop()
	}
}

// Aim переставляет эмиттер и перенастраивает его выстрел с учётом текущего счёта.
func (s *InvaderSystem) Aim(inv *Invader, score int) {
	def := inv.Def
	e := inv.Emitter
	bonus := def.SpeedPerScore * float64(score)

	if def.Edge == defs.EdgeCorner {
		corner := int(s.rng.Range(0, 4))
		e.SetPosition(s.corner(corner))
		e.SetVelocity(s.inward(def.Edge, corner, def.SpeedMin+bonus))
	} else {
		e.SetPosition(s.edgePoint(def.Edge))
		speed := def.SpeedMin
		if def.SpeedMax > def.SpeedMin {
			speed = float64(int(s.rng.Range(def.SpeedMin, def.SpeedMax)))
		}
		e.SetVelocity(s.inward(def.Edge, 0, speed+bonus))
	}

	e.SetFiringDir(float64(int(s.rng.Range(config.FiringDirMin, config.FiringDirMax))))
	e.SetRate(s.rng.Range(def.RateMin, def.RateMax) + float64(score)*def.RatePerScore)
	e.SetLifespan(s.tuning.LifespanFor(def.Name) * 1000)
}

// edgePoint — случайная целая точка в средних 90% края.
func (s *InvaderSystem) edgePoint(edge defs.Edge) mgl64.Vec2 {
	along := func(size float64) float64 {
		return float64(int(s.rng.Range(size*config.EdgeMarginMin, size*config.EdgeMarginMax)))
	}
	switch edge {
	case defs.EdgeTop:
		return mgl64.Vec2{along(s.width), 0}
	case defs.EdgeLeft:
		return mgl64.Vec2{0, along(s.height)}
	case defs.EdgeRight:
		return mgl64.Vec2{s.width, along(s.height)}
	case defs.EdgeBottom:
		return mgl64.Vec2{along(s.width), s.height}
	}
	return mgl64.Vec2{}
}

func (s *InvaderSystem) edgeCenter(edge defs.Edge) mgl64.Vec2 {
	switch edge {
	case defs.EdgeTop:
		return mgl64.Vec2{s.width / 2, 0}
	case defs.EdgeLeft:
		return mgl64.Vec2{0, s.height / 2}
	case defs.EdgeRight:
		return mgl64.Vec2{s.width, s.height / 2}
	case defs.EdgeBottom:
		return mgl64.Vec2{s.width / 2, s.height}
	}
	return mgl64.Vec2{}
}

// corner: 0 — левый верхний, 1 — правый верхний, 2 — левый нижний, 3 — правый нижний.
func (s *InvaderSystem) corner(i int) mgl64.Vec2 {
	x, y := 0.0, 0.0
	if i == 1 || i == 3 {
		x = s.width
	}
	if i == 2 || i == 3 {
		y = s.height
	}
	return mgl64.Vec2{x, y}
}

// inward направляет скорость speed от края внутрь экрана.
func (s *InvaderSystem) inward(edge defs.Edge, corner int, speed float64) mgl64.Vec2 {
	switch edge {
	case defs.EdgeTop:
		return mgl64.Vec2{0, speed}
	case defs.EdgeLeft:
		return mgl64.Vec2{speed, 0}
	case defs.EdgeRight:
		return mgl64.Vec2{-speed, 0}
	case defs.EdgeBottom:
		return mgl64.Vec2{0, -speed}
	case defs.EdgeCorner:
		vx, vy := speed, speed
		if corner == 1 || corner == 3 {
			vx = -speed
		}
		if corner == 2 || corner == 3 {
			vy = -speed
		}
		return mgl64.Vec2{vx, vy}
	}
	return mgl64.Vec2{}
}
