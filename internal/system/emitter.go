// internal/system/emitter.go
package system

import (
	"go-turret-defense/internal/component"
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/interfaces"
	"go-turret-defense/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

// Emitter — таймерный источник снарядов и одновременно физическое тело (корабль игрока).
// Ориентация не хранится матрицами: Heading и FiringMat вычисляются из градусов при чтении.
type Emitter struct {
	component.Transform
	component.Body

	Sys *ProjectileSystem

	Rate           float64    // снарядов в секунду
	FiringDir      float64    // градусы, поворот LaunchVelocity
	LaunchVelocity mgl64.Vec2 // базовая скорость новых снарядов
	Lifespan       float64    // мс, копируется в новые снаряды

	Image       interfaces.Visual
	Width       float64
	Height      float64
	ChildImage  interfaces.Visual
	ChildWidth  float64
	ChildHeight float64
	Drawable    bool

	fireCue        interfaces.Cue
	fireCueEnabled bool

	running     bool
	lastSpawned float64
	clock       interfaces.Clock
}

func NewEmitter(sys *ProjectileSystem, clock interfaces.Clock) *Emitter {
	return &Emitter{
		Transform:      component.NewTransform(),
		Body:           component.NewBody(),
		Sys:            sys,
		Rate:           config.DefaultRate,
		LaunchVelocity: mgl64.Vec2{0, config.FiringSpeed},
		Lifespan:       config.Life,
		Width:          config.EmitterWidth,
		Height:         config.EmitterHeight,
		ChildWidth:     config.ProjectileWidth,
		ChildHeight:    config.ProjectileHeight,
		Drawable:       true,
		clock:          clock,
	}
}

// Start запускает таймер; текущее время становится точкой отсчёта.
func (e *Emitter) Start() {
	e.running = true
	e.lastSpawned = e.clock.ElapsedMillis()
}

// Stop останавливает таймер, уже выпущенные снаряды остаются.
func (e *Emitter) Stop() {
	e.running = false
}

func (e *Emitter) Running() bool {
	return e.running
}

// Update выпускает снаряд, если прошло больше 1000/Rate мс, и обновляет систему снарядов.
// Rate <= 0 не проверяется: 0 означает «никогда», отрицательный — каждый тик.
func (e *Emitter) Update() {
	if !e.running {
		return
	}

	now := e.clock.ElapsedMillis()
	if now-e.lastSpawned > 1000.0/e.Rate {
		e.spawn(now)
		e.lastSpawned = now
	}
	e.Sys.Update()
}

func (e *Emitter) spawn(now float64) {
	p := component.NewProjectile()
	if e.ChildImage != nil {
		p.SetImage(e.ChildImage)
	}
	p.Velocity = e.FiringVelocity()
	p.Lifespan = e.Lifespan
	p.SetPosition(e.Position)
	p.Birthtime = now
	e.Sys.Add(p)

	if e.fireCue != nil && e.fireCueEnabled {
		e.fireCue.Play()
	}
}

// Integrate — шаг полунеявного Эйлера для корабля. Направление стрельбы следует за курсом.
func (e *Emitter) Integrate() {
	physics.Integrate(&e.Transform, &e.Body, physics.FrameDelta(e.clock))
	e.FiringDir = e.Rotation
}

// Heading — матрица курса, по ней ориентируются тяга и тело.
func (e *Emitter) Heading() mgl64.Mat2 {
	return e.Orientation()
}

// FiringMat — матрица поворота базовой скорости снарядов.
func (e *Emitter) FiringMat() mgl64.Mat2 {
	return component.RotationMat(e.FiringDir)
}

func (e *Emitter) FiringVelocity() mgl64.Vec2 {
	return e.FiringMat().Mul2x1(e.LaunchVelocity)
}

// HeadingForce переводит силу из локальных координат корабля в мировые.
func (e *Emitter) HeadingForce(local mgl64.Vec2) mgl64.Vec2 {
	return e.Heading().Mul2x1(local)
}

func (e *Emitter) SetHeading(deg float64) {
	e.Rotation = deg
}

func (e *Emitter) SetFiringDir(deg float64) {
	e.FiringDir = deg
}

func (e *Emitter) SetVelocity(v mgl64.Vec2) {
	e.LaunchVelocity = v
}

func (e *Emitter) SetRate(r float64) {
	e.Rate = r
}

func (e *Emitter) SetLifespan(ms float64) {
	e.Lifespan = ms
}

// SetImage задаёт изображение эмиттера; размеры берутся из него.
func (e *Emitter) SetImage(img interfaces.Visual) {
	e.Image = img
	b := img.Bounds()
	e.Width = float64(b.Dx())
	e.Height = float64(b.Dy())
}

// SetChildImage задаёт изображение снарядов; размеры снарядов берутся из него.
func (e *Emitter) SetChildImage(img interfaces.Visual) {
	e.ChildImage = img
	b := img.Bounds()
	e.SetChildSize(float64(b.Dx()), float64(b.Dy()))
}

func (e *Emitter) SetChildSize(w, h float64) {
	e.ChildWidth = w
	e.ChildHeight = h
}

func (e *Emitter) SetFireCue(cue interfaces.Cue) {
	e.fireCue = cue
}

// EnableFireCue включает или выключает звук выстрела, не сбрасывая сам звук.
func (e *Emitter) EnableFireCue(on bool) {
	e.fireCueEnabled = on
}

func (e *Emitter) FireCueEnabled() bool {
	return e.fireCueEnabled
}
