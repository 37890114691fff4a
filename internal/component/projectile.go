// internal/component/projectile.go
package component

import (
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/interfaces"

	"github.com/go-gl/mathgl/mgl64"
)

// Immortal — значение Lifespan, при котором снаряд не стареет.
const Immortal = -1.0

// Projectile представляет летящий снаряд.
type Projectile struct {
	Transform
	Velocity  mgl64.Vec2 // пикселей в секунду
	Lifespan  float64    // мс
	Birthtime float64    // мс, показания часов в момент рождения
	Image     interfaces.Visual
	Width     float64
	Height    float64
}

// NewProjectile возвращает бессмертный неподвижный снаряд размера по умолчанию.
func NewProjectile() Projectile {
	return Projectile{
		Transform: NewTransform(),
		Lifespan:  Immortal,
		Width:     config.ProjectileWidth,
		Height:    config.ProjectileHeight,
	}
}

// SetImage назначает изображение и берёт размеры из него.
func (p *Projectile) SetImage(img interfaces.Visual) {
	p.Image = img
	b := img.Bounds()
	p.Width = float64(b.Dx())
	p.Height = float64(b.Dy())
}

// Age возвращает возраст снаряда в миллисекундах.
func (p *Projectile) Age(now float64) float64 {
	return now - p.Birthtime
}

// Expired сообщает, превысил ли снаряд конечное время жизни.
func (p *Projectile) Expired(now float64) bool {
	return p.Lifespan != Immortal && p.Age(now) > p.Lifespan
}
