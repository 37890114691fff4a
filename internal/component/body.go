// internal/component/body.go
package component

import (
	"go-turret-defense/internal/config"

	"github.com/go-gl/mathgl/mgl64"
)

// Body — состояние физического тела для интегратора.
// Forces и Torque — импульсы на один тик, обнуляются после интегрирования.
type Body struct {
	Velocity     mgl64.Vec2
	Acceleration mgl64.Vec2
	Forces       mgl64.Vec2

	AngularVelocity     float64 // градусы/с
	AngularAcceleration float64
	Torque              float64

	Damping float64 // множитель скорости за тик
}

func NewBody() Body {
	return Body{Damping: config.DefaultDamping}
}

// ApplyForce добавляет силу к накопителю текущего тика.
func (b *Body) ApplyForce(f mgl64.Vec2) {
	b.Forces = b.Forces.Add(f)
}

// ApplyTorque добавляет угловую силу к накопителю текущего тика.
func (b *Body) ApplyTorque(f float64) {
	b.Torque += f
}
