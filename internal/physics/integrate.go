package physics

import (
	"go-turret-defense/internal/component"
	"go-turret-defense/internal/interfaces"

	"github.com/go-gl/mathgl/mgl64"
)

// FrameDelta returns the seconds covered by one frame at the clock's current rate.
// The step is frame-rate normalized, not fixed.
func FrameDelta(clock interfaces.Clock) float64 {
	return 1.0 / clock.FrameRate()
}

// Integrate performs one semi-implicit Euler step:
// p += v*dt; a = acc + forces; v = (v + a*dt) * damping, and the same for rotation.
// Force and torque accumulators are cleared afterwards.
func Integrate(t *component.Transform, b *component.Body, dt float64) {
	t.Position = t.Position.Add(b.Velocity.Mul(dt))
	accel := b.Acceleration.Add(b.Forces)
	b.Velocity = b.Velocity.Add(accel.Mul(dt)).Mul(b.Damping)

	t.Rotation += b.AngularVelocity * dt
	angAccel := b.AngularAcceleration + b.Torque
	b.AngularVelocity = (b.AngularVelocity + angAccel*dt) * b.Damping

	b.Forces = mgl64.Vec2{}
	b.Torque = 0
}
