package component

import (
	"image"
	"testing"

	"go-turret-defense/internal/config"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

type rectVisual struct{ w, h int }

func (r rectVisual) Bounds() image.Rectangle { return image.Rect(0, 0, r.w, r.h) }

func TestTransformMatrix(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(mgl64.Vec2{10, 20})
	tr.Rotation = 90

	m := tr.Matrix()
	p := m.Mul4x1(mgl64.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 10.0, p.X(), 1e-9)
	assert.InDelta(t, 21.0, p.Y(), 1e-9)
	assert.InDelta(t, config.Depth, p.Z(), 1e-9)

	tr.Scale = mgl64.Vec2{2, 3}
	p = tr.Matrix().Mul4x1(mgl64.Vec4{0, 1, 0, 1})
	assert.InDelta(t, 7.0, p.X(), 1e-9)
	assert.InDelta(t, 20.0, p.Y(), 1e-9)
}

func TestRotate(t *testing.T) {
	v := Rotate(mgl64.Vec2{0, -1000}, 90)
	assert.InDelta(t, 1000.0, v.X(), 1e-9)
	assert.InDelta(t, 0.0, v.Y(), 1e-9)

	v = Rotate(mgl64.Vec2{0, -1000}, 0)
	assert.Equal(t, mgl64.Vec2{0, -1000}, v)
}

func TestProjectileExpiry(t *testing.T) {
	p := NewProjectile()
	assert.Equal(t, config.ProjectileWidth, p.Width)
	assert.Equal(t, config.ProjectileHeight, p.Height)
	assert.False(t, p.Expired(1e12), "immortal by default")

	p.Lifespan = 4000
	p.Birthtime = 100
	assert.False(t, p.Expired(4100), "age equal to lifespan is still alive")
	assert.True(t, p.Expired(4101))

	p.Lifespan = -5
	assert.True(t, p.Expired(100), "negative lifespan expires immediately")
}

func TestProjectileSetImage(t *testing.T) {
	p := NewProjectile()
	p.SetImage(rectVisual{w: 12, h: 30})
	assert.Equal(t, 12.0, p.Width)
	assert.Equal(t, 30.0, p.Height)
}

func TestBodyAccumulators(t *testing.T) {
	b := NewBody()
	assert.Equal(t, config.DefaultDamping, b.Damping)
	b.ApplyForce(mgl64.Vec2{1, 2})
	b.ApplyForce(mgl64.Vec2{3, 4})
	b.ApplyTorque(5)
	b.ApplyTorque(-2)
	assert.Equal(t, mgl64.Vec2{4, 6}, b.Forces)
	assert.Equal(t, 3.0, b.Torque)
}

func TestTransformAffine(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(mgl64.Vec2{5, 7})
	assert.Equal(t, [6]float64{1, 0, 5, 0, 1, 7}, tr.Affine())

	tr.Rotation = 90
	a := tr.Affine()
	// (1, 0) maps to (5, 8)
	assert.InDelta(t, 5.0, a[0]*1+a[1]*0+a[2], 1e-9)
	assert.InDelta(t, 8.0, a[3]*1+a[4]*0+a[5], 1e-9)
}
