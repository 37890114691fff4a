// internal/component/transform.go
package component

import (
	"go-turret-defense/internal/config"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform — позиция, поворот и масштаб сущности.
// Поворот хранится в градусах и переводится в радианы только при построении матриц.
type Transform struct {
	Position mgl64.Vec2
	Rotation float64 // градусы
	Scale    mgl64.Vec2
}

// NewTransform возвращает трансформ в начале координат с единичным масштабом.
func NewTransform() Transform {
	return Transform{Scale: mgl64.Vec2{1, 1}}
}

func (t *Transform) SetPosition(p mgl64.Vec2) {
	t.Position = p
}

// Matrix собирает translation * rotation * scaling. z фиксирован на config.Depth.
func (t Transform) Matrix() mgl64.Mat4 {
	translation := mgl64.Translate3D(t.Position.X(), t.Position.Y(), config.Depth)
	rotation := mgl64.HomogRotate3DZ(mgl64.DegToRad(t.Rotation))
	scaling := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), 1)
	return translation.Mul4(rotation).Mul4(scaling)
}

// Orientation — матрица поворота в плоскости, построенная из Rotation.
func (t Transform) Orientation() mgl64.Mat2 {
	return RotationMat(t.Rotation)
}

// RotationMat строит 2D-матрицу поворота на deg градусов вокруг оси z.
func RotationMat(deg float64) mgl64.Mat2 {
	return mgl64.Rotate2D(mgl64.DegToRad(deg))
}

// Rotate поворачивает вектор v на deg градусов.
func Rotate(v mgl64.Vec2, deg float64) mgl64.Vec2 {
	return RotationMat(deg).Mul2x1(v)
}

// Affine возвращает 2D-часть Matrix() в порядке строк: a, b, tx и c, d, ty.
// z отбрасывается, он одинаков для всех сущностей.
func (t Transform) Affine() [6]float64 {
	m := t.Matrix()
	return [6]float64{
		m.At(0, 0), m.At(0, 1), m.At(0, 3),
		m.At(1, 0), m.At(1, 1), m.At(1, 3),
	}
}
