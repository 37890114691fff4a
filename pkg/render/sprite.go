// pkg/render/sprite.go
package render

import (
	"image"
	"image/color"

	"go-turret-defense/internal/component"
	"go-turret-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
)

// GeoM переводит трансформ сущности в матрицу ebiten.
func GeoM(t component.Transform) ebiten.GeoM {
	a := t.Affine()
	var m ebiten.GeoM
	m.SetElement(0, 0, a[0])
	m.SetElement(0, 1, a[1])
	m.SetElement(0, 2, a[2])
	m.SetElement(1, 0, a[3])
	m.SetElement(1, 1, a[4])
	m.SetElement(1, 2, a[5])
	return m
}

// asImage достаёт изображение ebiten из непрозрачного дескриптора.
func asImage(v interfaces.Visual) (*ebiten.Image, bool) {
	img, ok := v.(*ebiten.Image)
	return img, ok && img != nil
}

// drawCentered рисует изображение с центром в начале координат трансформа.
func drawCentered(dst, img *ebiten.Image, t component.Transform) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Concat(GeoM(t))
	dst.DrawImage(img, op)
}

// drawBox рисует прямоугольник-заглушку w x h с центром в начале трансформа.
func (r *SceneRenderer) drawBox(dst *ebiten.Image, t component.Transform, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Concat(GeoM(t))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(r.pixel, op)
}

// NewVisuals uploads decoded images to the GPU under the same ids.
func NewVisuals(images map[string]image.Image) map[string]interfaces.Visual {
	visuals := make(map[string]interfaces.Visual, len(images))
	for id, img := range images {
		visuals[id] = ebiten.NewImageFromImage(img)
	}
	return visuals
}
