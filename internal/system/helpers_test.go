package system

import (
	"image"

	"go-turret-defense/internal/component"
	"go-turret-defense/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

type countingCue struct{ plays int }

func (c *countingCue) Play() { c.plays++ }

type rectVisual struct{ w, h int }

func (r rectVisual) Bounds() image.Rectangle { return image.Rect(0, 0, r.w, r.h) }

func projectileAt(x, y float64) component.Projectile {
	p := component.NewProjectile()
	p.SetPosition(mgl64.Vec2{x, y})
	return p
}

func newTestClock() *utils.ManualClock {
	return utils.NewManualClock(60)
}
