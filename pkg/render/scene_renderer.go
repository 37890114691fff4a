// pkg/render/scene_renderer.go
package render

import (
	"fmt"
	"image/color"

	"go-turret-defense/internal/app"
	"go-turret-defense/internal/component"
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/system"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// SceneRenderer рисует фон, эмиттеры со снарядами и взрывы.
type SceneRenderer struct {
	pixel      *ebiten.Image
	labelFace  font.Face
	background *ebiten.Image
}

// NewSceneRenderer creates a renderer. background may be nil.
func NewSceneRenderer(labelFace font.Face, background *ebiten.Image) *SceneRenderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &SceneRenderer{
		pixel:      pixel,
		labelFace:  labelFace,
		background: background,
	}
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	if r.background != nil {
		screen.DrawImage(r.background, nil)
	} else {
		screen.Fill(config.BackgroundColor)
	}

	r.drawEmitter(screen, g.Player)
	for _, inv := range g.Invaders.Invaders() {
		r.drawEmitter(screen, inv.Emitter)
	}

	now := g.Now()
	for _, e := range g.Explosions.All() {
		r.drawExplosion(screen, e, now)
	}
}

// drawEmitter рисует снаряды эмиттера, затем сам эмиттер, если он видим.
func (r *SceneRenderer) drawEmitter(screen *ebiten.Image, e *system.Emitter) {
	r.drawProjectiles(screen, e.Sys)
	if !e.Drawable {
		return
	}
	if img, ok := asImage(e.Image); ok {
		drawCentered(screen, img, e.Transform)
		return
	}
	r.drawBox(screen, e.Transform, e.Width, e.Height, config.EmitterColor)
}

// Снаряды не поворачиваются: рисуется только позиция.
func (r *SceneRenderer) drawProjectiles(screen *ebiten.Image, sys *system.ProjectileSystem) {
	for i := range sys.Projectiles {
		p := &sys.Projectiles[i]
		at := component.NewTransform()
		at.SetPosition(p.Position)
		if img, ok := asImage(p.Image); ok {
			drawCentered(screen, img, at)
			continue
		}
		r.drawBox(screen, at, p.Width, p.Height, config.ProjectileColor)
	}
}

func (r *SceneRenderer) drawExplosion(screen *ebiten.Image, e *system.Explosion, now float64) {
	fade := 1.0
	if e.Lifespan > 0 {
		fade = 1 - e.Age(now)/e.Lifespan
	}
	c := FadeColor(config.DebrisColor, fade)

	for i := range e.Debris {
		d := &e.Debris[i]
		at := component.NewTransform()
		at.SetPosition(d.Position.Sub(mgl64.Vec2{config.DebrisSize / 2, config.DebrisSize / 2}))
		r.drawBox(screen, at, config.DebrisSize, config.DebrisSize, c)
	}

	if r.labelFace != nil {
		label := fmt.Sprintf("+%d", e.Points)
		text.Draw(screen, label, r.labelFace, int(e.Position.X()), int(e.Position.Y()), c)
	}
}
