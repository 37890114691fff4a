// internal/app/controls.go
package app

import (
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// Controls — клавиши управления кораблём, зажатые в текущем тике.
type Controls struct {
	Up, Down, Left, Right bool
	RotateCW, RotateCCW   bool
}

// ApplyControls превращает зажатые клавиши в силы на один тик.
// Тяга задаётся в осях корабля и поворачивается по его курсу. До старта игры ничего не делает.
func (g *Game) ApplyControls(c Controls) {
	if !g.Player.Running() {
		return
	}
	thrust := g.Tuning.ShipThrust
	if c.Up {
		g.Player.ApplyForce(g.Player.HeadingForce(mgl64.Vec2{0, -thrust}))
	}
	if c.Down {
		g.Player.ApplyForce(g.Player.HeadingForce(mgl64.Vec2{0, thrust}))
	}
	if c.Left {
		g.Player.ApplyForce(g.Player.HeadingForce(mgl64.Vec2{-thrust, 0}))
	}
	if c.Right {
		g.Player.ApplyForce(g.Player.HeadingForce(mgl64.Vec2{thrust, 0}))
	}
	if c.RotateCW {
		g.Player.ApplyTorque(thrust)
	}
	if c.RotateCCW {
		g.Player.ApplyTorque(-thrust)
	}
}

// Grab захватывает корабль, если курсор внутри его окружности.
func (g *Game) Grab(x, y float64) bool {
	mouse := mgl64.Vec2{x, y}
	if g.Player.Position.Sub(mouse).Len() < g.Player.Width/2 {
		g.grabbed = true
		g.mouseLast = mouse
	}
	return g.grabbed
}

// Drag сдвигает захваченный корабль на смещение курсора. Выход курсора за окно отпускает корабль.
func (g *Game) Drag(x, y float64) {
	if !g.started || !g.grabbed {
		return
	}
	mouse := mgl64.Vec2{x, y}
	if !inWindow(mouse) {
		g.grabbed = false
		return
	}
	g.Player.SetPosition(g.Player.Position.Add(mouse.Sub(g.mouseLast)))
	g.mouseLast = mouse
}

func (g *Game) Release() {
	g.grabbed = false
}

func (g *Game) Grabbed() bool {
	return g.grabbed
}

func inWindow(p mgl64.Vec2) bool {
	return utils.InBounds(p.X(), p.Y(), config.ScreenWidth, config.ScreenHeight)
}
