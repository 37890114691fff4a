// internal/ui/tuning_panel.go
package ui

import (
	"fmt"
	"image"
	"math"

	"go-turret-defense/internal/config"
	"go-turret-defense/internal/defs"
	"go-turret-defense/internal/system"
	"go-turret-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelWidth     = 260
	panelMargin    = 10
	panelPadding   = 12
	lineHeight     = 20
	animationSpeed = 30.0
)

// TuningPanel выезжает слева и показывает текущие настройки и счёт сбитых по типам.
// Скрыта по умолчанию, переключается клавишей H.
type TuningPanel struct {
	IsVisible bool
	face      font.Face
	currentX  float64
	targetX   float64
}

func NewTuningPanel(face font.Face) *TuningPanel {
	return &TuningPanel{
		face:     face,
		currentX: -panelWidth,
		targetX:  -panelWidth,
	}
}

func (p *TuningPanel) Toggle() {
	p.IsVisible = !p.IsVisible
	if p.IsVisible {
		p.targetX = panelMargin
	} else {
		p.targetX = -panelWidth
	}
}

// Update двигает панель к целевой позиции.
func (p *TuningPanel) Update() {
	diff := p.targetX - p.currentX
	if math.Abs(diff) < animationSpeed {
		p.currentX = p.targetX
		return
	}
	p.currentX += math.Copysign(animationSpeed, diff)
}

func (p *TuningPanel) lines(tuning config.Tuning, scores *system.ScoreSystem) []string {
	lines := make([]string, 0, 2*len(defs.InvaderLibrary)+5)
	for _, def := range defs.InvaderLibrary {
		lines = append(lines, fmt.Sprintf("Lifespan (%s): %.1f s", def.Name, tuning.LifespanFor(def.Name)))
	}
	lines = append(lines,
		fmt.Sprintf("Ship Thrust: %.0f", tuning.ShipThrust),
		fmt.Sprintf("Boom Power: %.0f", tuning.BoomPower),
		fmt.Sprintf("Boom Life: %.1f s", tuning.BoomLife),
		fmt.Sprintf("Boom Dust: %d", tuning.BoomDust),
		"",
	)
	for _, def := range defs.InvaderLibrary {
		lines = append(lines, fmt.Sprintf("Shot down (%s): %d", def.Name, scores.Kills(def.Kind)))
	}
	return lines
}

func (p *TuningPanel) Draw(screen *ebiten.Image, tuning config.Tuning, scores *system.ScoreSystem) {
	if p.currentX <= -panelWidth {
		return
	}

	lines := p.lines(tuning, scores)
	height := panelPadding*2 + lineHeight*len(lines)
	rect := image.Rect(int(p.currentX), panelMargin, int(p.currentX)+panelWidth, panelMargin+height)

	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), 2, render.DarkenColor(config.TextColor), true)

	y := rect.Min.Y + panelPadding + lineHeight - 4
	for _, line := range lines {
		text.Draw(screen, line, p.face, rect.Min.X+panelPadding, y, config.TextColor)
		y += lineHeight
	}
}
