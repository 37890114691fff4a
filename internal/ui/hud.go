// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-turret-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const startPrompt = "Press space to start the game"

// ScoreBoard отображает счёт вверху по центру.
type ScoreBoard struct {
	X, Y int
	face font.Face
}

func NewScoreBoard(face font.Face) *ScoreBoard {
	return &ScoreBoard{
		X:    config.ScreenWidth/2 - config.ScoreBoardOffsetX,
		Y:    config.ScoreBoardY,
		face: face,
	}
}

func (b *ScoreBoard) Draw(screen *ebiten.Image, score int) {
	text.Draw(screen, fmt.Sprintf("Score: %d", score), b.face, b.X, b.Y, config.TextColor)
}

// StartPrompt показывает подсказку, пока игра не началась.
type StartPrompt struct {
	X, Y int
	face font.Face
}

func NewStartPrompt(face font.Face) *StartPrompt {
	return &StartPrompt{
		X:    config.ScreenWidth/2 - config.PromptOffsetX,
		Y:    config.ScreenHeight - config.PromptOffsetY,
		face: face,
	}
}

func (p *StartPrompt) Draw(screen *ebiten.Image, started bool) {
	if started {
		return
	}
	text.Draw(screen, startPrompt, p.face, p.X, p.Y, config.TextColor)
}
