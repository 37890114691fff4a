// internal/state/pause_state.go
package state

import (
	"go-turret-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает часы и симуляцию и рисует поверх кадра игры.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.clock.Pause()
	s.previousState.game.SetPaused(true)
}

func (s *PauseState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)

	const pauseText = "PAUSED"
	face := s.previousState.fonts.Score
	bounds := text.BoundString(face, pauseText)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := config.ScreenHeight/2 - bounds.Min.Y/2
	text.Draw(screen, pauseText, face, x, y, config.TextColor)
}

func (s *PauseState) Exit() {
	s.previousState.game.SetPaused(false)
	s.previousState.clock.Resume()
}
