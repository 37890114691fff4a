// internal/state/game_state.go
package state

import (
	"go-turret-defense/internal/app"
	"go-turret-defense/internal/ui"
	"go-turret-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pauser — часы, которые можно заморозить на время паузы.
type Pauser interface {
	Pause()
	Resume()
}

// GameState — состояние игры: ввод, шаг симуляции и отрисовка.
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	clock       Pauser
	renderer    *render.SceneRenderer
	scoreBoard  *ui.ScoreBoard
	prompt      *ui.StartPrompt
	tuningPanel *ui.TuningPanel
	fonts       *ui.Fonts
}

func NewGameState(sm *StateMachine, game *app.Game, clock Pauser, renderer *render.SceneRenderer, fonts *ui.Fonts) *GameState {
	return &GameState{
		sm:          sm,
		game:        game,
		clock:       clock,
		renderer:    renderer,
		scoreBoard:  ui.NewScoreBoard(fonts.Score),
		prompt:      ui.NewStartPrompt(fonts.Prompt),
		tuningPanel: ui.NewTuningPanel(fonts.Panel),
		fonts:       fonts,
	}
}

// Enter вызывается и при возврате из паузы: отпускания клавиш за это время не видны inpututil.
func (g *GameState) Enter() {
	g.game.SyncInput(ebiten.IsKeyPressed(ebiten.KeySpace))
}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.tuningPanel.Toggle()
	}
	g.tuningPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.SetTrigger(true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		g.game.SetTrigger(false)
	}

	g.game.ApplyControls(app.Controls{
		Up:        ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:      ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		RotateCW:  ebiten.IsKeyPressed(ebiten.KeyR),
		RotateCCW: ebiten.IsKeyPressed(ebiten.KeyE),
	})
	g.handleMouse()

	g.game.Update()
}

func (g *GameState) handleMouse() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.game.Grab(fx, fy)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.game.Release()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.game.Drag(fx, fy)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game)
	g.scoreBoard.Draw(screen, g.game.Score())
	g.prompt.Draw(screen, g.game.Started())
	g.tuningPanel.Draw(screen, g.game.Tuning, g.game.Scores)
}

func (g *GameState) Exit() {}
