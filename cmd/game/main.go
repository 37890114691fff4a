// cmd/game/main.go
package main

import (
	"flag"
	"image"
	"log"
	"time"

	"go-turret-defense/internal/app"
	"go-turret-defense/internal/assets"
	"go-turret-defense/internal/audio"
	"go-turret-defense/internal/audio/synth"
	"go-turret-defense/internal/config"
	"go-turret-defense/internal/defs"
	"go-turret-defense/internal/state"
	"go-turret-defense/internal/ui"
	"go-turret-defense/internal/utils"
	"go-turret-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "path to tuning JSON")
	invadersPath := flag.String("invaders", "", "path to invader definitions JSON")
	logPath := flag.String("log", "", "log file (stderr if empty)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	assetRoot := flag.String("assets", "assets", "asset directory")
	volume := flag.Float64("volume", 1, "sound effect volume, 0..1")
	flag.Parse()

	closeLog, err := utils.SetupLogging(*logPath)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closeLog()

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		if tuning, err = config.LoadTuning(*tuningPath); err != nil {
			log.Printf("WARNING: %v, using default tuning", err)
			tuning = config.DefaultTuning()
		}
	}
	if *invadersPath != "" {
		if err := defs.LoadInvaderDefinitions(*invadersPath); err != nil {
			log.Fatalf("invaders: %v", err)
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Starting with seed %d", *seed)

	am := assets.NewAssetManager(*assetRoot)
	defer am.Cleanup()
	am.LoadManifest(assets.DefaultManifest())

	mixer := audio.NewMixer()
	fireData, _ := am.Sound(assets.SoundFire)
	impactData, _ := am.Sound(assets.SoundImpact)
	fireCue := mixer.CueOrSynth(assets.SoundFire, fireData, synth.FireCue)
	impactCue := mixer.CueOrSynth(assets.SoundImpact, impactData, synth.ImpactCue)
	fireCue.SetVolume(*volume)
	impactCue.SetVolume(*volume)
	media := app.Media{
		Images:    render.NewVisuals(am.Images()),
		FireCue:   fireCue,
		ImpactCue: impactCue,
	}

	fonts, err := ui.LoadFonts()
	if err != nil {
		log.Fatalf("fonts: %v", err)
	}

	clock := utils.NewFrameClock(ebiten.ActualTPS, config.TargetTPS)
	game := app.NewGame(clock, utils.NewPRNGService(*seed), tuning, media)

	var background *ebiten.Image
	if img, ok := am.Image(app.ImageBackground); ok {
		background = scaledBackground(img)
	}
	renderer := render.NewSceneRenderer(fonts.Label, background)

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, clock, renderer, fonts))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}

// scaledBackground растягивает фон на весь экран.
func scaledBackground(img image.Image) *ebiten.Image {
	src := ebiten.NewImageFromImage(img)
	b := img.Bounds()
	if b.Dx() == config.ScreenWidth && b.Dy() == config.ScreenHeight {
		return src
	}
	dst := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(config.ScreenWidth)/float64(b.Dx()), float64(config.ScreenHeight)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}
