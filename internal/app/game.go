// internal/app/game.go
package app

import (
	"log"

	"go-turret-defense/internal/config"
	"go-turret-defense/internal/defs"
	"go-turret-defense/internal/event"
	"go-turret-defense/internal/interfaces"
	"go-turret-defense/internal/system"
	"go-turret-defense/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
)

// Media — загруженные изображения и звуки. Любое поле может отсутствовать:
// без изображения рисуется заглушка, без звука игра молчит.
type Media struct {
	Images    map[string]interfaces.Visual
	FireCue   interfaces.Cue
	ImpactCue interfaces.Cue
}

// Ключи изображений, не привязанные к определениям захватчиков.
const (
	ImageBackground = "background"
	ImageShip       = "ship"
	ImageProjectile = "projectile"
)

// Game holds the main game state and logic.
type Game struct {
	Player          *system.Emitter
	Invaders        *system.InvaderSystem
	Explosions      *system.ExplosionSystem
	Collisions      *system.CollisionSystem
	Scores          *system.ScoreSystem
	EventDispatcher *event.Dispatcher
	Tuning          config.Tuning
	Media           Media

	clock   interfaces.Clock
	started bool
	paused  bool
	trigger bool

	// Перетаскивание корабля мышью
	grabbed   bool
	mouseLast mgl64.Vec2
}

// NewGame initializes a new game instance. The game stays idle until Start.
func NewGame(clock interfaces.Clock, rng interfaces.Random, tuning config.Tuning, media Media) *Game {
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Explosions:      system.NewExplosionSystem(clock, tuning),
		Collisions:      system.NewCollisionSystem(),
		Scores:          system.NewScoreSystem(),
		EventDispatcher: eventDispatcher,
		Tuning:          tuning,
		Media:           media,
		clock:           clock,
	}
	g.createPlayer()
	g.createInvaders(rng)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.GameStarted, listener)
	eventDispatcher.Subscribe(event.GamePaused, listener)
	eventDispatcher.Subscribe(event.GameResumed, listener)
	eventDispatcher.Subscribe(event.ExplosionSpawned, listener)

	eventDispatcher.Subscribe(event.InvaderHit, g.Scores)

	return g
}

func (g *Game) createPlayer() {
	g.Player = system.NewEmitter(system.NewProjectileSystem(g.clock), g.clock)
	g.Player.SetPosition(mgl64.Vec2{config.ScreenWidth / 2.0, config.ScreenHeight / 2.0})
	if img, ok := g.Media.Images[ImageShip]; ok {
		g.Player.SetImage(img)
	}
	if img, ok := g.Media.Images[ImageProjectile]; ok {
		g.Player.SetChildImage(img)
	}
	if g.Media.FireCue != nil {
		g.Player.SetFireCue(g.Media.FireCue)
	}
	// Курок отпущен: эмиттер не выпускает ничего, пока не зажат пробел.
	g.Player.SetRate(0)
}

func (g *Game) createInvaders(rng interfaces.Random) {
	g.Invaders = system.NewInvaderSystem(defs.InvaderLibrary, g.clock, rng, g.Tuning)
	for _, inv := range g.Invaders.Invaders() {
		if img, ok := g.Media.Images[inv.Def.ImageID]; ok {
			inv.Emitter.SetChildImage(img)
		}
		if g.Media.ImpactCue != nil {
			inv.Emitter.Sys.SetImpactCue(g.Media.ImpactCue)
		}
		g.Collisions.Register(inv.Def.Kind, inv.Def.Points, inv.Emitter)
	}
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameStarted:
		log.Printf("Game started with %d invader emitters", len(l.game.Invaders.Invaders()))
	case event.GamePaused:
		log.Printf("Game paused at score %d", l.game.Score())
	case event.GameResumed:
		log.Println("Game resumed")
	case event.ExplosionSpawned:
		if data, ok := e.Data.(event.ExplosionData); ok {
			log.Printf("Explosion +%d at (%.0f, %.0f), %d debris", data.Points, data.Position.X(), data.Position.Y(), data.Debris)
		}
	}
}

// Start запускает игрока и всех захватчиков. Повторный вызов ничего не делает.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	if !g.Player.Running() {
		g.Player.Start()
	}
	g.Invaders.StartAll()
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameStarted})
}

func (g *Game) Started() bool {
	return g.started
}

// SetTrigger обрабатывает пробел. Нажатие запускает игру и включает огонь,
// отпускание ставит темп 0: эмиттер продолжает двигать снаряды, но не выпускает новые.
func (g *Game) SetTrigger(held bool) {
	g.trigger = held
	if !held {
		g.Player.SetRate(0)
		g.Player.EnableFireCue(false)
		return
	}
	g.Start()
	g.Player.SetVelocity(mgl64.Vec2{0, config.FiringSpeed})
	g.Player.SetRate(config.FireRate)
	g.Player.SetLifespan(config.Life)
	g.Player.EnableFireCue(true)
}

// SetPaused останавливает симуляцию. Часы замораживает владелец часов.
func (g *Game) SetPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if paused {
		g.EventDispatcher.Dispatch(event.Event{Type: event.GamePaused})
	} else {
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameResumed})
	}
}

// SyncInput сверяет состояние с реально зажатыми кнопками после паузы:
// отпускание пробела во время паузы не должно оставить курок зажатым, захват мышью сбрасывается.
func (g *Game) SyncInput(triggerHeld bool) {
	if g.trigger && !triggerHeld {
		g.SetTrigger(false)
	}
	g.Release()
}

func (g *Game) TriggerHeld() bool {
	return g.trigger
}

func (g *Game) IsPaused() bool {
	return g.paused
}

// SetTuning применяет новые значения ползунков к захватчикам и взрывам.
func (g *Game) SetTuning(t config.Tuning) {
	g.Tuning = t
	g.Invaders.SetTuning(t)
	g.Explosions.Configure(t)
}

// Now — текущее время игровых часов, мс.
func (g *Game) Now() float64 {
	return g.clock.ElapsedMillis()
}

func (g *Game) Score() int {
	return g.Scores.Score()
}

// Update выполняет один кадр в фиксированном порядке: перенос через край, физика игрока,
// выстрелы игрока, прицеливание и выстрелы захватчиков, столкновения, взрывы.
func (g *Game) Update() {
	if g.paused {
		return
	}

	g.wrapPlayer()
	if g.started {
		g.Player.Integrate()
	}
	g.Player.Update()

	score := g.Score()
	for _, inv := range g.Invaders.Invaders() {
		g.Invaders.Aim(inv, score)
		inv.Emitter.Update()
	}

	g.applyCollisions(g.Collisions.Resolve(g.Player))

	if g.started {
		g.Explosions.Update()
	}
	g.Explosions.RemoveExpired()
}

func (g *Game) wrapPlayer() {
	p := g.Player.Position
	g.Player.SetPosition(mgl64.Vec2{
		utils.WrapCoord(p.X(), config.ScreenWidth),
		utils.WrapCoord(p.Y(), config.ScreenHeight),
	})
}

// applyCollisions создаёт по взрыву на каждое попадание и начисляет очки через события.
func (g *Game) applyCollisions(result system.CollisionResult) {
	for _, hit := range result.Hits {
		boom := g.Explosions.Spawn(hit.Position, hit.Points)
		g.EventDispatcher.Dispatch(event.Event{Type: event.InvaderHit, Data: event.InvaderHitData{
			Kind:     hit.Kind,
			Points:   hit.Points,
			Removed:  hit.Removed,
			Position: hit.Position,
		}})
		g.EventDispatcher.Dispatch(event.Event{Type: event.ExplosionSpawned, Data: event.ExplosionData{
			Position: hit.Position,
			Points:   hit.Points,
			Debris:   len(boom.Debris),
		}})
	}
}
