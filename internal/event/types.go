// internal/event/types.go
package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-turret-defense/internal/defs"
)

const (
	GameStarted      EventType = "GameStarted"      // Игра началась
	InvaderHit       EventType = "InvaderHit"       // Снаряды захватчика сбиты
	ExplosionSpawned EventType = "ExplosionSpawned" // Взрыв создан
	GamePaused       EventType = "GamePaused"
	GameResumed      EventType = "GameResumed"
)

// InvaderHitData is the payload of InvaderHit.
type InvaderHitData struct {
	Kind     defs.InvaderKind
	Points   int
	Removed  int
	Position mgl64.Vec2
}

// ExplosionData is the payload of ExplosionSpawned.
type ExplosionData struct {
	Position mgl64.Vec2
	Points   int
	Debris   int
}
