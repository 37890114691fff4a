// internal/system/collision.go
package system

import (
	"go-turret-defense/internal/defs"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit — попадание одного снаряда игрока по снарядам одного типа захватчиков.
type Hit struct {
	Kind     defs.InvaderKind
	Points   int
	Removed  int
	Position mgl64.Vec2
}

// CollisionResult возвращается вызывающему и применяется им: система ничего не начисляет сама.
type CollisionResult struct {
	ScoreDelta int
	Hits       []Hit
}

type collisionTarget struct {
	kind    defs.InvaderKind
	points  int
	emitter *Emitter
}

// CollisionSystem проверяет снаряды стрелка против целей в порядке регистрации.
type CollisionSystem struct {
	targets []collisionTarget
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Register добавляет цель. Порядок регистрации — порядок проверки.
func (s *CollisionSystem) Register(kind defs.InvaderKind, points int, emitter *Emitter) {
	s.targets = append(s.targets, collisionTarget{kind: kind, points: points, emitter: emitter})
}

// Resolve удаляет снаряды целей рядом с каждым снарядом стрелка.
// Порог — сумма половин высот снарядов. На каждый тип целей, задетый выстрелом,
// приходится один Hit, сколько бы снарядов ни было сбито.
func (s *CollisionSystem) Resolve(shooter *Emitter) CollisionResult {
	var result CollisionResult
	for _, shot := range shooter.Sys.Projectiles {
		for _, t := range s.targets {
			dist := shooter.ChildHeight/2 + t.emitter.ChildHeight/2
			removed := t.emitter.Sys.RemoveNear(shot.Position, dist)
			if removed == 0 {
				continue
			}
			result.ScoreDelta += removed * t.points
			result.Hits = append(result.Hits, Hit{
				Kind:     t.kind,
				Points:   t.points,
				Removed:  removed,
				Position: shot.Position,
			})
		}
	}
	return result
}
