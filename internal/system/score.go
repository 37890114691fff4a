// internal/system/score.go
package system

import (
	"go-turret-defense/internal/defs"
	"go-turret-defense/internal/event"

	"github.com/kamstrup/intmap"
)

// ScoreSystem ведёт счёт и число сбитых снарядов по типам захватчиков.
// Начисление идёт только через событие InvaderHit.
type ScoreSystem struct {
	score int
	kills *intmap.Map[defs.InvaderKind, int]
}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{kills: intmap.New[defs.InvaderKind, int](8)}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ScoreSystem) OnEvent(e event.Event) {
	if e.Type != event.InvaderHit {
		return
	}
	hit, ok := e.Data.(event.InvaderHitData)
	if !ok {
		return
	}
	s.score += hit.Removed * hit.Points
	n, _ := s.kills.Get(hit.Kind)
	s.kills.Put(hit.Kind, n+hit.Removed)
}

func (s *ScoreSystem) Score() int {
	return s.score
}

// Kills возвращает число сбитых снарядов данного типа.
func (s *ScoreSystem) Kills(kind defs.InvaderKind) int {
	n, _ := s.kills.Get(kind)
	return n
}

func (s *ScoreSystem) Reset() {
	s.score = 0
	s.kills.Clear()
}
