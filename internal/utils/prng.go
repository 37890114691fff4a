// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел Go,
// позволяющая использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Range возвращает случайное число в диапазоне [min, max).
// Если границы перепутаны, они меняются местами.
func (s *PRNGService) Range(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + s.rng.Float64()*(max-min)
}
