// internal/interfaces/game_context.go
package interfaces

// Clock is the shared time source of the simulation.
type Clock interface {
	// ElapsedMillis returns monotonic time since start in milliseconds.
	ElapsedMillis() float64
	// FrameRate returns the current measured frames per second.
	FrameRate() float64
}

// Random yields uniform values in [min, max).
type Random interface {
	Range(min, max float64) float64
}
