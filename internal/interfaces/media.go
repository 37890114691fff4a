package interfaces

import "image"

// Cue is a fire-and-forget sound.
type Cue interface {
	Play()
}

// Visual is an opaque drawable handle. *ebiten.Image satisfies it.
type Visual interface {
	Bounds() image.Rectangle
}
