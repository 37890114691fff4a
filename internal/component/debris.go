package component

import "github.com/go-gl/mathgl/mgl64"

// Debris is one physics point of an explosion. It has no lifespan of its own.
type Debris struct {
	Transform
	Body
}

func NewDebris(at mgl64.Vec2) Debris {
	d := Debris{Transform: NewTransform(), Body: NewBody()}
	d.SetPosition(at)
	return d
}
