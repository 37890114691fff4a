// internal/defs/invaders.go
package defs

// InvaderDefinition holds the static data for one invader emitter.
type InvaderDefinition struct {
	Kind   InvaderKind `json:"kind"`
	Name   string      `json:"name"`
	Edge   Edge        `json:"edge"`
	Points int         `json:"points"`
	// Speed is drawn from [SpeedMin, SpeedMax) and truncated; the sign comes from the edge.
	SpeedMin      float64 `json:"speed_min"`
	SpeedMax      float64 `json:"speed_max"`
	SpeedPerScore float64 `json:"speed_per_score"`
	// Rate in spawns/sec is drawn from [RateMin, RateMax), plus score*RatePerScore.
	RateMin      float64 `json:"rate_min"`
	RateMax      float64 `json:"rate_max"`
	RatePerScore float64 `json:"rate_per_score"`
	ImageID      string  `json:"image_id"`
}

// InvaderLibrary lists invader definitions in collision priority order.
// The order is significant: collisions are resolved against invaders in this order.
var InvaderLibrary = []InvaderDefinition{
	{Kind: InvaderTop, Name: "top", Edge: EdgeTop, Points: 1, SpeedMin: 400, SpeedMax: 601, SpeedPerScore: 0.75, RateMin: 0.25, RateMax: 0.51, RatePerScore: 1.0 / 500, ImageID: "invader"},
	{Kind: InvaderLeft, Name: "left", Edge: EdgeLeft, Points: 1, SpeedMin: 400, SpeedMax: 601, SpeedPerScore: 0.75, RateMin: 0.25, RateMax: 0.51, RatePerScore: 1.0 / 500, ImageID: "invader"},
	{Kind: InvaderRight, Name: "right", Edge: EdgeRight, Points: 1, SpeedMin: 400, SpeedMax: 601, SpeedPerScore: 0.75, RateMin: 0.25, RateMax: 0.51, RatePerScore: 1.0 / 500, ImageID: "invader"},
	{Kind: InvaderBottom, Name: "bottom", Edge: EdgeBottom, Points: 1, SpeedMin: 400, SpeedMax: 601, SpeedPerScore: 0.75, RateMin: 0.25, RateMax: 0.51, RatePerScore: 1.0 / 500, ImageID: "invader"},
	{Kind: InvaderSpecial, Name: "special", Edge: EdgeCorner, Points: 4, SpeedMin: 1500, SpeedMax: 1500, SpeedPerScore: 0.75, RateMin: 0.14, RateMax: 0.21, RatePerScore: 0, ImageID: "special_invader"},
}

// InitialRate is the rate an invader emitter is created with, before its first re-aim.
func (d InvaderDefinition) InitialRate() float64 {
	return d.RateMin
}
