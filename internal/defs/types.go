// internal/defs/types.go
package defs

import (
	"encoding/json"
	"fmt"
)

// InvaderKind identifies an invader type. Kinds are small integers so they can key int maps.
type InvaderKind int

const (
	InvaderTop InvaderKind = iota
	InvaderLeft
	InvaderRight
	InvaderBottom
	InvaderSpecial
)

// Edge defines where an invader emitter launches from.
type Edge string

const (
	EdgeTop    Edge = "TOP"
	EdgeLeft   Edge = "LEFT"
	EdgeRight  Edge = "RIGHT"
	EdgeBottom Edge = "BOTTOM"
	EdgeCorner Edge = "CORNER"
)

func (e Edge) Valid() bool {
	switch e {
	case EdgeTop, EdgeLeft, EdgeRight, EdgeBottom, EdgeCorner:
		return true
	}
	return false
}

func (e *Edge) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	edge := Edge(s)
	if !edge.Valid() {
		return fmt.Errorf("unknown edge %q", s)
	}
	*e = edge
	return nil
}
