package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// Slider ranges of the tuning values. Values outside them are rejected by Validate.
const (
	MinLifespan   = 0.0
	MaxLifespan   = 5.0
	MinShipThrust = 1000.0
	MaxShipThrust = 5000.0
	MinBoomPower  = 10.0
	MaxBoomPower  = 30.0
	MinBoomLife   = 1.0
	MaxBoomLife   = 4.0
	MinBoomDust   = 10
	MaxBoomDust   = 100
)

// Tuning holds the values that used to be exposed as on-screen sliders.
type Tuning struct {
	// Lifespans of invader projectiles in seconds, keyed by invader name.
	Lifespans  map[string]float64 `json:"lifespans"`
	ShipThrust float64            `json:"ship_thrust"`
	BoomPower  float64            `json:"boom_power"`
	BoomLife   float64            `json:"boom_life"` // seconds
	BoomDust   int                `json:"boom_dust"`
}

// DefaultLifespanSeconds is used for any invader without an explicit lifespan.
const DefaultLifespanSeconds = 4.0

func DefaultTuning() Tuning {
	return Tuning{
		Lifespans:  map[string]float64{},
		ShipThrust: 2000,
		BoomPower:  15,
		BoomLife:   1.5,
		BoomDust:   50,
	}
}

// LifespanFor returns the lifespan in seconds configured for the named invader.
func (t Tuning) LifespanFor(name string) float64 {
	if v, ok := t.Lifespans[name]; ok {
		return v
	}
	return DefaultLifespanSeconds
}

// Validate reports every value outside its slider range.
func (t Tuning) Validate() error {
	var errs []error

	names := make([]string, 0, len(t.Lifespans))
	for name := range t.Lifespans {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v := t.Lifespans[name]; v < MinLifespan || v > MaxLifespan {
			errs = append(errs, fmt.Errorf("lifespan %q = %v out of range [%v, %v]", name, v, MinLifespan, MaxLifespan))
		}
	}
	if t.ShipThrust < MinShipThrust || t.ShipThrust > MaxShipThrust {
		errs = append(errs, fmt.Errorf("ship_thrust = %v out of range [%v, %v]", t.ShipThrust, MinShipThrust, MaxShipThrust))
	}
	if t.BoomPower < MinBoomPower || t.BoomPower > MaxBoomPower {
		errs = append(errs, fmt.Errorf("boom_power = %v out of range [%v, %v]", t.BoomPower, MinBoomPower, MaxBoomPower))
	}
	if t.BoomLife < MinBoomLife || t.BoomLife > MaxBoomLife {
		errs = append(errs, fmt.Errorf("boom_life = %v out of range [%v, %v]", t.BoomLife, MinBoomLife, MaxBoomLife))
	}
	if t.BoomDust < MinBoomDust || t.BoomDust > MaxBoomDust {
		errs = append(errs, fmt.Errorf("boom_dust = %d out of range [%d, %d]", t.BoomDust, MinBoomDust, MaxBoomDust))
	}
	return errors.Join(errs...)
}

// LoadTuning reads a JSON tuning file on top of DefaultTuning and validates the result.
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()

	file, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := json.Unmarshal(file, &tuning); err != nil {
		return tuning, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if tuning.Lifespans == nil {
		tuning.Lifespans = map[string]float64{}
	}
	if err := tuning.Validate(); err != nil {
		return tuning, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return tuning, nil
}
