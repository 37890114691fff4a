// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadInvaderDefinitions reads the invader configuration file and replaces InvaderLibrary.
// The file order becomes the collision priority order.
func LoadInvaderDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read invader definitions file: %w", err)
	}

	var invaderDefs []InvaderDefinition
	if err := json.Unmarshal(file, &invaderDefs); err != nil {
		return fmt.Errorf("failed to unmarshal invader definitions: %w", err)
	}
	if len(invaderDefs) == 0 {
		return fmt.Errorf("no invader definitions in %s", path)
	}

	seen := make(map[InvaderKind]string, len(invaderDefs))
	for _, def := range invaderDefs {
		if other, dup := seen[def.Kind]; dup {
			return fmt.Errorf("invader %q reuses kind %d of %q", def.Name, def.Kind, other)
		}
		seen[def.Kind] = def.Name
		if def.SpeedMax < def.SpeedMin {
			return fmt.Errorf("invader %q: speed_max %v < speed_min %v", def.Name, def.SpeedMax, def.SpeedMin)
		}
	}

	InvaderLibrary = invaderDefs
	log.Printf("Loaded %d invader definitions", len(InvaderLibrary))
	return nil
}
