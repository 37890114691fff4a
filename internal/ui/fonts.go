// internal/ui/fonts.go
package ui

import (
	"fmt"

	"go-turret-defense/internal/config"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — набор начертаний интерфейса, все из одного встроенного TTF.
type Fonts struct {
	Score  font.Face
	Prompt font.Face
	Label  font.Face
	Panel  font.Face
}

func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var f Fonts
	for _, slot := range []struct {
		dst  *font.Face
		size float64
	}{
		{&f.Score, config.ScoreFontSize},
		{&f.Prompt, config.PromptFontSize},
		{&f.Label, config.LabelFontSize},
		{&f.Panel, config.PanelFontSize},
	} {
		if *slot.dst, err = face(slot.size); err != nil {
			return nil, fmt.Errorf("failed to create font face %v: %w", slot.size, err)
		}
	}
	return &f, nil
}
