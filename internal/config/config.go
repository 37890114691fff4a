// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	WindowTitle  = "Turret Defense"
	TargetTPS    = 60 // номинальная частота, если измеренная ещё неизвестна

	// Depth — постоянная координата z для всех сущностей
	Depth = 1.0

	FiringSpeed = -1000.0 // пикселей в секунду, вдоль -Y
	Life        = 4000.0  // время жизни снаряда игрока, мс
	FireRate    = 20.0    // выстрелов в секунду при зажатом триггере

	DefaultRate    = 1.0 // spawns/sec for a freshly built emitter
	DefaultDamping = 0.99

	EmitterWidth     = 50.0
	EmitterHeight    = 50.0
	ProjectileWidth  = 60.0
	ProjectileHeight = 80.0
	DebrisSize       = 5.0

	// Разброс позиции захватчика вдоль края экрана
	EdgeMarginMin = 0.05
	EdgeMarginMax = 0.95

	FiringDirMin = -45.0
	FiringDirMax = 46.0

	ScoreBoardOffsetX = 80
	ScoreBoardY       = 40
	ScoreFontSize     = 24
	PromptFontSize    = 18
	PromptOffsetX     = 200
	PromptOffsetY     = 100
	LabelFontSize     = 12
	PanelFontSize     = 14
)

var (
	BackgroundColor   = color.RGBA{10, 10, 25, 255}
	EmitterColor      = color.RGBA{0, 0, 200, 255}
	ProjectileColor   = color.RGBA{255, 0, 0, 255}
	DebrisColor       = color.RGBA{255, 0, 0, 255}
	TextColor         = color.RGBA{255, 255, 255, 255}
	PanelColor        = color.RGBA{20, 20, 30, 200}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
)
