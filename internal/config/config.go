// internal/config/config.go
package config

import (
	"image/color"

	"go-percent-view/pkg/render"
)

const (
	ScreenWidth  = 480
	ScreenHeight = 720
	MaxDeltaTime = 0.06
	// ClickDebounceTime — минимальный интервал между тапами, мс
	ClickDebounceTime = 100

	// Значения по умолчанию в независимых от плотности единицах
	DefaultArcWidthDp  = 16.0
	DefaultTextSizeSp  = 16.0
	DefaultRadiusDp    = 100.0
	DefaultCircleColor = render.Color(0xFF8E29FA)
	DefaultArcColor    = render.Color(0xFFFFEE00)
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
)
