// internal/ui/style.go
package ui

import (
	"image/color"

	"go-percent-view/internal/config"
	"go-percent-view/pkg/render"
	"go-percent-view/pkg/units"
)

// Style — разрешённые атрибуты виджета в пикселях устройства.
type Style struct {
	CircleColor color.NRGBA
	ArcColor    color.NRGBA
	ArcWidth    int
	TextColor   color.NRGBA
	TextSize    int
	Radius      int
}

// DefaultStyle — стиль без атрибутов
func DefaultStyle(d units.Density) Style {
	return Style{
		CircleColor: config.DefaultCircleColor.ToNRGBA(),
		ArcColor:    config.DefaultArcColor.ToNRGBA(),
		ArcWidth:    d.Dp(config.DefaultArcWidthDp),
		TextColor:   config.DefaultArcColor.ToNRGBA(),
		TextSize:    d.Sp(config.DefaultTextSizeSp),
		Radius:      d.Dp(config.DefaultRadiusDp),
	}
}

// ResolveStyle накладывает заданные атрибуты на значения по умолчанию.
// Цвет текста берётся из атрибута arcColor: отдельного атрибута у него нет.
func ResolveStyle(attrs *config.Attributes, d units.Density) Style {
	s := DefaultStyle(d)
	if attrs == nil {
		return s
	}
	if attrs.CircleBg != nil {
		s.CircleColor = attrs.CircleBg.ToNRGBA()
	}
	if attrs.ArcColor != nil {
		s.ArcColor = attrs.ArcColor.ToNRGBA()
		s.TextColor = attrs.ArcColor.ToNRGBA()
	}
	if attrs.ArcWidth != nil {
		s.ArcWidth = d.PixelSize(*attrs.ArcWidth)
	}
	if attrs.PercentTextSize != nil {
		s.TextSize = d.PixelSize(*attrs.PercentTextSize)
	}
	if attrs.Radius != nil {
		s.Radius = d.PixelSize(*attrs.Radius)
	}
	return s
}

// Paints строит кисти круга, дуги и текста.
// Текст рисуется обводкой (Stroke), а не заливкой: контурные глифы.
func (s Style) Paints() (circle, arc, label render.Paint) {
	circle = render.Paint{
		Style:     render.Fill,
		Color:     s.CircleColor,
		AntiAlias: true,
	}
	arc = render.Paint{
		Style:       render.Stroke,
		Color:       s.ArcColor,
		StrokeWidth: float32(s.ArcWidth),
		Cap:         render.CapRound, // скруглённые концы дуги
		AntiAlias:   true,
	}
	label = render.Paint{
		Style:     render.Stroke,
		Color:     s.TextColor,
		TextSize:  float32(s.TextSize),
		AntiAlias: true,
	}
	return circle, arc, label
}
