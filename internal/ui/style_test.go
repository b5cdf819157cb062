package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-percent-view/internal/config"
	"go-percent-view/pkg/render"
	"go-percent-view/pkg/units"
)

func TestDefaultStyle(t *testing.T) {
	s := ResolveStyle(nil, units.DefaultDensity)

	assert.Equal(t, color.NRGBA{R: 0x8E, G: 0x29, B: 0xFA, A: 0xFF}, s.CircleColor)
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xEE, B: 0x00, A: 0xFF}, s.ArcColor)
	assert.Equal(t, s.ArcColor, s.TextColor)
	assert.Equal(t, 16, s.ArcWidth)
	assert.Equal(t, 16, s.TextSize)
	assert.Equal(t, 100, s.Radius)
}

func TestDefaultStyleScalesWithDensity(t *testing.T) {
	s := ResolveStyle(&config.Attributes{}, units.NewDensity(2, 1.5))

	assert.Equal(t, 32, s.ArcWidth)
	assert.Equal(t, 48, s.TextSize)
	assert.Equal(t, 200, s.Radius)
}

func TestResolveStyleOverrides(t *testing.T) {
	bg := render.Color(0xFF000000)
	arc := render.Color(0xFF00FF00)
	attrs := &config.Attributes{
		CircleBg:        &bg,
		ArcColor:        &arc,
		ArcWidth:        &units.Dimension{Value: 4, Unit: units.Dp},
		PercentTextSize: &units.Dimension{Value: 20, Unit: units.Sp},
		Radius:          &units.Dimension{Value: 60, Unit: units.Px},
	}

	s := ResolveStyle(attrs, units.NewDensity(2, 1))

	assert.Equal(t, color.NRGBA{A: 0xFF}, s.CircleColor)
	assert.Equal(t, color.NRGBA{G: 0xFF, A: 0xFF}, s.ArcColor)
	// цвет текста следует за arcColor
	assert.Equal(t, s.ArcColor, s.TextColor)
	assert.Equal(t, 8, s.ArcWidth)
	assert.Equal(t, 40, s.TextSize)
	assert.Equal(t, 60, s.Radius)
}

func TestTranslucentAttributeColorKeepsStraightAlpha(t *testing.T) {
	arc := render.Color(0x80FF0000)
	s := ResolveStyle(&config.Attributes{ArcColor: &arc}, units.DefaultDensity)
	_, arcPaint, label := s.Paints()

	assert.Equal(t, color.NRGBA{R: 0xFF, A: 0x80}, arcPaint.Color)
	assert.Equal(t, arcPaint.Color, label.Color)
	r, _, _, a := label.Color.RGBA()
	assert.LessOrEqual(t, r, a)
}

func TestPaints(t *testing.T) {
	s := ResolveStyle(nil, units.DefaultDensity)
	circle, arc, label := s.Paints()

	assert.Equal(t, render.Fill, circle.Style)
	assert.Equal(t, s.CircleColor, circle.Color)

	assert.Equal(t, render.Stroke, arc.Style)
	assert.Equal(t, render.CapRound, arc.Cap)
	assert.Equal(t, float32(16), arc.StrokeWidth)

	assert.Equal(t, render.Stroke, label.Style)
	assert.Equal(t, float32(16), label.TextSize)
	assert.Equal(t, s.TextColor, label.Color)
}
