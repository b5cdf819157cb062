// pkg/render/paint.go
package render

import (
	"image"
	"image/color"
)

// PaintStyle — заливка, обводка или и то и другое
type PaintStyle int

const (
	Fill PaintStyle = iota
	Stroke
	FillAndStroke
)

func (s PaintStyle) String() string {
	switch s {
	case Stroke:
		return "stroke"
	case FillAndStroke:
		return "fill_and_stroke"
	default:
		return "fill"
	}
}

// Cap — форма концов линии
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Paint описывает, как рисовать фигуру или текст.
type Paint struct {
	Style       PaintStyle
	Color       color.NRGBA
	StrokeWidth float32
	Cap         Cap
	TextSize    float32
	AntiAlias   bool
}

// Canvas — поверхность, на которой рисует виджет. Координаты в пикселях
// относительно левого верхнего угла виджета, углы в градусах по часовой стрелке.
type Canvas interface {
	DrawCircle(cx, cy, radius float32, p *Paint)
	// DrawArc рисует дугу эллипса, вписанного в oval. При useCenter дуга
	// замыкается через центр (сектор).
	DrawArc(oval image.Rectangle, startAngle, sweepAngle float32, useCenter bool, p *Paint)
	// TextBounds — границы текста относительно базовой точки (0, 0).
	TextBounds(s string, p *Paint) image.Rectangle
	// DrawText рисует текст с базовой точкой (x, y).
	DrawText(s string, x, y int, p *Paint)
}
