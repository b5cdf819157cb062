// pkg/ring/ring.go
package ring

import (
	"image"
	"math"
	"strconv"
	"time"
)

const (
	// StartAngle — дуга начинается сверху (градусы, по часовой стрелке от оси X)
	StartAngle = 270.0
	MinPercent = 0.0
	MaxPercent = 100.0

	// MillisPerPercent — длительность перехода на один процент
	MillisPerPercent = 20
)

// SnapPercent округляет значение до одного знака после запятой (половина вверх).
// Умножение выполняется во float32: 0.45 -> 4.5 -> 0.5.
func SnapPercent(v float32) float32 {
	scaled := float32(v * 10)
	return float32(math.Floor(float64(scaled)+0.5)) / 10
}

// ClampPercent ограничивает процент диапазоном [0, 100].
func ClampPercent(v float32) float32 {
	if v < MinPercent {
		return MinPercent
	}
	if v > MaxPercent {
		return MaxPercent
	}
	return v
}

// SweepAngle — угол дуги в градусах для процента p
func SweepAngle(p float32) float32 {
	return 360 * p / 100
}

// Radians переводит градусы в радианы
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// TransitionDuration — 20мс на каждый процент разницы.
func TransitionDuration(from, to float32) time.Duration {
	delta := math.Abs(float64(from - to))
	return time.Duration(int64(delta*MillisPerPercent)) * time.Millisecond
}

// Center — центр области w×h в целых пикселях
func Center(w, h int) image.Point {
	return image.Pt(w/2, h/2)
}

// CircleBounds — описанный вокруг круга прямоугольник.
func CircleBounds(w, h, radius int) image.Rectangle {
	c := Center(w, h)
	return image.Rect(c.X-radius, c.Y-radius, c.X+radius, c.Y+radius)
}

// ArcBounds — прямоугольник дуги: границы круга, сжатые на половину толщины
// линии, чтобы обводка целиком лежала внутри круга.
func ArcBounds(w, h, radius, arcWidth int) image.Rectangle {
	return CircleBounds(w, h, radius).Inset(arcWidth / 2)
}

// FormatLabel форматирует процент с одним знаком: 45 -> "45.0%".
func FormatLabel(p float32) string {
	return strconv.FormatFloat(float64(p), 'f', 1, 32) + "%"
}

// LabelOrigin — базовая точка текста, при которой его границы центрированы в w×h.
func LabelOrigin(w, h int, bounds image.Rectangle) image.Point {
	c := Center(w, h)
	return image.Pt(c.X-bounds.Dx()/2, c.Y+bounds.Dy()/2)
}
