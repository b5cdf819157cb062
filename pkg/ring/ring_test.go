package ring

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapPercent(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{33.27, 33.3},
		{33.24, 33.2},
		{45, 45},
		{99.96, 100},
		{0.04, 0},
		{12.35, 12.4},
		{0.45, 0.5},
		{1.15, 1.2},
		{0.05, 0.1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, SnapPercent(tt.in), 1e-4, "snap(%v)", tt.in)
	}
}

func TestSnapPercentHalfValuesInLabel(t *testing.T) {
	assert.Equal(t, "0.5%", FormatLabel(SnapPercent(0.45)))
	assert.Equal(t, "1.2%", FormatLabel(SnapPercent(1.15)))
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, float32(0), ClampPercent(-12))
	assert.Equal(t, float32(100), ClampPercent(140))
	assert.Equal(t, float32(42.5), ClampPercent(42.5))
}

func TestSweepAngle(t *testing.T) {
	for p := float32(0); p <= 100; p += 2.5 {
		assert.InDelta(t, 3.6*p, SweepAngle(p), 1e-3)
	}
	assert.Equal(t, float32(360), SweepAngle(100))
	assert.Equal(t, float32(180), SweepAngle(50))
}

func TestTransitionDuration(t *testing.T) {
	assert.Equal(t, 1000*time.Millisecond, TransitionDuration(0, 50))
	assert.Equal(t, 100*time.Millisecond, TransitionDuration(40, 45))
	assert.Equal(t, 100*time.Millisecond, TransitionDuration(45, 40))
	assert.Equal(t, time.Duration(0), TransitionDuration(30, 30))
}

func TestArcBounds(t *testing.T) {
	// 200x200, радиус 100, линия 16 — отступ 8 со всех сторон
	assert.Equal(t, image.Rect(8, 8, 192, 192), ArcBounds(200, 200, 100, 16))
	// нечётная толщина: отступ округляется вниз
	assert.Equal(t, image.Rect(57, 7, 243, 193), ArcBounds(300, 200, 100, 15))
}

func TestCircleBoundsCenteredInOddView(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 200, 200), CircleBounds(201, 201, 100))
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "45.0%", FormatLabel(45))
	assert.Equal(t, "33.3%", FormatLabel(33.3))
	assert.Equal(t, "0.0%", FormatLabel(0))
	assert.Equal(t, "100.0%", FormatLabel(100))
}

func TestLabelOrigin(t *testing.T) {
	bounds := image.Rect(0, -12, 41, 0)
	assert.Equal(t, image.Pt(80, 106), LabelOrigin(200, 200, bounds))
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, 4.712389, Radians(StartAngle), 1e-5)
}
