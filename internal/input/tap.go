// internal/input/tap.go
package input

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Debouncer отсекает тапы, пришедшие раньше interval после предыдущего.
type Debouncer struct {
	interval time.Duration
	last     time.Time
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Allow сообщает, можно ли принять тап в момент now
func (d *Debouncer) Allow(now time.Time) bool {
	if !d.last.IsZero() && now.Sub(d.last) < d.interval {
		return false
	}
	d.last = now
	return true
}

// TapDetector собирает тапы мышью и касаниями за кадр.
type TapDetector struct {
	debouncer *Debouncer
	touchIDs  []ebiten.TouchID
	taps      []image.Point
}

// NewTapDetector создаёт детектор с минимальным интервалом между тапами.
func NewTapDetector(debounce time.Duration) *TapDetector {
	return &TapDetector{debouncer: NewDebouncer(debounce)}
}

// Poll возвращает точки тапов, начавшихся в этом кадре. Срез действителен
// до следующего вызова.
func (t *TapDetector) Poll() []image.Point {
	t.taps = t.taps[:0]
	now := time.Now()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && t.debouncer.Allow(now) {
		x, y := ebiten.CursorPosition()
		t.taps = append(t.taps, image.Pt(x, y))
	}

	t.touchIDs = inpututil.AppendJustPressedTouchIDs(t.touchIDs[:0])
	for _, id := range t.touchIDs {
		if !t.debouncer.Allow(now) {
			break
		}
		x, y := ebiten.TouchPosition(id)
		t.taps = append(t.taps, image.Pt(x, y))
	}
	return t.taps
}
