// internal/anim/animator.go
package anim

import (
	"time"

	"github.com/sirupsen/logrus"

	"go-percent-view/internal/utils"
)

// Transition — линейный переход значения From -> To за Duration.
type Transition struct {
	From, To   float32
	Duration   time.Duration
	Elapsed    time.Duration
	Generation uint64
}

// Value возвращает текущее значение перехода
func (t *Transition) Value() float32 {
	if t.Duration <= 0 || t.Elapsed >= t.Duration {
		return t.To
	}
	return utils.Lerp(t.From, t.To, float32(t.Elapsed)/float32(t.Duration))
}

// Done — переход дошёл до конца
func (t *Transition) Done() bool {
	return t.Elapsed >= t.Duration
}

// DurationFunc вычисляет длительность перехода между двумя значениями.
type DurationFunc func(from, to float32) time.Duration

// Animator владеет не более чем одним активным переходом. Новый Start
// отменяет предыдущий, поэтому значение меняет только последнее поколение.
type Animator struct {
	duration   DurationFunc
	current    *Transition
	generation uint64
	logger     logrus.FieldLogger
}

// NewAnimator создаёт аниматор с заданной функцией длительности.
func NewAnimator(duration DurationFunc, logger logrus.FieldLogger) *Animator {
	return &Animator{
		duration: duration,
		logger:   logger,
	}
}

// Start начинает переход и возвращает его поколение. Отменённый переход
// (если был) возвращается вторым значением.
func (a *Animator) Start(from, to float32) (uint64, *Transition) {
	cancelled := a.Cancel()

	a.generation++
	a.current = &Transition{
		From:       from,
		To:         to,
		Duration:   a.duration(from, to),
		Generation: a.generation,
	}
	a.logger.WithFields(logrus.Fields{
		"from":       from,
		"to":         to,
		"duration":   a.current.Duration,
		"generation": a.generation,
	}).Debug("Transition started")
	return a.generation, cancelled
}

// Cancel останавливает активный переход и возвращает его (или nil).
func (a *Animator) Cancel() *Transition {
	prev := a.current
	if prev == nil {
		return nil
	}
	a.current = nil
	a.logger.WithFields(logrus.Fields{
		"generation": prev.Generation,
		"value":      prev.Value(),
	}).Debug("Transition cancelled")
	return prev
}

// Step продвигает активный переход на dt. ok=false, если перехода нет.
// Переход нулевой длительности выдаёт целевое значение один раз.
func (a *Animator) Step(dt time.Duration) (value float32, finished bool, ok bool) {
	t := a.current
	if t == nil {
		return 0, false, false
	}
	if dt > 0 {
		t.Elapsed += dt
	}
	value = t.Value()
	if t.Done() {
		a.current = nil
		a.logger.WithFields(logrus.Fields{
			"generation": t.Generation,
			"value":      value,
		}).Debug("Transition finished")
		return value, true, true
	}
	return value, false, true
}

// Running — есть ли активный переход
func (a *Animator) Running() bool {
	return a.current != nil
}

// Current возвращает активный переход или nil
func (a *Animator) Current() *Transition {
	return a.current
}

// Generation — номер последнего запущенного перехода
func (a *Animator) Generation() uint64 {
	return a.generation
}
