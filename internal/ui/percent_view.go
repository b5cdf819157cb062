// internal/ui/percent_view.go
package ui

import (
	"image"
	"io"

	"github.com/sirupsen/logrus"

	"go-percent-view/internal/anim"
	"go-percent-view/internal/config"
	"go-percent-view/internal/event"
	"go-percent-view/internal/utils"
	"go-percent-view/pkg/measure"
	"go-percent-view/pkg/render"
	"go-percent-view/pkg/ring"
	"go-percent-view/pkg/units"
)

// TapListener получает уведомление о тапе по виджету.
type TapListener interface {
	OnTap(v *PercentView)
}

// TapListenerFunc — функция как TapListener
type TapListenerFunc func(v *PercentView)

func (f TapListenerFunc) OnTap(v *PercentView) { f(v) }

// PercentView — круглый индикатор процента: круг, дуга прогресса поверх
// него и подпись по центру.
type PercentView struct {
	style       Style
	circlePaint render.Paint
	arcPaint    render.Paint
	labelPaint  render.Paint

	percent  float32
	animator *anim.Animator

	tapListener TapListener
	dispatcher  *event.Dispatcher
	logger      logrus.FieldLogger

	bounds         image.Rectangle
	measuredWidth  int
	measuredHeight int
	invalidated    bool

	arcRect   image.Rectangle // прямоугольник дуги
	textBound image.Rectangle // границы текста
}

type options struct {
	attrs      *config.Attributes
	density    units.Density
	dispatcher *event.Dispatcher
	logger     logrus.FieldLogger
}

// Option настраивает PercentView при создании.
type Option func(*options)

// WithAttributes задаёт атрибуты стиля.
func WithAttributes(attrs *config.Attributes) Option {
	return func(o *options) { o.attrs = attrs }
}

// WithDensity задаёт плотность экрана для перевода dp/sp в пиксели.
func WithDensity(d units.Density) Option {
	return func(o *options) { o.density = d }
}

// WithDispatcher подключает диспетчер событий виджета.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(o *options) { o.dispatcher = d }
}

// WithLogger задаёт логгер виджета; по умолчанию вывод отбрасывается.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) { o.logger = logger }
}

// NewPercentView создаёт виджет. Без атрибутов используются значения по умолчанию.
func NewPercentView(opts ...Option) *PercentView {
	o := options{density: units.DefaultDensity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.logger = discard
	}

	style := ResolveStyle(o.attrs, o.density)
	circle, arc, label := style.Paints()

	logger := o.logger.WithField("component", "percent_view")
	v := &PercentView{
		style:       style,
		circlePaint: circle,
		arcPaint:    arc,
		labelPaint:  label,
		animator:    anim.NewAnimator(ring.TransitionDuration, logger),
		dispatcher:  o.dispatcher,
		logger:      logger,
		invalidated: true,
	}
	logger.WithFields(logrus.Fields{
		"radius":    style.Radius,
		"arc_width": style.ArcWidth,
		"text_size": style.TextSize,
	}).Debug("Percent view created")
	return v
}

// Style возвращает разрешённый стиль
func (v *PercentView) Style() Style {
	return v.style
}

// Percent — текущий отображаемый процент
func (v *PercentView) Percent() float32 {
	return v.percent
}

// Animating — идёт ли переход
func (v *PercentView) Animating() bool {
	return v.animator.Running()
}

// SetPercent запускает линейный переход от текущего процента к target
// (20мс на процент). Активный переход при этом отменяется.
func (v *PercentView) SetPercent(target float32) {
	clamped := ring.ClampPercent(target)
	if clamped != target {
		v.logger.WithFields(logrus.Fields{"target": target, "clamped": clamped}).Warn("Percent out of range, clamped")
	}

	from := v.percent
	gen, cancelled := v.animator.Start(from, clamped)
	if cancelled != nil {
		v.dispatcher.Dispatch(event.Event{Type: event.TransitionCancelled, Data: event.TransitionData{
			From: cancelled.From, To: cancelled.To, Generation: cancelled.Generation,
		}})
	}
	v.dispatcher.Dispatch(event.Event{Type: event.TransitionStarted, Data: event.TransitionData{
		From: from, To: clamped, Generation: gen,
	}})
}

// SetTapListener заменяет слушателя тапов. nil — тапы поглощаются молча.
func (v *PercentView) SetTapListener(l TapListener) {
	v.tapListener = l
}

// Update продвигает переход на deltaTime секунд. На каждом шаге процент
// округляется до одного знака и виджет помечается на перерисовку.
func (v *PercentView) Update(deltaTime float64) {
	if !v.animator.Running() {
		return
	}
	value, finished, ok := v.animator.Step(utils.SecondsToDuration(deltaTime))
	if !ok {
		return
	}

	snapped := ring.SnapPercent(value)
	if snapped != v.percent {
		v.percent = snapped
		v.dispatcher.Dispatch(event.Event{Type: event.PercentChanged, Data: snapped})
	}
	v.Invalidate()

	if finished {
		v.dispatcher.Dispatch(event.Event{Type: event.TransitionFinished, Data: event.TransitionData{
			To: value, Generation: v.animator.Generation(),
		}})
	}
}

// Measure вычисляет размер виджета по ограничениям хоста. Естественный
// размер — диаметр круга.
func (v *PercentView) Measure(width, height measure.Spec) (int, int) {
	natural := 2 * v.style.Radius
	v.measuredWidth = measure.Dimension(width, natural)
	v.measuredHeight = measure.Dimension(height, natural)
	return v.measuredWidth, v.measuredHeight
}

// MeasuredSize — результат последнего Measure
func (v *PercentView) MeasuredSize() (int, int) {
	return v.measuredWidth, v.measuredHeight
}

// Layout размещает виджет в указанном прямоугольнике экрана.
func (v *PercentView) Layout(bounds image.Rectangle) {
	if bounds != v.bounds {
		v.bounds = bounds
		v.Invalidate()
	}
}

// Bounds — прямоугольник виджета на экране
func (v *PercentView) Bounds() image.Rectangle {
	return v.bounds
}

func (v *PercentView) Invalidate() {
	v.invalidated = true
}

// Invalidated — нужна ли перерисовка
func (v *PercentView) Invalidated() bool {
	return v.invalidated
}

// Draw рисует круг, дугу и подпись в координатах виджета.
func (v *PercentView) Draw(c render.Canvas) {
	w, h := v.bounds.Dx(), v.bounds.Dy()
	center := ring.Center(w, h)

	// 1. Круг
	c.DrawCircle(float32(center.X), float32(center.Y), float32(v.style.Radius), &v.circlePaint)

	// 2. Дуга
	v.arcRect = ring.ArcBounds(w, h, v.style.Radius, v.style.ArcWidth)
	c.DrawArc(v.arcRect, ring.StartAngle, ring.SweepAngle(v.percent), false, &v.arcPaint)

	// 3. Подпись по центру
	label := ring.FormatLabel(v.percent)
	v.textBound = c.TextBounds(label, &v.labelPaint)
	origin := ring.LabelOrigin(w, h, v.textBound)
	c.DrawText(label, origin.X, origin.Y, &v.labelPaint)

	v.invalidated = false
}

// HandleTap обрабатывает тап в экранных координатах. Возвращает true,
// если тап попал в виджет.
func (v *PercentView) HandleTap(pt image.Point) bool {
	if !pt.In(v.bounds) {
		return false
	}
	v.dispatcher.Dispatch(event.Event{Type: event.ViewTapped, Data: pt})
	if v.tapListener != nil {
		v.tapListener.OnTap(v)
	}
	return true
}
