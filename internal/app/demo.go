// internal/app/demo.go
package app

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"go-percent-view/internal/config"
	"go-percent-view/internal/event"
	"go-percent-view/internal/input"
	"go-percent-view/internal/ui"
	"go-percent-view/internal/utils"
	"go-percent-view/pkg/measure"
	"go-percent-view/pkg/render"
)

// Клавиши 0–9 задают 0–90%, Enter — 100%.
var percentKeys = map[ebiten.Key]float32{
	ebiten.KeyDigit0: 0, ebiten.KeyDigit1: 10, ebiten.KeyDigit2: 20, ebiten.KeyDigit3: 30, ebiten.KeyDigit4: 40,
	ebiten.KeyDigit5: 50, ebiten.KeyDigit6: 60, ebiten.KeyDigit7: 70, ebiten.KeyDigit8: 80, ebiten.KeyDigit9: 90,
	ebiten.KeyEnter: 100,
}

// Demo — хост для PercentView: реализует ebiten.Game, передаёт виджету
// размеры окна, кадры и тапы.
type Demo struct {
	View       *ui.PercentView
	Dispatcher *event.Dispatcher

	canvas         *render.EbitenCanvas
	taps           *input.TapDetector
	rng            *utils.PRNGService
	logger         logrus.FieldLogger
	lastUpdateTime time.Time
	outside        image.Point
	keys           []ebiten.Key
}

// NewDemo связывает виджет с холстом и вводом. Тап по виджету запускает
// переход к случайному проценту.
func NewDemo(view *ui.PercentView, dispatcher *event.Dispatcher, canvas *render.EbitenCanvas, rng *utils.PRNGService, logger logrus.FieldLogger) *Demo {
	d := &Demo{
		View:           view,
		Dispatcher:     dispatcher,
		canvas:         canvas,
		taps:           input.NewTapDetector(config.ClickDebounceTime * time.Millisecond),
		rng:            rng,
		logger:         logger,
		lastUpdateTime: time.Now(),
	}

	view.SetTapListener(ui.TapListenerFunc(func(v *ui.PercentView) {
		target := d.rng.Percent()
		d.logger.WithFields(logrus.Fields{"from": v.Percent(), "to": target}).Info("Tap, animating to random percent")
		v.SetPercent(target)
	}))

	listener := &DemoEventListener{logger: logger}
	for _, t := range []event.EventType{event.TransitionStarted, event.TransitionCancelled, event.TransitionFinished} {
		dispatcher.Subscribe(t, listener)
	}
	return d
}

func (d *Demo) Update() error {
	now := time.Now()
	deltaTime := now.Sub(d.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	d.lastUpdateTime = now

	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	for _, k := range d.keys {
		if p, ok := percentKeys[k]; ok {
			d.View.SetPercent(p)
		}
	}
	for _, pt := range d.taps.Poll() {
		d.View.HandleTap(pt)
	}

	d.View.Update(deltaTime)
	return nil
}

func (d *Demo) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	d.canvas.Begin(screen, d.View.Bounds().Min)
	d.View.Draw(d.canvas)
}

// Layout измеряет виджет по размеру окна и ставит его по центру.
func (d *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	outside := image.Pt(outsideWidth, outsideHeight)
	if outside != d.outside {
		d.outside = outside
		w, h := d.View.Measure(measure.AtMostOf(outsideWidth), measure.AtMostOf(outsideHeight))
		d.View.Layout(CenteredBounds(outsideWidth, outsideHeight, w, h))
		d.logger.WithFields(logrus.Fields{
			"window": outside,
			"bounds": d.View.Bounds(),
		}).Debug("Layout changed")
	}
	return outsideWidth, outsideHeight
}

// CenteredBounds — прямоугольник w×h по центру области outsideW×outsideH.
func CenteredBounds(outsideW, outsideH, w, h int) image.Rectangle {
	x := (outsideW - w) / 2
	y := (outsideH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// DemoEventListener пишет события переходов в лог.
type DemoEventListener struct {
	logger logrus.FieldLogger
}

// OnEvent реализует интерфейс event.Listener.
func (l *DemoEventListener) OnEvent(e event.Event) {
	data, ok := e.Data.(event.TransitionData)
	if !ok {
		return
	}
	fields := logrus.Fields{"generation": data.Generation, "to": data.To}
	switch e.Type {
	case event.TransitionStarted:
		fields["from"] = data.From
		l.logger.WithFields(fields).Debug("Transition started")
	case event.TransitionCancelled:
		l.logger.WithFields(fields).Debug("Transition replaced")
	case event.TransitionFinished:
		l.logger.WithFields(fields).Info("Transition finished")
	}
}
