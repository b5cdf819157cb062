// pkg/render/ebiten_canvas.go
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"

	"go-percent-view/pkg/ring"
)

// EbitenCanvas рисует на ebiten.Image со смещением origin (левый верхний угол виджета).
type EbitenCanvas struct {
	target    *ebiten.Image
	origin    image.Point
	faces     *FaceCache
	logger    logrus.FieldLogger
	whiteImg  *ebiten.Image
	scratch   *ebiten.Image
	vs        []ebiten.Vertex
	is        []uint16
	faceError bool
}

// NewEbitenCanvas создаёт холст. Цель задаётся через Begin перед каждым кадром.
func NewEbitenCanvas(faces *FaceCache, logger logrus.FieldLogger) *EbitenCanvas {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	return &EbitenCanvas{
		faces:    faces,
		logger:   logger,
		whiteImg: whiteImg,
		vs:       make([]ebiten.Vertex, 0, 256),
		is:       make([]uint16, 0, 512),
	}
}

// Begin задаёт изображение и позицию виджета на нём.
func (c *EbitenCanvas) Begin(target *ebiten.Image, origin image.Point) {
	c.target = target
	c.origin = origin
}

func (c *EbitenCanvas) DrawCircle(cx, cy, radius float32, p *Paint) {
	x := cx + float32(c.origin.X)
	y := cy + float32(c.origin.Y)
	if p.Style == Fill || p.Style == FillAndStroke {
		vector.DrawFilledCircle(c.target, x, y, radius, p.Color, p.AntiAlias)
	}
	if p.Style == Stroke || p.Style == FillAndStroke {
		vector.StrokeCircle(c.target, x, y, radius, strokeWidth(p), p.Color, p.AntiAlias)
	}
}

func (c *EbitenCanvas) DrawArc(oval image.Rectangle, startAngle, sweepAngle float32, useCenter bool, p *Paint) {
	if sweepAngle == 0 || oval.Empty() {
		return
	}

	oval = oval.Add(c.origin)
	cx := float32(oval.Min.X+oval.Max.X) / 2
	cy := float32(oval.Min.Y+oval.Max.Y) / 2
	radius := float32(min(oval.Dx(), oval.Dy())) / 2
	from, to, dir := arcAngles(startAngle, sweepAngle)

	path := vector.Path{}
	sin, cos := math.Sincos(float64(from))
	path.MoveTo(cx+radius*float32(cos), cy+radius*float32(sin))
	path.Arc(cx, cy, radius, from, to, dir)
	if useCenter {
		path.LineTo(cx, cy)
		path.Close()
	}

	if p.Style == Fill || p.Style == FillAndStroke {
		c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
		c.drawTriangles(p)
	}
	if p.Style == Stroke || p.Style == FillAndStroke {
		c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
			Width:    strokeWidth(p),
			LineCap:  lineCap(p.Cap),
			LineJoin: vector.LineJoinRound,
		})
		c.drawTriangles(p)
	}
}

// arcAngles переводит начало и размах дуги (градусы) в углы vector.Path.Arc (радианы).
// Размах ограничен полным кругом; отрицательный размах рисуется против часовой стрелки.
// Конец не приводится по модулю 2π: при 360° начало и конец совпали бы и дуга выродилась.
func arcAngles(startAngle, sweepAngle float32) (from, to float32, dir vector.Direction) {
	dir = vector.Clockwise
	if sweepAngle < 0 {
		dir = vector.CounterClockwise
	}
	sweepAngle = max(-360, min(360, sweepAngle))
	return ring.Radians(startAngle), ring.Radians(startAngle + sweepAngle), dir
}

func (c *EbitenCanvas) drawTriangles(p *Paint) {
	for i := range c.vs {
		c.vs[i].SrcX = 0
		c.vs[i].SrcY = 0
		c.vs[i].ColorR = float32(p.Color.R) / 255
		c.vs[i].ColorG = float32(p.Color.G) / 255
		c.vs[i].ColorB = float32(p.Color.B) / 255
		c.vs[i].ColorA = float32(p.Color.A) / 255
	}
	c.target.DrawTriangles(c.vs, c.is, c.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: p.AntiAlias,
	})
}

func (c *EbitenCanvas) TextBounds(s string, p *Paint) image.Rectangle {
	face := c.face(p)
	if face == nil {
		return image.Rectangle{}
	}
	return text.BoundString(face, s)
}

func (c *EbitenCanvas) DrawText(s string, x, y int, p *Paint) {
	face := c.face(p)
	if face == nil {
		return
	}
	x += c.origin.X
	y += c.origin.Y
	if p.Style == Fill || p.Style == FillAndStroke {
		text.Draw(c.target, s, face, x, y, p.Color)
	}
	if p.Style == Stroke || p.Style == FillAndStroke {
		c.strokeText(s, x, y, face, p)
	}
}

// strokeText рисует контур глифов: копии текста со смещениями в пределах
// половины толщины линии, затем внутренняя часть глифа вырезается.
func (c *EbitenCanvas) strokeText(s string, x, y int, face font.Face, p *Paint) {
	bounds := text.BoundString(face, s)
	if bounds.Empty() {
		return
	}
	pad := int(math.Ceil(float64(strokeWidth(p)) / 2))
	w := bounds.Dx() + 2*pad + 2
	h := bounds.Dy() + 2*pad + 2
	dotX := pad + 1 - bounds.Min.X
	dotY := pad + 1 - bounds.Min.Y

	scratch := c.scratchImage(w, h)
	for dy := -pad; dy <= pad; dy++ {
		for dx := -pad; dx <= pad; dx++ {
			if dx*dx+dy*dy > pad*pad {
				continue
			}
			text.Draw(scratch, s, face, dotX+dx, dotY+dy, p.Color)
		}
	}

	cut := &ebiten.DrawImageOptions{}
	cut.GeoM.Translate(float64(dotX), float64(dotY))
	cut.Blend = ebiten.BlendDestinationOut
	text.DrawWithOptions(scratch, s, face, cut)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x-dotX), float64(y-dotY))
	c.target.DrawImage(scratch, op)
}

// scratchImage возвращает очищенный буфер размера w×h, переиспользуя память.
func (c *EbitenCanvas) scratchImage(w, h int) *ebiten.Image {
	if c.scratch != nil {
		b := c.scratch.Bounds()
		if b.Dx() >= w && b.Dy() >= h {
			c.scratch.Clear()
			return c.scratch.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image)
		}
		c.scratch.Deallocate()
	}
	c.scratch = ebiten.NewImage(w, h)
	return c.scratch
}

func (c *EbitenCanvas) face(p *Paint) font.Face {
	face, err := c.faces.Face(p.TextSize)
	if err != nil {
		if !c.faceError {
			c.logger.WithError(err).WithField("size", p.TextSize).Error("Text face unavailable, skipping text")
			c.faceError = true
		}
		return nil
	}
	return face
}

func strokeWidth(p *Paint) float32 {
	// нулевая толщина — «волосяная» линия в один пиксель
	if p.StrokeWidth <= 0 {
		return 1
	}
	return p.StrokeWidth
}

func lineCap(cp Cap) vector.LineCap {
	switch cp {
	case CapRound:
		return vector.LineCapRound
	case CapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapButt
	}
}
