// pkg/units/units.go
package units

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit — единица измерения размера
type Unit string

const (
	Px Unit = "px"
	Dp Unit = "dp"
	Sp Unit = "sp"
)

// Density описывает плотность экрана: сколько пикселей в одном dp и в одном sp.
type Density struct {
	Density       float32
	ScaledDensity float32
}

// DefaultDensity — экран 1:1, без масштабирования шрифта
var DefaultDensity = Density{Density: 1, ScaledDensity: 1}

// NewDensity создаёт плотность из масштаба экрана и пользовательского масштаба шрифта.
func NewDensity(scale, fontScale float32) Density {
	if scale <= 0 {
		scale = 1
	}
	if fontScale <= 0 {
		fontScale = 1
	}
	return Density{Density: scale, ScaledDensity: scale * fontScale}
}

// Dp переводит dp в пиксели с округлением вверх от половины
func (d Density) Dp(v float32) int {
	return int(v*d.Density + 0.5)
}

// Sp переводит sp в пиксели
func (d Density) Sp(v float32) int {
	return int(v*d.ScaledDensity + 0.5)
}

// Dimension — размер с единицей измерения, например "16dp".
type Dimension struct {
	Value float32
	Unit  Unit
}

// ParseDimension разбирает строку вида "16dp", "12.5sp" или "40px".
// Число без суффикса считается пикселями.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Dimension{}, fmt.Errorf("empty dimension")
	}

	unit := Px
	num := s
	for _, u := range []Unit{Px, Dp, Sp} {
		if strings.HasSuffix(s, string(u)) {
			unit = u
			num = strings.TrimSpace(strings.TrimSuffix(s, string(u)))
			break
		}
	}

	v, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return Dimension{}, fmt.Errorf("invalid dimension %q: %w", s, err)
	}
	return Dimension{Value: float32(v), Unit: unit}, nil
}

func (dim Dimension) String() string {
	return strconv.FormatFloat(float64(dim.Value), 'f', -1, 32) + string(dim.Unit)
}

// MarshalJSON пишет размер строкой
func (dim Dimension) MarshalJSON() ([]byte, error) {
	return json.Marshal(dim.String())
}

// UnmarshalJSON читает размер из строки
func (dim *Dimension) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("dimension must be a string: %w", err)
	}
	parsed, err := ParseDimension(s)
	if err != nil {
		return err
	}
	*dim = parsed
	return nil
}

// Pixels возвращает размер в пикселях без округления.
func (d Density) Pixels(dim Dimension) float32 {
	switch dim.Unit {
	case Dp:
		return dim.Value * d.Density
	case Sp:
		return dim.Value * d.ScaledDensity
	default:
		return dim.Value
	}
}

// PixelSize округляет размер до целых пикселей. Ненулевой размер никогда
// не превращается в 0: минимум 1 (или -1 для отрицательных).
func (d Density) PixelSize(dim Dimension) int {
	f := d.Pixels(dim)
	res := int(math.Round(float64(f)))
	if res != 0 {
		return res
	}
	switch {
	case dim.Value == 0:
		return 0
	case dim.Value > 0:
		return 1
	default:
		return -1
	}
}
