// pkg/measure/measure.go
package measure

import "fmt"

// Mode — как хост ограничивает размер по одной оси
type Mode int

const (
	Unspecified Mode = iota // без ограничений
	Exactly                 // размер задан точно
	AtMost                  // не больше заданного
)

func (m Mode) String() string {
	switch m {
	case Exactly:
		return "exactly"
	case AtMost:
		return "at_most"
	default:
		return "unspecified"
	}
}

// Spec — ограничение размера по одной оси.
type Spec struct {
	Mode Mode
	Size int
}

func Exact(size int) Spec    { return Spec{Mode: Exactly, Size: size} }
func AtMostOf(size int) Spec { return Spec{Mode: AtMost, Size: size} }
func Unbounded() Spec        { return Spec{Mode: Unspecified} }

func (s Spec) String() string {
	if s.Mode == Unspecified {
		return s.Mode.String()
	}
	return fmt.Sprintf("%s(%d)", s.Mode, s.Size)
}

// Dimension выбирает итоговый размер оси: точный размер хоста соблюдается,
// иначе берётся естественный размер, урезанный сверху при AtMost.
func Dimension(spec Spec, natural int) int {
	if spec.Mode == Exactly {
		return spec.Size
	}
	result := natural
	if spec.Mode == AtMost && spec.Size < result {
		result = spec.Size
	}
	return result
}
