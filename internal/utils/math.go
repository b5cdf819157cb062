// internal/utils/math.go
package utils

import (
	"math"
	"time"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// SecondsToDuration переводит дробные секунды игрового цикла в time.Duration
// с точностью до микросекунды.
func SecondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds*1e6)) * time.Microsecond
}
