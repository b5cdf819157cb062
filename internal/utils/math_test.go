package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(0), Lerp(0, 50, 0))
	assert.Equal(t, float32(25), Lerp(0, 50, 0.5))
	assert.Equal(t, float32(50), Lerp(0, 50, 1))
	assert.Equal(t, float32(42.5), Lerp(45, 40, 0.5))
}

func TestSecondsToDuration(t *testing.T) {
	assert.Equal(t, 16667*time.Microsecond, SecondsToDuration(1.0/60+1e-9))
	assert.Equal(t, 60*time.Millisecond, SecondsToDuration(0.06))
	assert.Equal(t, time.Duration(0), SecondsToDuration(0))
}
