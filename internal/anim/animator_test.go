package anim

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-percent-view/pkg/ring"
)

func newTestAnimator(t *testing.T) (*Animator, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewAnimator(ring.TransitionDuration, logger), hook
}

func TestLinearTransition(t *testing.T) {
	a, _ := newTestAnimator(t)
	gen, cancelled := a.Start(0, 50)
	assert.Equal(t, uint64(1), gen)
	assert.Nil(t, cancelled)
	require.Equal(t, time.Second, a.Current().Duration)

	v, finished, ok := a.Step(250 * time.Millisecond)
	require.True(t, ok)
	assert.False(t, finished)
	assert.InDelta(t, 12.5, v, 1e-4)

	v, finished, ok = a.Step(500 * time.Millisecond)
	require.True(t, ok)
	assert.False(t, finished)
	assert.InDelta(t, 37.5, v, 1e-4)

	v, finished, ok = a.Step(time.Second)
	require.True(t, ok)
	assert.True(t, finished)
	assert.Equal(t, float32(50), v)

	assert.False(t, a.Running())
	_, _, ok = a.Step(time.Second)
	assert.False(t, ok)
}

func TestDownwardTransition(t *testing.T) {
	a, _ := newTestAnimator(t)
	a.Start(45, 40)
	require.Equal(t, 100*time.Millisecond, a.Current().Duration)

	v, _, _ := a.Step(50 * time.Millisecond)
	assert.InDelta(t, 42.5, v, 1e-4)
}

func TestStartReplacesRunningTransition(t *testing.T) {
	a, hook := newTestAnimator(t)
	first, _ := a.Start(0, 100)
	a.Step(500 * time.Millisecond)

	second, cancelled := a.Start(50, 10)
	require.NotNil(t, cancelled)
	assert.Equal(t, first, cancelled.Generation)
	assert.InDelta(t, 25, cancelled.Value(), 1e-4)
	assert.Equal(t, first+1, second)
	assert.Equal(t, second, a.Generation())

	// старый переход больше не влияет на значение
	v, _, ok := a.Step(400 * time.Millisecond)
	require.True(t, ok)
	assert.InDelta(t, 30, v, 1e-4)

	var messages []string
	for _, e := range hook.AllEntries() {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{"Transition started", "Transition cancelled", "Transition started"}, messages)
}

func TestZeroDurationEmitsTargetOnce(t *testing.T) {
	a, _ := newTestAnimator(t)
	a.Start(30, 30)

	v, finished, ok := a.Step(0)
	require.True(t, ok)
	assert.True(t, finished)
	assert.Equal(t, float32(30), v)

	_, _, ok = a.Step(0)
	assert.False(t, ok)
}

func TestCancelWithoutTransition(t *testing.T) {
	a, hook := newTestAnimator(t)
	assert.Nil(t, a.Cancel())
	assert.Empty(t, hook.AllEntries())
}

func TestNegativeStepDoesNotRewind(t *testing.T) {
	a, _ := newTestAnimator(t)
	a.Start(0, 10)
	a.Step(100 * time.Millisecond)
	v, _, _ := a.Step(-time.Second)
	assert.InDelta(t, 5, v, 1e-4)
}
