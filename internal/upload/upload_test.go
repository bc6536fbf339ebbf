package upload

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRunsToCompletion(t *testing.T) {
	sim := Simulator{Step: 25, Interval: time.Millisecond}

	task := sim.Start(context.Background())

	var events []int
	for pct := range task.Progress() {
		events = append(events, pct)
	}

	<-task.Done()
	require.NoError(t, task.Err())
	assert.Equal(t, []int{25, 50, 75, 100}, events)
}

func TestTaskCapsProgressAtHundred(t *testing.T) {
	sim := Simulator{Step: 40, Interval: time.Millisecond}

	task := sim.Start(context.Background())

	last := 0
	for pct := range task.Progress() {
		assert.Greater(t, pct, last, "progress is strictly increasing")
		assert.LessOrEqual(t, pct, 100)
		last = pct
	}
	assert.Equal(t, 100, last)
}

func TestTaskCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := Simulator{Step: 10, Interval: time.Hour}
	task := sim.Start(ctx)

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("cancelled task did not finish")
	}

	assert.ErrorIs(t, task.Err(), context.Canceled)

	// The progress channel is closed without further events
	_, open := <-task.Progress()
	assert.False(t, open)
}

func TestTaskDefaults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Zero values fall back to the documented defaults without blocking
	task := Simulator{}.Start(ctx)
	first := <-task.Progress()
	assert.Equal(t, DefaultStep, first)
}
