// Package upload models the media upload progress indicator as an explicit
// task: discrete progress events, a completion outcome and cancellation via
// context. The task only drives a transient UI percentage; it has no effect
// on any stored record.
package upload

import (
	"context"
	"time"
)

// Defaults matching the original dialog: 0 to 100 in steps of 10, one step
// every 200ms.
const (
	DefaultStep     = 10
	DefaultInterval = 200 * time.Millisecond
)

// Simulator configures simulated upload tasks
type Simulator struct {
	// Step is the percentage added per tick
	Step int

	// Interval is the delay between ticks
	Interval time.Duration
}

// Task is a single in-flight upload simulation
type Task struct {
	progress chan int
	done     chan struct{}
	err      error
}

// Start launches a simulated upload. The returned task emits progress
// percentages until it reaches 100 or the context is cancelled.
func (s Simulator) Start(ctx context.Context) *Task {
	step := s.Step
	if step < 1 {
		step = DefaultStep
	}
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	t := &Task{
		// Buffered for the full run so a slow consumer never blocks the timer
		progress: make(chan int, (100+step-1)/step),
		done:     make(chan struct{}),
	}

	go t.run(ctx, step, interval)
	return t
}

func (t *Task) run(ctx context.Context, step int, interval time.Duration) {
	defer close(t.done)
	defer close(t.progress)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	pct := 0
	for pct < 100 {
		select {
		case <-ctx.Done():
			t.err = ctx.Err()
			return
		case <-ticker.C:
			pct += step
			if pct > 100 {
				pct = 100
			}
			t.progress <- pct
		}
	}
}

// Progress returns the channel of discrete progress percentages. It is
// closed when the task finishes or is cancelled.
func (t *Task) Progress() <-chan int {
	return t.progress
}

// Done returns a channel closed when the task has finished or been cancelled
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err returns the task outcome: nil after completion, the context error
// after cancellation. Only valid once Done is closed.
func (t *Task) Err() error {
	return t.err
}
