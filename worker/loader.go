package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jupark12/job-dashboard/models"
)

// Result is the outcome of one load
type Result struct {
	LoadID string
	Jobs   []models.JobRecord
	Err    error
}

// Task is a load in flight. Its result is delivered exactly once on Done.
type Task struct {
	ID     string
	done   chan Result
	cancel context.CancelFunc
}

// Done delivers the result of the load, then is closed
func (t *Task) Done() <-chan Result {
	return t.done
}

// Cancel abandons the load. A cancelled task reports context.Canceled.
func (t *Task) Cancel() {
	t.cancel()
}

// Loader fetches a working set from a Source after a fixed delay
type Loader struct {
	Source Source
	Delay  time.Duration
}

// NewLoader creates a loader
func NewLoader(source Source, delay time.Duration) *Loader {
	return &Loader{Source: source, Delay: delay}
}

// Load starts an asynchronous load bound to ctx
func (l *Loader) Load(ctx context.Context) *Task {
	ctx, cancel := context.WithCancel(ctx)
	task := &Task{
		ID:     uuid.New().String(),
		done:   make(chan Result, 1),
		cancel: cancel,
	}

	go func() {
		defer cancel()
		task.done <- l.run(ctx, task.ID)
		close(task.done)
	}()

	return task
}

func (l *Loader) run(ctx context.Context, loadID string) Result {
	if l.Delay > 0 {
		timer := time.NewTimer(l.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Result{LoadID: loadID, Err: ctx.Err()}
		case <-timer.C:
		}
	}

	jobs, err := l.Source.Fetch(ctx)
	if err != nil {
		return Result{LoadID: loadID, Err: fmt.Errorf("fetch jobs: %w", err)}
	}
	if err := ctx.Err(); err != nil {
		return Result{LoadID: loadID, Err: err}
	}

	return Result{LoadID: loadID, Jobs: jobs}
}
