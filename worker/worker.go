package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/jupark12/job-dashboard/models"
	"github.com/jupark12/job-dashboard/queue"
)

// Worker keeps the working set of a JobQueue fresh by running loads and
// reporting their outcome through a notifier
type Worker struct {
	ID     string
	Queue  *queue.JobQueue
	loader *Loader
	log    logrus.FieldLogger
	notify func(models.Notification)

	mu      sync.Mutex
	current *Task
	wg      sync.WaitGroup
}

// NewWorker creates a new worker instance
func NewWorker(id string, q *queue.JobQueue, loader *Loader, log logrus.FieldLogger) *Worker {
	return &Worker{
		ID:     id,
		Queue:  q,
		loader: loader,
		log:    log.WithField("worker", id),
		notify: func(models.Notification) {},
	}
}

// SetNotifier sets the callback receiving load notifications
func (w *Worker) SetNotifier(notify func(models.Notification)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.notify = notify
}

// Start runs the initial load
func (w *Worker) Start(ctx context.Context) string {
	w.log.Info("worker starting")
	return w.Reload(ctx)
}

// Reload starts a new load and returns its id. A load still in flight is
// cancelled and its result discarded.
func (w *Worker) Reload(ctx context.Context) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.current != nil {
		w.log.WithField("load", w.current.ID).Debug("superseding load in flight")
		w.current.Cancel()
	}

	task := w.loader.Load(ctx)
	w.current = task
	w.Queue.SetLoading(true)

	w.wg.Add(1)
	go w.await(task)

	w.log.WithField("load", task.ID).Info("loading jobs")
	return task.ID
}

// Stop cancels the load in flight, if any, and waits for pending results
func (w *Worker) Stop() {
	w.mu.Lock()
	if w.current != nil {
		w.current.Cancel()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// Wait blocks until every started load has been handled
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) await(task *Task) {
	defer w.wg.Done()

	result := <-task.Done()
	log := w.log.WithField("load", result.LoadID)

	w.mu.Lock()
	if w.current != task {
		w.mu.Unlock()
		log.Debug("discarding result of superseded load")
		return
	}
	w.current = nil
	w.Queue.SetLoading(false)
	notify := w.notify

	if errors.Is(result.Err, context.Canceled) || errors.Is(result.Err, context.DeadlineExceeded) {
		w.mu.Unlock()
		log.Debug("load abandoned")
		return
	}

	if result.Err != nil {
		w.mu.Unlock()
		log.WithError(result.Err).Error("failed to load jobs")
		notify(models.NewNotification(models.VariantDestructive, "Error", "Failed to load jobs"))
		return
	}

	w.Queue.Swap(result.Jobs, result.LoadID)
	w.mu.Unlock()

	log.WithField("jobs", len(result.Jobs)).Info("jobs loaded")
	notify(models.NewNotification(models.VariantDefault, "Jobs loaded",
		fmt.Sprintf("Successfully loaded %d jobs", len(result.Jobs))))
}
