package queue

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/jupark12/job-dashboard/models"
)

// ErrJobNotFound is returned when a job id is not in the working set
var ErrJobNotFound = errors.New("job not found")

// Snapshot is an immutable view of the working set at one point in time
type Snapshot struct {
	Jobs     []models.JobRecord
	LoadID   string
	LoadedAt time.Time
}

// JobQueue holds the working set of jobs shown by the dashboard. The set is
// replaced wholesale on every load and never mutated in place.
type JobQueue struct {
	mu       sync.RWMutex
	jobs     []models.JobRecord
	jobsByID map[string]int
	loadID   string
	loadedAt time.Time
	loading  bool
}

// NewJobQueue creates an empty working set
func NewJobQueue() *JobQueue {
	return &JobQueue{
		jobs:     []models.JobRecord{},
		jobsByID: make(map[string]int),
	}
}

// Swap replaces the working set with jobs produced by the load loadID
func (q *JobQueue) Swap(jobs []models.JobRecord, loadID string) {
	index := make(map[string]int, len(jobs))
	for i, job := range jobs {
		index[job.JobID] = i
	}
	owned := append([]models.JobRecord(nil), jobs...)
	if owned == nil {
		owned = []models.JobRecord{}
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.jobs = owned
	q.jobsByID = index
	q.loadID = loadID
	q.loadedAt = time.Now()
}

// Snapshot returns the current working set
func (q *JobQueue) Snapshot() Snapshot {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return Snapshot{Jobs: q.jobs, LoadID: q.loadID, LoadedAt: q.loadedAt}
}

// GetJob retrieves a job by ID
func (q *JobQueue) GetJob(jobID string) (models.JobRecord, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	i, exists := q.jobsByID[jobID]
	if !exists {
		return models.JobRecord{}, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	return q.jobs[i], nil
}

// GetJobsByStatus returns the jobs in the given status, in working set order
func (q *JobQueue) GetJobsByStatus(status models.JobStatus) []models.JobRecord {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return lo.Filter(q.jobs, func(job models.JobRecord, _ int) bool {
		return job.JobStatus == status
	})
}

// Len returns the size of the working set
func (q *JobQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return len(q.jobs)
}

// SetLoading records whether a load is in flight
func (q *JobQueue) SetLoading(loading bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.loading = loading
}

// IsLoading reports whether a load is in flight
func (q *JobQueue) IsLoading() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return q.loading
}
