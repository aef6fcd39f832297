package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupark12/job-dashboard/generator"
	"github.com/jupark12/job-dashboard/models"
)

func TestEmptyQueue(t *testing.T) {
	q := NewJobQueue()

	snap := q.Snapshot()
	assert.Empty(t, snap.Jobs)
	assert.NotNil(t, snap.Jobs)
	assert.Empty(t, snap.LoadID)
	assert.Zero(t, q.Len())

	_, err := q.GetJob("JOB-1000")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestSwap(t *testing.T) {
	q := NewJobQueue()
	jobs := generator.New(generator.WithSeed(1)).Generate(30)

	q.Swap(jobs, "load-1")

	snap := q.Snapshot()
	assert.Equal(t, jobs, snap.Jobs)
	assert.Equal(t, "load-1", snap.LoadID)
	assert.False(t, snap.LoadedAt.IsZero())
	assert.Equal(t, 30, q.Len())

	job, err := q.GetJob("JOB-1007")
	require.NoError(t, err)
	assert.Equal(t, jobs[7], job)

	// the caller's slice is not shared with the working set
	jobs[0].JobID = "changed"
	assert.Equal(t, "JOB-1000", q.Snapshot().Jobs[0].JobID)
}

func TestSwapReplacesWholesale(t *testing.T) {
	q := NewJobQueue()
	q.Swap(generator.New(generator.WithSeed(1)).Generate(30), "load-1")

	old := q.Snapshot()
	q.Swap(generator.New(generator.WithSeed(2)).Generate(5), "load-2")

	assert.Len(t, old.Jobs, 30, "earlier snapshots stay intact")
	assert.Equal(t, 5, q.Len())
	_, err := q.GetJob("JOB-1020")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestGetJobsByStatus(t *testing.T) {
	q := NewJobQueue()
	jobs := generator.New(generator.WithSeed(3)).Generate(60)
	q.Swap(jobs, "load")

	total := 0
	for _, s := range models.Statuses {
		got := q.GetJobsByStatus(s)
		for _, job := range got {
			assert.Equal(t, s, job.JobStatus)
		}
		total += len(got)
	}
	assert.Equal(t, len(jobs), total)
}

func TestLoadingFlag(t *testing.T) {
	q := NewJobQueue()
	assert.False(t, q.IsLoading())
	q.SetLoading(true)
	assert.True(t, q.IsLoading())
}

func TestConcurrentReadsDuringSwap(t *testing.T) {
	q := NewJobQueue()
	small := generator.New(generator.WithSeed(4)).Generate(10)
	large := generator.New(generator.WithSeed(5)).Generate(40)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				n := len(q.Snapshot().Jobs)
				assert.Contains(t, []int{0, 10, 40}, n)
			}
		}()
	}
	for j := 0; j < 50; j++ {
		if j%2 == 0 {
			q.Swap(small, "small")
		} else {
			q.Swap(large, "large")
		}
	}
	wg.Wait()
}
