package view

import (
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupark12/job-dashboard/generator"
	"github.com/jupark12/job-dashboard/models"
	"github.com/jupark12/job-dashboard/stats"
)

func sampleJobs() []models.JobRecord {
	return []models.JobRecord{
		{JobID: "JOB-1000", UserID: "user-101", Product: "DataSync", JobStatus: models.StatusPending},
		{JobID: "JOB-1001", UserID: "user-102", Product: "CloudManager", JobStatus: models.StatusRunning},
		{JobID: "JOB-1002", UserID: "user-103", Product: "AnalyticsEngine", JobStatus: models.StatusCompleted},
		{JobID: "JOB-1003", UserID: "user-101", Product: "SecurityTool", JobStatus: models.StatusFailed},
		{JobID: "JOB-1005", UserID: "user-104", Product: "DataSync", JobStatus: models.StatusFailed},
	}
}

func ids(records []models.JobRecord) []string {
	return lo.Map(records, func(r models.JobRecord, _ int) string { return r.JobID })
}

func TestFilterIdentity(t *testing.T) {
	jobs := generator.New(generator.WithSeed(1)).Generate(50)
	assert.Equal(t, jobs, Filter(jobs, "", nil))
}

func TestFilterQuery(t *testing.T) {
	jobs := sampleJobs()

	tests := []struct {
		query string
		want  []string
	}{
		{"JOB-100", []string{"JOB-1000", "JOB-1001", "JOB-1002", "JOB-1003", "JOB-1005"}},
		{"job-1005", []string{"JOB-1005"}},
		{"datasync", []string{"JOB-1000", "JOB-1005"}},
		{"USER-101", []string{"JOB-1000", "JOB-1003"}},
		{"tool", []string{"JOB-1003"}},
		{"nothing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(jobs, tt.query, nil)))
		})
	}
}

func TestFilterStatus(t *testing.T) {
	jobs := sampleJobs()
	failed := models.StatusFailed

	assert.Equal(t, []string{"JOB-1003", "JOB-1005"}, ids(Filter(jobs, "", &failed)))
	assert.Equal(t, []string{"JOB-1005"}, ids(Filter(jobs, "datasync", &failed)))
}

func TestFilterIdempotent(t *testing.T) {
	jobs := generator.New(generator.WithSeed(2)).Generate(120)
	running := models.StatusRunning

	for _, q := range []string{"", "job-10", "user-105", "Cloud"} {
		for _, s := range []*models.JobStatus{nil, &running} {
			once := Filter(jobs, q, s)
			assert.Equal(t, once, Filter(once, q, s), "query %q", q)
		}
	}
}

func TestFilterFailedMatchesCounts(t *testing.T) {
	jobs := generator.New(generator.WithSeed(3)).Generate(50)
	failed := models.StatusFailed

	result := Filter(jobs, "", &failed)
	assert.Len(t, result, stats.CountsByStatus(jobs).Failed)
	for _, r := range result {
		assert.Equal(t, models.StatusFailed, r.JobStatus)
	}
}

func TestFilterFindsGeneratedID(t *testing.T) {
	jobs := generator.Generate(50)

	result := Filter(jobs, "JOB-100", nil)
	require.Contains(t, ids(result), "JOB-1005")
	assert.Len(t, result, 10)
}

func TestByTab(t *testing.T) {
	jobs := sampleJobs()

	assert.Equal(t, ids(jobs), ids(ByTab(jobs, TabAll)))
	assert.Equal(t, []string{"JOB-1003", "JOB-1005"}, ids(ByTab(jobs, TabFailed)))
	assert.Equal(t, []string{"JOB-1000", "JOB-1001"}, ids(ByTab(jobs, TabRunning)))
}

func TestTabLabels(t *testing.T) {
	for _, tab := range Tabs {
		assert.NotEmpty(t, tab.Label(), fmt.Sprint(tab))
	}
}
