package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("running")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.False(t, StatusRunning.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, JobStatus("Queued").Valid())
}

func TestValidate(t *testing.T) {
	reg := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	pick := reg.Add(time.Hour)
	end := pick.Add(30 * time.Minute)

	tests := []struct {
		name    string
		job     JobRecord
		wantErr bool
	}{
		{"pending", JobRecord{JobID: "p", JobStatus: StatusPending, JobRegistrationTime: reg}, false},
		{"running", JobRecord{JobID: "r", JobStatus: StatusRunning, JobRegistrationTime: reg, JobPickUpTime: &pick}, false},
		{"completed", JobRecord{JobID: "c", JobStatus: StatusCompleted, JobRegistrationTime: reg, JobPickUpTime: &pick, JobEndTime: &end, TotalTimeInMinutes: 30}, false},
		{"unknown status", JobRecord{JobID: "u", JobStatus: "Queued", JobRegistrationTime: reg}, true},
		{"pending with pick-up", JobRecord{JobID: "x", JobStatus: StatusPending, JobRegistrationTime: reg, JobPickUpTime: &pick}, true},
		{"running with end", JobRecord{JobID: "x", JobStatus: StatusRunning, JobRegistrationTime: reg, JobPickUpTime: &pick, JobEndTime: &end}, true},
		{"failed without end", JobRecord{JobID: "x", JobStatus: StatusFailed, JobRegistrationTime: reg, JobPickUpTime: &pick}, true},
		{"picked up early", JobRecord{JobID: "x", JobStatus: StatusRunning, JobRegistrationTime: pick, JobPickUpTime: &reg}, true},
		{"ended early", JobRecord{JobID: "x", JobStatus: StatusFailed, JobRegistrationTime: reg, JobPickUpTime: &end, JobEndTime: &pick}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChartPointCount(t *testing.T) {
	p := ChartPoint{Date: "2025-03-10", Completed: 3, Failed: 2, Running: 1, Pending: 4}
	assert.Equal(t, 3, p.Count(StatusCompleted))
	assert.Equal(t, 2, p.Count(StatusFailed))
	assert.Equal(t, 1, p.Count(StatusRunning))
	assert.Equal(t, 4, p.Count(StatusPending))
	assert.Equal(t, 0, p.Count("Queued"))
	assert.Equal(t, 10, p.Total())
}

func TestNewNotification(t *testing.T) {
	a := NewNotification(VariantDefault, "Jobs loaded", "Successfully loaded 3 jobs")
	b := NewNotification(VariantDestructive, "Error", "Failed to load jobs")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, VariantDestructive, b.Variant)
	assert.False(t, a.Time.IsZero())
}
