package models

import (
	"errors"
	"fmt"
	"time"
)

// JobStatus represents the current state of a job in the system
type JobStatus string

const (
	StatusPending   JobStatus = "Pending"
	StatusRunning   JobStatus = "Running"
	StatusCompleted JobStatus = "Completed"
	StatusFailed    JobStatus = "Failed"
)

// Statuses lists every known status in display order
var Statuses = []JobStatus{StatusPending, StatusRunning, StatusCompleted, StatusFailed}

// ErrUnknownStatus is returned when a status string is not one of Statuses
var ErrUnknownStatus = errors.New("unknown job status")

// ParseStatus converts a raw string into a JobStatus
func ParseStatus(raw string) (JobStatus, error) {
	for _, s := range Statuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// Valid reports whether s is one of the four known statuses
func (s JobStatus) Valid() bool {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether a job in this status has finished
func (s JobStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// JobRecord represents one monitored background job
type JobRecord struct {
	JobID       string `json:"jobId"`
	UserID      string `json:"userId"`
	ClientID    string `json:"clientId"`
	Product     string `json:"product"`
	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`
	JobType     string `json:"jobType"`
	Environment string `json:"environment"`

	JobStatus JobStatus `json:"jobStatus"`

	JobRegistrationTime time.Time  `json:"jobRegistrationTime"`
	JobPickUpTime       *time.Time `json:"jobPickUpTime"`
	JobEndTime          *time.Time `json:"jobEndTime"`
	TotalTimeInMinutes  int        `json:"totalTimeInMinutes"`
	LastUpdatedTime     time.Time  `json:"lastUpdatedTime"`

	Hostnames    []string `json:"hostnames"`
	Applications []string `json:"applications"`
	Services     []string `json:"services"`
	PodNames     []string `json:"podNames"`

	IsStartMessageLoaded    bool `json:"isStartMessageLoaded"`
	IsProgressMessageLoaded bool `json:"isProgressMessageLoaded"`
	IsSummaryMessageLoaded  bool `json:"isSummaryMessageLoaded"`

	ExportSetName *string `json:"exportSetName"`
}

// Validate checks the timing invariants tying timestamps to the job status
func (j JobRecord) Validate() error {
	if !j.JobStatus.Valid() {
		return fmt.Errorf("job %s: %w: %q", j.JobID, ErrUnknownStatus, j.JobStatus)
	}
	if (j.JobPickUpTime == nil) != (j.JobStatus == StatusPending) {
		return fmt.Errorf("job %s: pick-up time must be absent exactly when pending", j.JobID)
	}
	if (j.JobEndTime != nil) != j.JobStatus.Terminal() {
		return fmt.Errorf("job %s: end time must be present exactly when completed or failed", j.JobID)
	}
	if j.JobPickUpTime != nil && j.JobPickUpTime.Before(j.JobRegistrationTime) {
		return fmt.Errorf("job %s: picked up before registration", j.JobID)
	}
	if j.JobEndTime != nil && j.JobPickUpTime != nil && j.JobEndTime.Before(*j.JobPickUpTime) {
		return fmt.Errorf("job %s: ended before pick-up", j.JobID)
	}
	if j.TotalTimeInMinutes < 0 {
		return fmt.Errorf("job %s: negative total time", j.JobID)
	}
	return nil
}

// JobStatusCounts holds per-status totals for a set of jobs
type JobStatusCounts struct {
	Pending   int `json:"pending"`
	Running   int `json:"running"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Total     int `json:"total"`
}

// ChartPoint is one day of the activity chart
type ChartPoint struct {
	Date      string `json:"date"`
	Completed int    `json:"Completed"`
	Failed    int    `json:"Failed"`
	Running   int    `json:"Running"`
	Pending   int    `json:"Pending"`
}

// Count returns the counter for the given status
func (p ChartPoint) Count(status JobStatus) int {
	switch status {
	case StatusCompleted:
		return p.Completed
	case StatusFailed:
		return p.Failed
	case StatusRunning:
		return p.Running
	case StatusPending:
		return p.Pending
	}
	return 0
}

// Total returns the sum of all counters of the day
func (p ChartPoint) Total() int {
	return p.Completed + p.Failed + p.Running + p.Pending
}
