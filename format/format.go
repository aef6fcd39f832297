// Package format renders job fields for display.
package format

import (
	"fmt"
	"time"

	"github.com/jupark12/job-dashboard/models"
)

// Placeholder is shown for absent values
const Placeholder = "-"

const (
	dateTimeLayout  = "Jan 02, 2006, 03:04 PM"
	chartDateLayout = "Jan 2"
	chartKeyLayout  = "2006-01-02"
)

// FormatDateTime renders a timestamp in the en-US medium form used across the
// dashboard, or the placeholder when the timestamp is absent.
func FormatDateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Placeholder
	}
	return t.Format(dateTimeLayout)
}

// FormatTime is FormatDateTime for timestamps that are always present
func FormatTime(t time.Time) string {
	return FormatDateTime(&t)
}

// FormatDuration renders the time between start and end. A missing end means
// the job is still going.
func FormatDuration(start time.Time, end *time.Time) string {
	if end == nil {
		return "In progress"
	}

	minutes := int(end.Sub(start).Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// FormatMinutes renders a total run time, or the placeholder for zero
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return Placeholder
	}
	return fmt.Sprintf("%d min", minutes)
}

// FormatChartDate turns a chart date key into a short axis label
func FormatChartDate(key string) string {
	t, err := time.Parse(chartKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format(chartDateLayout)
}

// StatusClass returns the badge class for a status
func StatusClass(status models.JobStatus) string {
	switch status {
	case models.StatusCompleted:
		return "bg-job-completed"
	case models.StatusFailed:
		return "bg-job-failed"
	case models.StatusRunning:
		return "bg-job-running"
	case models.StatusPending:
		return "bg-job-pending"
	}
	return "bg-gray-400"
}

// StatusColor returns the chart color for a status
func StatusColor(status models.JobStatus) string {
	switch status {
	case models.StatusCompleted:
		return "#10B981"
	case models.StatusFailed:
		return "#EF4444"
	case models.StatusRunning:
		return "#3B82F6"
	case models.StatusPending:
		return "#F59E0B"
	}
	return "#9CA3AF"
}

// MessageState renders a message flag
func MessageState(loaded bool) string {
	if loaded {
		return "Loaded"
	}
	return "Not Loaded"
}

// OrPlaceholder returns s, or the placeholder when s is empty or nil
func OrPlaceholder(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}
