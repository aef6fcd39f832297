// Package stats reduces a working set into the dashboard summary widgets:
// per-status counts and the trailing seven day activity series.
package stats

import (
	"time"

	"github.com/jupark12/job-dashboard/models"
)

// SeriesDays is the length of the activity window
const SeriesDays = 7

// DateLayout is the key format of a ChartPoint date
const DateLayout = "2006-01-02"

// CountsByStatus counts records per status. Total always equals len(records),
// including records whose status is not one of the known values.
func CountsByStatus(records []models.JobRecord) models.JobStatusCounts {
	counts := models.JobStatusCounts{Total: len(records)}

	for _, r := range records {
		switch r.JobStatus {
		case models.StatusPending:
			counts.Pending++
		case models.StatusRunning:
			counts.Running++
		case models.StatusCompleted:
			counts.Completed++
		case models.StatusFailed:
			counts.Failed++
		}
	}

	return counts
}

// ActivitySeries buckets records by the calendar day of their registration
// time over the SeriesDays days ending on now, oldest first. Days are taken in
// now's location. Records outside the window are ignored.
func ActivitySeries(records []models.JobRecord, now time.Time) []models.ChartPoint {
	points := make([]models.ChartPoint, SeriesDays)
	index := make(map[string]int, SeriesDays)

	for i := range points {
		key := now.AddDate(0, 0, i-(SeriesDays-1)).Format(DateLayout)
		points[i].Date = key
		index[key] = i
	}

	for _, r := range records {
		i, ok := index[r.JobRegistrationTime.In(now.Location()).Format(DateLayout)]
		if !ok {
			continue
		}

		p := &points[i]
		switch r.JobStatus {
		case models.StatusCompleted:
			p.Completed++
		case models.StatusFailed:
			p.Failed++
		case models.StatusRunning:
			p.Running++
		case models.StatusPending:
			p.Pending++
		}
	}

	return points
}

// Summary bundles the widgets refreshed whenever the working set changes
type Summary struct {
	Counts models.JobStatusCounts `json:"counts"`
	Series []models.ChartPoint    `json:"series"`
}

// Summarize computes both reductions over the same working set
func Summarize(records []models.JobRecord, now time.Time) Summary {
	return Summary{
		Counts: CountsByStatus(records),
		Series: ActivitySeries(records, now),
	}
}
