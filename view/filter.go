// Package view holds the filter and pagination engine behind the table and
// card layouts, and the serializable view state that drives it.
package view

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jupark12/job-dashboard/models"
)

// Filter returns the records matching query and status, in input
// order. An empty query and a nil status match everything. The query is a
// case-insensitive substring of the job id, product or user id.
func Filter(records []models.JobRecord, query string, status *models.JobStatus) []models.JobRecord {
	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	return lo.Filter(records, func(r models.JobRecord, _ int) bool {
		if status != nil && r.JobStatus != *status {
			return false
		}
		if needle == "" {
			return true
		}
		return strings.Contains(lower.String(r.JobID), needle) ||
			strings.Contains(lower.String(r.Product), needle) ||
			strings.Contains(lower.String(r.UserID), needle)
	})
}

// Tab is a preset subset of the working set shown as a tab on the dashboard
type Tab string

const (
	TabAll     Tab = "all"
	TabFailed  Tab = "failed"
	TabRunning Tab = "running"
)

// Tabs lists the tabs in display order
var Tabs = []Tab{TabAll, TabFailed, TabRunning}

// Label is the tab caption
func (t Tab) Label() string {
	switch t {
	case TabFailed:
		return "Failed Jobs"
	case TabRunning:
		return "Running Jobs"
	}
	return "All Jobs"
}

func (t Tab) valid() bool {
	return lo.Contains(Tabs, t)
}

// ByTab narrows records to the tab's subset. The running tab also shows
// pending jobs.
func ByTab(records []models.JobRecord, tab Tab) []models.JobRecord {
	switch tab {
	case TabFailed:
		return lo.Filter(records, func(r models.JobRecord, _ int) bool {
			return r.JobStatus == models.StatusFailed
		})
	case TabRunning:
		return lo.Filter(records, func(r models.JobRecord, _ int) bool {
			return r.JobStatus == models.StatusRunning || r.JobStatus == models.StatusPending
		})
	}
	return records
}
