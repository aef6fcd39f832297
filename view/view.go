package view

import (
	"github.com/samber/lo"

	"github.com/jupark12/job-dashboard/models"
)

// Result is one rendered page of a job list
type Result struct {
	State      ViewState          `json:"state"`
	Items      []models.JobRecord `json:"items"`
	Matches    int                `json:"matches"`
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
	PageSize   int                `json:"pageSize"`
	ShowPager  bool               `json:"showPager"`
	Selected   *models.JobRecord  `json:"selected,omitempty"`
}

// HasPrev reports whether a previous page exists
func (r Result) HasPrev() bool {
	return r.Page > 1
}

// HasNext reports whether a next page exists
func (r Result) HasNext() bool {
	return r.Page < r.TotalPages
}

// Apply runs the tab, filter and pagination steps for state over records.
// The page in the returned state is clamped to the available pages. The
// selected job is looked up in the full working set.
func Apply(records []models.JobRecord, state ViewState) Result {
	matches := Filter(ByTab(records, state.Tab), state.Query, state.Status)

	size := state.Layout.PageSize()
	total := TotalPages(len(matches), size)
	state = state.WithPage(state.Page, total)

	result := Result{
		State:      state,
		Items:      Paginate(matches, size, state.Page),
		Matches:    len(matches),
		Page:       state.Page,
		TotalPages: total,
		PageSize:   size,
		ShowPager:  total > 1,
	}

	if state.Selected != "" {
		if job, ok := lo.Find(records, func(r models.JobRecord) bool {
			return r.JobID == state.Selected
		}); ok {
			result.Selected = &job
		}
	}

	return result
}
