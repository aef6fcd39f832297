package view

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/jupark12/job-dashboard/models"
)

// ErrInvalidStatus is returned when a status filter is not a known status
var ErrInvalidStatus = errors.New("invalid status filter")

// Layout is the presentation mode of the job list
type Layout string

const (
	LayoutTable Layout = "table"
	LayoutCards Layout = "cards"
)

// PageSize returns the number of jobs per page for the layout
func (l Layout) PageSize() int {
	if l == LayoutCards {
		return 8
	}
	return 10
}

// Query parameter names of an encoded ViewState
const (
	ParamTab      = "tab"
	ParamQuery    = "q"
	ParamStatus   = "status"
	ParamPage     = "page"
	ParamLayout   = "layout"
	ParamSelected = "job"
)

// ViewState is the complete interaction state of a job list: what is
// searched, filtered and selected, which page is shown and how.
type ViewState struct {
	Tab      Tab               `json:"tab"`
	Query    string            `json:"query"`
	Status   *models.JobStatus `json:"status,omitempty"`
	Page     int               `json:"page"`
	Layout   Layout            `json:"layout"`
	Selected string            `json:"selected,omitempty"`
}

// DefaultState is the state of a freshly opened view
func DefaultState(layout Layout) ViewState {
	return ViewState{Tab: TabAll, Page: 1, Layout: layout}
}

// ParseViewState decodes a state from query parameters. Unknown tabs and
// layouts fall back to the defaults, a malformed page becomes 1. An unknown
// status is an error. The status values "" and "all" mean no filter.
func ParseViewState(values url.Values, fallback Layout) (ViewState, error) {
	state := DefaultState(fallback)

	if tab := Tab(values.Get(ParamTab)); tab.valid() {
		state.Tab = tab
	}
	if layout := Layout(values.Get(ParamLayout)); layout == LayoutTable || layout == LayoutCards {
		state.Layout = layout
	}
	state.Query = strings.TrimSpace(values.Get(ParamQuery))
	state.Selected = values.Get(ParamSelected)

	if raw := values.Get(ParamStatus); raw != "" && raw != "all" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			return state, fmt.Errorf("%w: %w", ErrInvalidStatus, err)
		}
		state.Status = &status
	}

	if page, err := strconv.Atoi(values.Get(ParamPage)); err == nil && page > 0 {
		state.Page = page
	}

	return state, nil
}

// Encode serializes the state, leaving out default values
func (s ViewState) Encode() url.Values {
	values := url.Values{}
	if s.Tab != "" && s.Tab != TabAll {
		values.Set(ParamTab, string(s.Tab))
	}
	if s.Query != "" {
		values.Set(ParamQuery, s.Query)
	}
	if s.Status != nil {
		values.Set(ParamStatus, string(*s.Status))
	}
	if s.Page > 1 {
		values.Set(ParamPage, strconv.Itoa(s.Page))
	}
	if s.Layout == LayoutCards {
		values.Set(ParamLayout, string(s.Layout))
	}
	if s.Selected != "" {
		values.Set(ParamSelected, s.Selected)
	}
	return values
}

// URL renders the state as a link to path
func (s ViewState) URL(path string) string {
	encoded := s.Encode().Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// StatusValue returns the status filter as a string, empty when unset
func (s ViewState) StatusValue() string {
	if s.Status == nil {
		return ""
	}
	return string(*s.Status)
}

// WithQuery changes the search text. A different query goes back to page 1.
func (s ViewState) WithQuery(query string) ViewState {
	if query != s.Query {
		s.Query = query
		s.Page = 1
	}
	return s
}

// WithStatus changes the status filter. A different filter goes back to page 1.
func (s ViewState) WithStatus(status *models.JobStatus) ViewState {
	if !sameStatus(s.Status, status) {
		s.Status = nil
		if status != nil {
			s.Status = lo.ToPtr(*status)
		}
		s.Page = 1
	}
	return s
}

// WithTab switches tabs, going back to page 1
func (s ViewState) WithTab(tab Tab) ViewState {
	if tab != s.Tab {
		s.Tab = tab
		s.Page = 1
	}
	return s
}

// WithLayout switches between table and cards, going back to page 1 since
// the page size differs.
func (s ViewState) WithLayout(layout Layout) ViewState {
	if layout != s.Layout {
		s.Layout = layout
		s.Page = 1
	}
	return s
}

// WithPage moves to page, clamped to [1, totalPages]. Filters are untouched.
func (s ViewState) WithPage(page, totalPages int) ViewState {
	s.Page = ClampPage(page, totalPages)
	return s
}

// WithSelected opens the details of a job; an empty id closes them
func (s ViewState) WithSelected(jobID string) ViewState {
	s.Selected = jobID
	return s
}

func sameStatus(a, b *models.JobStatus) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
