package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jupark12/job-dashboard/format"
	"github.com/jupark12/job-dashboard/models"
	"github.com/jupark12/job-dashboard/stats"
	"github.com/jupark12/job-dashboard/view"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"dateTime":     format.FormatDateTime,
	"time":         format.FormatTime,
	"minutes":      format.FormatMinutes,
	"statusClass":  format.StatusClass,
	"messageState": format.MessageState,
	"orDash":       format.OrPlaceholder,
}

type tabLink struct {
	Label  string
	URL    string
	Active bool
}

type statusOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Title      string
	Path       string
	Loading    bool
	Counts     models.JobStatusCounts
	Chart      chart
	Result     view.Result
	Tabs       []tabLink
	Statuses   []statusOption
	SwitchURL  string
	SwitchText string
	ReturnTo   string
}

// SelectURL links to the current page with the details of jobID open
func (p pageData) SelectURL(jobID string) string {
	return p.Result.State.WithSelected(jobID).URL(p.Path)
}

// CloseURL links to the current page with the details closed
func (p pageData) CloseURL() string {
	return p.Result.State.WithSelected("").URL(p.Path)
}

// PrevURL links to the previous page
func (p pageData) PrevURL() string {
	return p.Result.State.WithPage(p.Result.Page-1, p.Result.TotalPages).URL(p.Path)
}

// NextURL links to the next page
func (p pageData) NextURL() string {
	return p.Result.State.WithPage(p.Result.Page+1, p.Result.TotalPages).URL(p.Path)
}

func (s *Server) handleDashboard(c *gin.Context) {
	s.renderPage(c, "dashboard.html", "/", view.LayoutTable, "Job Status Dashboard")
}

func (s *Server) handleCards(c *gin.Context) {
	s.renderPage(c, "cards.html", "/cards", view.LayoutCards, "Jobs Dashboard")
}

func (s *Server) renderPage(c *gin.Context, name, path string, layout view.Layout, title string) {
	state, err := view.ParseViewState(c.Request.URL.Query(), layout)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	state.Layout = layout
	if layout == view.LayoutCards {
		// the card view has no tabs
		state.Tab = view.TabAll
	}

	snap := s.queue.Snapshot()
	result := view.Apply(snap.Jobs, state)
	summary := stats.Summarize(snap.Jobs, s.now())

	data := pageData{
		Title:    title,
		Path:     path,
		Loading:  s.queue.IsLoading(),
		Counts:   summary.Counts,
		Chart:    newChart(summary.Series),
		Result:   result,
		Tabs:     tabLinks(result.State, path),
		Statuses: statusOptions(result.State),
		ReturnTo: result.State.URL(path),
	}
	if layout == view.LayoutCards {
		data.SwitchURL, data.SwitchText = "/", "Table View"
	} else {
		data.SwitchURL, data.SwitchText = "/cards", "Card View"
	}

	c.HTML(http.StatusOK, name, data)
}

func tabLinks(state view.ViewState, path string) []tabLink {
	links := make([]tabLink, 0, len(view.Tabs))
	for _, tab := range view.Tabs {
		links = append(links, tabLink{
			Label:  tab.Label(),
			URL:    state.WithTab(tab).WithSelected("").URL(path),
			Active: tab == state.Tab,
		})
	}
	return links
}

func statusOptions(state view.ViewState) []statusOption {
	current := state.StatusValue()
	options := []statusOption{{Value: "", Label: "All Statuses", Selected: current == ""}}
	for _, s := range models.Statuses {
		options = append(options, statusOption{
			Value:    string(s),
			Label:    string(s),
			Selected: current == string(s),
		})
	}
	return options
}
