package server

import (
	"github.com/jupark12/job-dashboard/format"
	"github.com/jupark12/job-dashboard/models"
)

const (
	chartWidth      = 700
	chartHeight     = 260
	chartPlotHeight = 220
	chartBarWidth   = 56
)

// stacking order, bottom first
var chartStatuses = []models.JobStatus{
	models.StatusCompleted,
	models.StatusFailed,
	models.StatusRunning,
	models.StatusPending,
}

type chartSegment struct {
	Status models.JobStatus
	Count  int
	Color  string
	Y      int
	Height int
}

type chartBar struct {
	X        int
	LabelX   int
	Label    string
	Total    int
	Segments []chartSegment
}

type legendItem struct {
	Status models.JobStatus
	Color  string
}

// chart is the stacked bar rendering of the activity series
type chart struct {
	Width      int
	Height     int
	PlotHeight int
	BarWidth   int
	Max        int
	Bars       []chartBar
	Legend     []legendItem
}

func newChart(series []models.ChartPoint) chart {
	c := chart{
		Width:      chartWidth,
		Height:     chartHeight,
		PlotHeight: chartPlotHeight,
		BarWidth:   chartBarWidth,
		Max:        1,
	}

	for _, p := range series {
		c.Max = max(c.Max, p.Total())
	}
	for _, s := range chartStatuses {
		c.Legend = append(c.Legend, legendItem{Status: s, Color: format.StatusColor(s)})
	}
	if len(series) == 0 {
		return c
	}

	step := chartWidth / len(series)
	for i, p := range series {
		x := i*step + (step-chartBarWidth)/2
		bar := chartBar{
			X:      x,
			LabelX: x + chartBarWidth/2,
			Label:  format.FormatChartDate(p.Date),
			Total:  p.Total(),
		}

		base := chartPlotHeight
		for _, s := range chartStatuses {
			count := p.Count(s)
			if count == 0 {
				continue
			}
			h := count * chartPlotHeight / c.Max
			base -= h
			bar.Segments = append(bar.Segments, chartSegment{
				Status: s,
				Count:  count,
				Color:  format.StatusColor(s),
				Y:      base,
				Height: h,
			})
		}
		c.Bars = append(c.Bars, bar)
	}

	return c
}
