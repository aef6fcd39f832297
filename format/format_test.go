package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jupark12/job-dashboard/models"
)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC)

	assert.Equal(t, "Mar 05, 2024, 02:07 PM", FormatDateTime(&ts))
	assert.Equal(t, "Mar 05, 2024, 02:07 PM", FormatTime(ts))
	assert.Equal(t, Placeholder, FormatDateTime(nil))
	assert.Equal(t, Placeholder, FormatTime(time.Time{}))
}

func TestFormatDuration(t *testing.T) {
	start := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	short := start.Add(42 * time.Minute)
	long := start.Add(2*time.Hour + 5*time.Minute)

	assert.Equal(t, "In progress", FormatDuration(start, nil))
	assert.Equal(t, "42 min", FormatDuration(start, &short))
	assert.Equal(t, "2h 5m", FormatDuration(start, &long))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "17 min", FormatMinutes(17))
	assert.Equal(t, Placeholder, FormatMinutes(0))
}

func TestFormatChartDate(t *testing.T) {
	assert.Equal(t, "Mar 9", FormatChartDate("2024-03-09"))
	assert.Equal(t, "garbage", FormatChartDate("garbage"))
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "bg-job-completed", StatusClass(models.StatusCompleted))
	assert.Equal(t, "bg-job-failed", StatusClass(models.StatusFailed))
	assert.Equal(t, "bg-job-running", StatusClass(models.StatusRunning))
	assert.Equal(t, "bg-job-pending", StatusClass(models.StatusPending))
	assert.Equal(t, "bg-gray-400", StatusClass("Paused"))
}

func TestMessageStateAndPlaceholder(t *testing.T) {
	assert.Equal(t, "Loaded", MessageState(true))
	assert.Equal(t, "Not Loaded", MessageState(false))

	name := "Export-201"
	empty := ""
	assert.Equal(t, "Export-201", OrPlaceholder(&name))
	assert.Equal(t, Placeholder, OrPlaceholder(&empty))
	assert.Equal(t, Placeholder, OrPlaceholder(nil))
}
