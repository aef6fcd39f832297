// Package generator produces synthetic job records for the dashboard working set.
package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/samber/lo"

	"github.com/jupark12/job-dashboard/models"
)

var (
	jobTypes      = []string{"Export", "Processing", "Calculation", "Report", "Analysis"}
	products      = []string{"DataSync", "CloudManager", "AnalyticsEngine", "SecurityTool"}
	categories    = []string{"Batch", "Realtime", "Scheduled"}
	subCategories = []string{"High Priority", "Low Priority", "Standard"}
	environments  = []string{"Production", "Development", "Testing", "Staging"}
)

const (
	// ExportJobType is the job type that carries an export set name
	ExportJobType = "Export"

	registrationWindowDays = 7
	pickUpWindowDays       = 6
	endWindowDays          = 5
	lastUpdatedWindowDays  = 1
)

// Generator builds pseudo-random job records
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithRand sets the random source, mainly for reproducible output
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rnd = r
	}
}

// WithSeed seeds a deterministic random source
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithClock sets the clock used to anchor the time windows
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a new generator
func New(opts ...Option) *Generator {
	g := &Generator{
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a working set of exactly count records (none for count <= 0).
// Job ids are derived from the record position and are unique within the set.
func Generate(count int) []models.JobRecord {
	return New().Generate(count)
}

// Generate returns count records anchored to the generator clock
func (g *Generator) Generate(count int) []models.JobRecord {
	if count <= 0 {
		return []models.JobRecord{}
	}

	now := g.now()
	return lo.Times(count, func(i int) models.JobRecord {
		return g.record(i, now)
	})
}

func (g *Generator) record(i int, now time.Time) models.JobRecord {
	status := models.Statuses[g.rnd.IntN(len(models.Statuses))]

	registration := g.between(windowStart(now, registrationWindowDays), now)
	latest := registration

	var pickUp, end *time.Time
	if status != models.StatusPending {
		t := g.between(later(registration, windowStart(now, pickUpWindowDays)), now)
		pickUp = &t
		latest = t
	}
	if status.Terminal() {
		t := g.between(later(*pickUp, windowStart(now, endWindowDays)), now)
		end = &t
		latest = t
	}

	jobType := g.pick(jobTypes)
	var exportSet *string
	if jobType == ExportJobType {
		name := fmt.Sprintf("Export-%d", 200+g.rnd.IntN(50))
		exportSet = &name
	}

	return models.JobRecord{
		JobID:                   fmt.Sprintf("JOB-%d", 1000+i),
		UserID:                  fmt.Sprintf("user-%d", 100+g.rnd.IntN(10)),
		ClientID:                fmt.Sprintf("client-%d", 50+g.rnd.IntN(20)),
		Product:                 g.pick(products),
		Category:                g.pick(categories),
		SubCategory:             g.pick(subCategories),
		JobType:                 jobType,
		Environment:             g.pick(environments),
		JobStatus:               status,
		JobRegistrationTime:     registration,
		JobPickUpTime:           pickUp,
		JobEndTime:              end,
		TotalTimeInMinutes:      totalMinutes(pickUp, end, now),
		LastUpdatedTime:         g.between(later(latest, windowStart(now, lastUpdatedWindowDays)), now),
		Hostnames:               g.labels("host", 3, 100),
		Applications:            g.labels("app", 3, 50),
		Services:                g.labels("service", 4, 30),
		PodNames:                g.labels("pod", 5, 40),
		IsStartMessageLoaded:    g.rnd.Float64() > 0.2,
		IsProgressMessageLoaded: g.rnd.Float64() > 0.3,
		IsSummaryMessageLoaded:  g.rnd.Float64() > 0.4,
		ExportSetName:           exportSet,
	}
}

// totalMinutes derives the run time from the timestamps: pending jobs have
// not run, running jobs are measured up to now.
func totalMinutes(pickUp, end *time.Time, now time.Time) int {
	if pickUp == nil {
		return 0
	}
	stop := now
	if end != nil {
		stop = *end
	}
	if stop.Before(*pickUp) {
		return 0
	}
	return int(stop.Sub(*pickUp).Minutes())
}

func (g *Generator) pick(values []string) string {
	return values[g.rnd.IntN(len(values))]
}

// labels returns between 1 and maxLen labels of the form prefix-N with N < space
func (g *Generator) labels(prefix string, maxLen, space int) []string {
	return lo.Times(1+g.rnd.IntN(maxLen), func(int) string {
		return fmt.Sprintf("%s-%d", prefix, g.rnd.IntN(space))
	})
}

// between returns a uniformly random instant in [from, to]
func (g *Generator) between(from, to time.Time) time.Time {
	span := to.Sub(from)
	if span <= 0 {
		return from
	}
	return from.Add(time.Duration(g.rnd.Int64N(int64(span) + 1)))
}

// windowStart returns midnight of the first calendar day of a trailing window
// of the given number of days ending today.
func windowStart(now time.Time, days int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(days - 1))
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
