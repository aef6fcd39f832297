package worker

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/jupark12/job-dashboard/generator"
	"github.com/jupark12/job-dashboard/models"
)

// ErrSimulatedFailure is returned by MockSource when it is set up to fail
var ErrSimulatedFailure = errors.New("simulated load failure")

// Source produces a complete working set
type Source interface {
	Fetch(ctx context.Context) ([]models.JobRecord, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context) ([]models.JobRecord, error)

// Fetch calls f
func (f SourceFunc) Fetch(ctx context.Context) ([]models.JobRecord, error) {
	return f(ctx)
}

// MockSource stands in for a jobs API by generating records locally. A
// FailureRate in (0, 1] makes that share of fetches fail.
type MockSource struct {
	mu          sync.Mutex
	gen         *generator.Generator
	rnd         *rand.Rand
	count       int
	failureRate float64
}

// NewMockSource creates a source returning count generated jobs per fetch
func NewMockSource(gen *generator.Generator, count int, failureRate float64, seed uint64) *MockSource {
	return &MockSource{
		gen:         gen,
		rnd:         rand.New(rand.NewPCG(seed, ^seed)),
		count:       count,
		failureRate: failureRate,
	}
}

// Fetch generates a fresh working set
func (s *MockSource) Fetch(ctx context.Context) ([]models.JobRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failureRate > 0 && s.rnd.Float64() < s.failureRate {
		return nil, ErrSimulatedFailure
	}
	return s.gen.Generate(s.count), nil
}
