package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/metrics"
	"github.com/san-kum/dynarray/internal/quicksort"
)

// ErrNotSorted is returned if a run finishes with an unordered array.
var ErrNotSorted = errors.New("experiment: array not sorted after run")

// ErrInvalidSize is returned by Setup for a configured size below 1.
var ErrInvalidSize = errors.New("experiment: size must be positive")

type Config struct {
	Pattern         string
	Sizes           []int
	InitialCapacity int
	Seed            int64
}

// Sample is the outcome of filling and sorting one array.
type Sample struct {
	Size        int
	Comparisons int
	Writes      int
	Regrowths   int
	Capacity    int
	Elapsed     time.Duration
}

type Result struct {
	Pattern string
	Samples []Sample
	// Growth holds the capacity after every append of the largest run.
	Growth []float64
}

type Experiment struct {
	cfg        Config
	generate   Generator
	compare    func(a, b int) int
	randSource *rand.Rand
}

func New(cfg Config) *Experiment {
	return &Experiment{
		cfg:        cfg,
		randSource: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (e *Experiment) Setup(generate Generator, compare func(a, b int) int) error {
	if generate == nil || compare == nil {
		return fmt.Errorf("experiment: generator and comparator are required")
	}
	if e.cfg.InitialCapacity < 0 {
		return dynarray.ErrInvalidCapacity
	}
	for _, n := range e.cfg.Sizes {
		if n <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidSize, n)
		}
	}
	e.generate = generate
	e.compare = compare
	return nil
}

// Run fills and sorts one array per configured size. ctx is checked between
// sizes.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.generate == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	result := &Result{Pattern: e.cfg.Pattern}
	largest := -1

	for _, size := range e.cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("experiment: %w", err)
		}

		sample, growth, err := e.runOne(size)
		if err != nil {
			return nil, fmt.Errorf("experiment: size %d: %w", size, err)
		}
		result.Samples = append(result.Samples, sample)
		if size > largest {
			largest = size
			result.Growth = growth.History()
		}
	}

	return result, nil
}

func (e *Experiment) runOne(size int) (Sample, *metrics.Growth, error) {
	a, err := dynarray.New[int](e.cfg.InitialCapacity)
	if err != nil {
		return Sample{}, nil, err
	}

	growth := metrics.NewGrowth()
	growth.Observe(a.Len(), a.Cap())
	for _, v := range e.generate(size, e.randSource) {
		if err := a.Append(v); err != nil {
			return Sample{}, nil, err
		}
		growth.Observe(a.Len(), a.Cap())
	}

	comparisons := metrics.NewComparisons[int]()
	writes := metrics.NewWrites[int](a)

	start := time.Now()
	quicksort.Sort[int](writes, comparisons.Wrap(e.compare))
	elapsed := time.Since(start)

	if !quicksort.IsSorted[int](a, e.compare) {
		return Sample{}, nil, ErrNotSorted
	}

	return Sample{
		Size:        size,
		Comparisons: comparisons.Count(),
		Writes:      writes.Count(),
		Regrowths:   int(growth.Value()),
		Capacity:    a.Cap(),
		Elapsed:     elapsed,
	}, growth, nil
}
