package experiment

import (
	"fmt"
	"math/rand"
	"sort"
)

// Generator produces n input values for a run.
type Generator func(n int, r *rand.Rand) []int

type Registry struct {
	patterns map[string]Generator
}

func NewRegistry() *Registry {
	r := &Registry{
		patterns: make(map[string]Generator),
	}

	r.patterns["random"] = func(n int, rnd *rand.Rand) []int {
		v := make([]int, n)
		for i := range v {
			v[i] = rnd.Intn(n * 4)
		}
		return v
	}
	r.patterns["sorted"] = func(n int, _ *rand.Rand) []int {
		v := make([]int, n)
		for i := range v {
			v[i] = i
		}
		return v
	}
	r.patterns["reversed"] = func(n int, _ *rand.Rand) []int {
		v := make([]int, n)
		for i := range v {
			v[i] = n - i
		}
		return v
	}
	r.patterns["equal"] = func(n int, _ *rand.Rand) []int {
		return make([]int, n)
	}
	r.patterns["sawtooth"] = func(n int, _ *rand.Rand) []int {
		v := make([]int, n)
		for i := range v {
			v[i] = i % 16
		}
		return v
	}

	return r
}

func (r *Registry) GetPattern(name string) (Generator, error) {
	fn, ok := r.patterns[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern: %s", name)
	}
	return fn, nil
}

func (r *Registry) ListPatterns() []string {
	names := make([]string, 0, len(r.patterns))
	for name := range r.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
