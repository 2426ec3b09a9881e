package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/quicksort"
)

const (
	DefaultCapacity = dynarray.DefaultCapacity
	DefaultOrder    = OrderAsc
	DefaultPattern  = "random"
	DefaultSeed     = 42
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

var DefaultSizes = []int{100, 500, 1000, 2000, 4000}

type Config struct {
	InitialCapacity int         `yaml:"initial_capacity"`
	Order           string      `yaml:"order"`
	Values          []int       `yaml:"values"`
	Bench           BenchConfig `yaml:"bench"`
}

type BenchConfig struct {
	Pattern string `yaml:"pattern"`
	Sizes   []int  `yaml:"sizes"`
	Seed    int64  `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		InitialCapacity: DefaultCapacity,
		Order:           DefaultOrder,
		Values:          []int{10, 20, 30, 40, 50},
		Bench: BenchConfig{
			Pattern: DefaultPattern,
			Sizes:   append([]int(nil), DefaultSizes...),
			Seed:    DefaultSeed,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the array and the bench runner cannot honour.
func (c *Config) Validate() error {
	if c.InitialCapacity < 0 {
		return fmt.Errorf("config: initial_capacity %d: %w", c.InitialCapacity, dynarray.ErrInvalidCapacity)
	}
	if c.Order != OrderAsc && c.Order != OrderDesc {
		return fmt.Errorf("config: unknown order %q (want %s or %s)", c.Order, OrderAsc, OrderDesc)
	}
	for _, n := range c.Bench.Sizes {
		if n <= 0 {
			return fmt.Errorf("config: bench size must be positive, got %d", n)
		}
	}
	return nil
}

// Comparator returns the int ordering selected by Order.
func (c *Config) Comparator() func(a, b int) int {
	if c.Order == OrderDesc {
		return quicksort.Descending[int]
	}
	return quicksort.Ascending[int]
}
