package config

import "sort"

var Presets = map[string]*Config{
	"random": {
		InitialCapacity: DefaultCapacity, Order: OrderAsc,
		Bench: BenchConfig{Pattern: "random", Sizes: []int{100, 500, 1000, 2000, 4000}, Seed: DefaultSeed},
	},
	"sorted": {
		InitialCapacity: DefaultCapacity, Order: OrderAsc,
		Bench: BenchConfig{Pattern: "sorted", Sizes: []int{100, 250, 500, 1000, 2000}, Seed: DefaultSeed},
	},
	"reversed": {
		InitialCapacity: DefaultCapacity, Order: OrderAsc,
		Bench: BenchConfig{Pattern: "reversed", Sizes: []int{100, 250, 500, 1000, 2000}, Seed: DefaultSeed},
	},
	"equal": {
		InitialCapacity: DefaultCapacity, Order: OrderAsc,
		Bench: BenchConfig{Pattern: "equal", Sizes: []int{100, 250, 500, 1000, 2000}, Seed: DefaultSeed},
	},
	"sawtooth": {
		InitialCapacity: 1, Order: OrderAsc,
		Bench: BenchConfig{Pattern: "sawtooth", Sizes: []int{128, 256, 512, 1024, 2048, 4096}, Seed: DefaultSeed},
	},
	"zero-capacity": {
		InitialCapacity: 0, Order: OrderDesc,
		Bench: BenchConfig{Pattern: "random", Sizes: []int{16, 64, 256, 1024}, Seed: 7},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Values = append([]int(nil), p.Values...)
	cfg.Bench.Sizes = append([]int(nil), p.Bench.Sizes...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
