package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/dynarray/internal/dynarray"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.InitialCapacity != 10 {
		t.Errorf("expected capacity 10, got %d", cfg.InitialCapacity)
	}
	if cfg.Order != OrderAsc {
		t.Errorf("expected order asc, got %s", cfg.Order)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sorted")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Bench.Pattern != "sorted" {
		t.Errorf("expected pattern sorted, got %s", cfg.Bench.Pattern)
	}

	cfg.Bench.Sizes[0] = -1
	if Presets["sorted"].Bench.Sizes[0] == -1 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero capacity", func(c *Config) { c.InitialCapacity = 0 }, true},
		{"negative capacity", func(c *Config) { c.InitialCapacity = -5 }, false},
		{"desc", func(c *Config) { c.Order = OrderDesc }, true},
		{"bad order", func(c *Config) { c.Order = "sideways" }, false},
		{"bad size", func(c *Config) { c.Bench.Sizes = []int{10, 0} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestValidateNegativeCapacityWrapsSentinel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialCapacity = -1
	if err := cfg.Validate(); !errors.Is(err, dynarray.ErrInvalidCapacity) {
		t.Errorf("expected ErrInvalidCapacity, got %v", err)
	}
}

func TestComparator(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Comparator()(1, 2) >= 0 {
		t.Error("asc comparator should order 1 before 2")
	}
	cfg.Order = OrderDesc
	if cfg.Comparator()(1, 2) <= 0 {
		t.Error("desc comparator should order 2 before 1")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dynarray.yaml")
	want := DefaultConfig()
	want.InitialCapacity = 3
	want.Order = OrderDesc
	want.Values = []int{3, 1, 2}
	want.Bench.Sizes = []int{8, 16}

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("order: desc\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Order != OrderDesc {
		t.Errorf("expected order desc, got %s", cfg.Order)
	}
	if cfg.InitialCapacity != DefaultCapacity {
		t.Errorf("expected default capacity, got %d", cfg.InitialCapacity)
	}
	if cfg.Bench.Pattern != DefaultPattern {
		t.Errorf("expected default pattern, got %s", cfg.Bench.Pattern)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("initial_capacity: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, dynarray.ErrInvalidCapacity) {
		t.Errorf("expected ErrInvalidCapacity, got %v", err)
	}
}
