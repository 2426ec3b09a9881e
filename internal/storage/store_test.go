package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/dynarray/internal/experiment"
)

func testResult() (experiment.Config, *experiment.Result) {
	cfg := experiment.Config{Pattern: "random", Sizes: []int{4, 8}, InitialCapacity: 2, Seed: 42}
	result := &experiment.Result{
		Pattern: "random",
		Samples: []experiment.Sample{
			{Size: 4, Comparisons: 5, Writes: 4, Regrowths: 1, Capacity: 4, Elapsed: 1500 * time.Nanosecond},
			{Size: 8, Comparisons: 17, Writes: 10, Regrowths: 2, Capacity: 8, Elapsed: 3 * time.Microsecond},
		},
		Growth: []float64{2, 2, 2, 4, 4, 8, 8, 8, 8},
	}
	return cfg, result
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, result := testResult()
	runID, err := st.Save(cfg, "asc", result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Pattern != "random" {
		t.Errorf("expected pattern 'random', got '%s'", meta.Pattern)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Metrics["total_comparisons"] != 22 {
		t.Errorf("expected 22 total comparisons, got %f", meta.Metrics["total_comparisons"])
	}
	if meta.Metrics["final_capacity"] != 8 {
		t.Errorf("expected final capacity 8, got %f", meta.Metrics["final_capacity"])
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if diff := cmp.Diff(result.Samples, samples); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}

	growth, err := st.LoadGrowth(runID)
	if err != nil {
		t.Fatalf("load growth failed: %v", err)
	}
	if diff := cmp.Diff(result.Growth, growth); diff != "" {
		t.Errorf("growth mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, result := testResult()
	for i := 0; i < 2; i++ {
		if _, err := st.Save(cfg, "asc", result); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	// stray files and directories without metadata are skipped
	if err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmpDir, "empty"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreLoadUnknown(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestWriteJSONReportsErrors(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "ok.json")
	if err := writeJSON(path, map[string]int{"size": 4}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"size": 4`) {
		t.Errorf("unexpected contents: %s", data)
	}

	if err := writeJSON(filepath.Join(dir, "nan.json"), math.NaN()); err == nil {
		t.Error("expected encode error for NaN")
	}
	if err := writeJSON(filepath.Join(dir, "missing", "meta.json"), 1); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestExportCSV(t *testing.T) {
	st := New(t.TempDir())
	cfg, result := testResult()
	runID, err := st.Save(cfg, "asc", result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := st.ExportCSV(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	want := "size,comparisons,writes,regrowths,capacity,elapsed_ns\n" +
		"4,5,4,1,4,1500\n" +
		"8,17,10,2,8,3000\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}

	if err := st.ExportCSV(&buf, "nope"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	cfg, result := testResult()
	runID, err := st.Save(cfg, "desc", result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var got RunExport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != runID || got.Order != "desc" {
		t.Errorf("unexpected metadata: id=%s order=%s", got.ID, got.Order)
	}
	if diff := cmp.Diff(result.Samples, got.Samples); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}
