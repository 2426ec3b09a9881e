package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/dynarray/internal/experiment"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID              string             `json:"id"`
	Pattern         string             `json:"pattern"`
	Timestamp       time.Time          `json:"timestamp"`
	Seed            int64              `json:"seed"`
	InitialCapacity int                `json:"initial_capacity"`
	Order           string             `json:"order"`
	Sizes           []int              `json:"sizes"`
	Metrics         map[string]float64 `json:"metrics"`
}

var sampleHeader = []string{"size", "comparisons", "writes", "regrowths", "capacity", "elapsed_ns"}

// Save writes metadata.json, samples.csv and growth.csv under a new run
// directory and returns the run id.
func (s *Store) Save(cfg experiment.Config, order string, result *experiment.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", cfg.Pattern, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Pattern:         cfg.Pattern,
		Timestamp:       now,
		Seed:            cfg.Seed,
		InitialCapacity: cfg.InitialCapacity,
		Order:           order,
		Sizes:           cfg.Sizes,
		Metrics:         summarize(result),
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	if err := writeCSV(filepath.Join(runDir, "samples.csv"), sampleRows(result.Samples)); err != nil {
		return "", err
	}

	rows := [][]string{{"capacity"}}
	for _, c := range result.Growth {
		rows = append(rows, []string{strconv.FormatFloat(c, 'f', 0, 64)})
	}
	if err := writeCSV(filepath.Join(runDir, "growth.csv"), rows); err != nil {
		return "", err
	}

	return runID, nil
}

func summarize(result *experiment.Result) map[string]float64 {
	m := map[string]float64{}
	if len(result.Samples) == 0 {
		return m
	}
	var comparisons, writes int
	for _, sm := range result.Samples {
		comparisons += sm.Comparisons
		writes += sm.Writes
	}
	last := result.Samples[len(result.Samples)-1]
	m["total_comparisons"] = float64(comparisons)
	m["total_writes"] = float64(writes)
	m["final_capacity"] = float64(last.Capacity)
	m["final_regrowths"] = float64(last.Regrowths)
	return m
}

func sampleRows(samples []experiment.Sample) [][]string {
	rows := [][]string{sampleHeader}
	for _, sm := range samples {
		rows = append(rows, []string{
			strconv.Itoa(sm.Size),
			strconv.Itoa(sm.Comparisons),
			strconv.Itoa(sm.Writes),
			strconv.Itoa(sm.Regrowths),
			strconv.Itoa(sm.Capacity),
			strconv.FormatInt(sm.Elapsed.Nanoseconds(), 10),
		})
	}
	return rows
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return f.Close()
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]experiment.Sample, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}

	samples := make([]experiment.Sample, 0, len(records))
	for _, record := range records {
		if len(record) < len(sampleHeader) {
			continue
		}
		vals := make([]int64, len(sampleHeader))
		ok := true
		for i := range vals {
			v, err := strconv.ParseInt(record[i], 10, 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		samples = append(samples, experiment.Sample{
			Size:        int(vals[0]),
			Comparisons: int(vals[1]),
			Writes:      int(vals[2]),
			Regrowths:   int(vals[3]),
			Capacity:    int(vals[4]),
			Elapsed:     time.Duration(vals[5]),
		})
	}

	return samples, nil
}

func (s *Store) LoadGrowth(runID string) ([]float64, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, "growth.csv"))
	if err != nil {
		return nil, err
	}

	growth := make([]float64, 0, len(records))
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		growth = append(growth, v)
	}
	return growth, nil
}

// readCSV returns every record after the header row.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return [][]string{}, nil
	}
	return records[1:], nil
}
