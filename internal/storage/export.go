package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/san-kum/dynarray/internal/experiment"
)

// RunExport is a run's metadata together with its samples.
type RunExport struct {
	RunMetadata
	Samples []experiment.Sample `json:"samples"`
}

// ExportJSON writes the metadata and samples of a stored run to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(RunExport{RunMetadata: *meta, Samples: samples})
}

// ExportCSV writes the samples of a stored run to w, header first.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("run %s: no samples to export", runID)
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(sampleRows(samples)); err != nil {
		return err
	}
	return cw.Error()
}
