package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dynarray/internal/experiment"
)

var sampleFields = map[string]func(experiment.Sample) float64{
	"comparisons": func(s experiment.Sample) float64 { return float64(s.Comparisons) },
	"writes":      func(s experiment.Sample) float64 { return float64(s.Writes) },
	"regrowths":   func(s experiment.Sample) float64 { return float64(s.Regrowths) },
	"capacity":    func(s experiment.Sample) float64 { return float64(s.Capacity) },
	"elapsed":     func(s experiment.Sample) float64 { return float64(s.Elapsed.Microseconds()) },
}

func SampleFields() []string {
	return []string{"comparisons", "writes", "regrowths", "capacity", "elapsed"}
}

// PlotSamples charts one sample field against run order.
func PlotSamples(samples []experiment.Sample, field string) (string, error) {
	get, ok := sampleFields[field]
	if !ok {
		return "", fmt.Errorf("unknown field: %s (available: %v)", field, SampleFields())
	}
	if len(samples) == 0 {
		return "", fmt.Errorf("no samples to plot")
	}

	data := make([]float64, len(samples))
	for i, s := range samples {
		data[i] = get(s)
	}

	caption := fmt.Sprintf("%s for sizes %d..%d", field, samples[0].Size, samples[len(samples)-1].Size)
	if field == "elapsed" {
		caption += " (µs)"
	}
	return plot(data, 10, caption), nil
}

// PlotGrowth charts capacity after every append.
func PlotGrowth(history []float64) string {
	if len(history) == 0 {
		return Subtle.Render("no growth recorded")
	}
	return plot(history, 8, "capacity per append")
}

func plot(data []float64, height int, caption string) string {
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}
