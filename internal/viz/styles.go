package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	// Live element cell
	Cell = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 1)

	// Element under the cursor
	SelectedCell = Cell.
			BorderForeground(lipgloss.Color("#ff00ff")).
			Foreground(lipgloss.Color("#ff00ff")).
			Bold(true)

	// Allocated but unused slot
	SpareCell = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Foreground(lipgloss.Color("#444455")).
			Padding(0, 1)

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	StatusOK = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusError = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
)

// FillBar renders how much of the capacity is in use.
func FillBar(used, capacity, width int) string {
	if capacity <= 0 || width <= 0 {
		return Subtle.Render(strings.Repeat("░", max(width, 0)))
	}
	percent := float64(used) / float64(capacity)
	filled := int(percent * float64(width))
	filled = min(max(filled, 0), width)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	// full arrays are one append away from a regrowth
	if percent >= 1 {
		return SparkHigh.Render(bar)
	} else if percent > 0.5 {
		return SparkMid.Render(bar)
	}
	return SparkLow.Render(bar)
}

func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return Subtle.Render(left + " ◆ " + right)
}
