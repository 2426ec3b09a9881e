package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dynarray/internal/dynarray"
)

// maxSpareCells caps how many unused slots are drawn.
const maxSpareCells = 8

// RenderArray draws the live elements of a as cells followed by its spare
// capacity. cursor highlights one element; pass -1 for none.
func RenderArray[T any](a *dynarray.Array[T], cursor int) string {
	cells := make([]string, 0, a.Len()+maxSpareCells+1)
	for i, v := range a.Values() {
		style := Cell
		if i == cursor {
			style = SelectedCell
		}
		cells = append(cells, style.Render(fmt.Sprint(v)))
	}

	spare := a.Cap() - a.Len()
	for i := 0; i < min(spare, maxSpareCells); i++ {
		cells = append(cells, SpareCell.Render("·"))
	}
	if spare > maxSpareCells {
		cells = append(cells, SpareCell.Render(fmt.Sprintf("+%d", spare-maxSpareCells)))
	}

	var b strings.Builder
	if len(cells) == 0 {
		b.WriteString(Subtle.Render("(no storage)"))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString("\n")
	b.WriteString(Footer(a.Len(), a.Cap()))
	return b.String()
}

// Footer renders the len/cap line shown under an array.
func Footer(length, capacity int) string {
	return fmt.Sprintf("%s %s  %s %s  %s",
		MetricLabel.Render("len"), MetricValue.Render(fmt.Sprint(length)),
		MetricLabel.Render("cap"), MetricValue.Render(fmt.Sprint(capacity)),
		FillBar(length, capacity, 20))
}
