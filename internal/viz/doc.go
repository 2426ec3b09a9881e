// Package viz renders arrays and benchmark runs in the terminal.
//
//   - [RenderArray]: live elements and spare capacity as lipgloss cells
//   - [PlotSamples] / [PlotGrowth]: asciigraph charts of stored runs
//   - [RunInteractive]: Bubble Tea playground driving a single array
//
// # Key Bindings
//
//	a     - append a random value
//	i     - insert a random value at the cursor
//	x     - remove the element under the cursor
//	e     - edit the element under the cursor
//	s / S - sort ascending / descending
//	g     - grow capacity
//	c     - clear
//	h / l - move the cursor
//	q     - quit
package viz
