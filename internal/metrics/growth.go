package metrics

// Growth tracks capacity changes of an array across a series of observations.
type Growth struct {
	name     string
	history  []float64
	changes  int
	capacity int
	samples  int
}

func NewGrowth() *Growth {
	return &Growth{name: "regrowths"}
}

func (g *Growth) Name() string { return g.name }

// Observe records the array's capacity after an operation.
func (g *Growth) Observe(length, capacity int) {
	if g.samples > 0 && capacity != g.capacity {
		g.changes++
	}
	g.capacity = capacity
	g.samples++
	g.history = append(g.history, float64(capacity))
}

// Value is the number of capacity changes observed.
func (g *Growth) Value() float64 { return float64(g.changes) }

// History returns the capacity recorded at every observation.
func (g *Growth) History() []float64 { return g.history }

func (g *Growth) Capacity() int { return g.capacity }

func (g *Growth) Reset() {
	g.history = nil
	g.changes = 0
	g.capacity = 0
	g.samples = 0
}
