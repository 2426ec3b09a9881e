package metrics

// Metric is a named counter gathered while a container is exercised.
type Metric interface {
	Name() string
	Value() float64
	Reset()
}
