package metrics

// Comparisons counts calls made through a wrapped comparator.
type Comparisons[T any] struct {
	name  string
	count int
}

func NewComparisons[T any]() *Comparisons[T] {
	return &Comparisons[T]{name: "comparisons"}
}

func (c *Comparisons[T]) Name() string { return c.name }

// Wrap returns compare with every call counted.
func (c *Comparisons[T]) Wrap(compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		c.count++
		return compare(a, b)
	}
}

func (c *Comparisons[T]) Count() int { return c.count }

func (c *Comparisons[T]) Value() float64 { return float64(c.count) }

func (c *Comparisons[T]) Reset() { c.count = 0 }
