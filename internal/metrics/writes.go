package metrics

import "github.com/san-kum/dynarray/internal/quicksort"

// Writes counts element writes made by a sort through the wrapped container.
type Writes[T any] struct {
	quicksort.Interface[T]
	name  string
	count int
}

func NewWrites[T any](s quicksort.Interface[T]) *Writes[T] {
	return &Writes[T]{Interface: s, name: "writes"}
}

func (w *Writes[T]) SetAt(i int, v T) {
	w.count++
	w.Interface.SetAt(i, v)
}

func (w *Writes[T]) Name() string { return w.name }

func (w *Writes[T]) Count() int { return w.count }

func (w *Writes[T]) Value() float64 { return float64(w.count) }

func (w *Writes[T]) Reset() { w.count = 0 }
