package dynarray

import (
	"fmt"
	"math"
	"strings"
	"unsafe"
)

// DefaultCapacity is the capacity used by NewDefault.
const DefaultCapacity = 10

// maxAlloc bounds the byte size of a backing store.
const maxAlloc = math.MaxInt

// Array is a growable array of T. The zero value is not usable; construct
// arrays with New or NewDefault.
type Array[T any] struct {
	data   []T
	length int
	limit  int
}

// New returns an empty array with room for capacity elements.
func New[T any](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	return &Array[T]{
		data:  make([]T, capacity),
		limit: maxSlots[T](),
	}, nil
}

// NewDefault returns an empty array with DefaultCapacity.
func NewDefault[T any]() *Array[T] {
	a, _ := New[T](DefaultCapacity)
	return a
}

// maxSlots is the largest capacity a backing store of T may have.
func maxSlots[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return maxAlloc
	}
	return maxAlloc / size
}

func (a *Array[T]) Len() int { return a.length }

func (a *Array[T]) Cap() int { return len(a.data) }

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkIndex("get", i); err != nil {
		var zero T
		return zero, err
	}
	return a.data[i], nil
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkIndex("set", i); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// Append adds v after the last element, growing the array when full.
func (a *Array[T]) Append(v T) error {
	if a.length == len(a.data) {
		if err := a.Grow(); err != nil {
			return err
		}
	}
	a.put(a.length, v)
	a.length++
	return nil
}

// Insert places v at index i and shifts the elements at [i, Len()) one slot
// right. Inserting at Len() appends.
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > a.length {
		return &IndexError{Op: "insert", Index: i, Len: a.length}
	}
	if a.length == len(a.data) {
		if err := a.Grow(); err != nil {
			return err
		}
	}
	copy(a.data[i+1:a.length+1], a.data[i:a.length])
	a.put(i, v)
	a.length++
	return nil
}

// Remove deletes and returns the element at index i, shifting the elements
// after it one slot left.
func (a *Array[T]) Remove(i int) (T, error) {
	var zero T
	if err := a.checkIndex("remove", i); err != nil {
		return zero, err
	}
	v := a.data[i]
	copy(a.data[i:a.length-1], a.data[i+1:a.length])
	a.data[a.length-1] = zero
	a.length--
	return v, nil
}

// Clear removes every element. The capacity is kept.
func (a *Array[T]) Clear() {
	clear(a.data[:a.length])
	a.length = 0
}

// Grow doubles the capacity, or sets it to 1 when the array has none.
func (a *Array[T]) Grow() error {
	next, err := nextCapacity(len(a.data), a.limit)
	if err != nil {
		return err
	}
	data := make([]T, next)
	copy(data, a.data[:a.length])
	a.data = data
	return nil
}

func nextCapacity(current, limit int) (int, error) {
	switch {
	case current >= limit:
		return 0, ErrCapacityOverflow
	case current == 0:
		return 1, nil
	case current > limit/2:
		return limit, nil
	}
	return current * 2, nil
}

// At returns the element at index i. It panics if i is outside [0, Len()).
func (a *Array[T]) At(i int) T {
	a.mustIndex("at", i)
	return a.data[i]
}

// SetAt overwrites the element at index i. It panics if i is outside [0, Len()).
func (a *Array[T]) SetAt(i int, v T) {
	a.mustIndex("set", i)
	a.data[i] = v
}

// Swap exchanges the elements at i and j. It panics on an invalid index.
func (a *Array[T]) Swap(i, j int) {
	a.mustIndex("swap", i)
	a.mustIndex("swap", j)
	a.data[i], a.data[j] = a.data[j], a.data[i]
}

// Values returns a copy of the live elements.
func (a *Array[T]) Values() []T {
	out := make([]T, a.length)
	copy(out, a.data[:a.length])
	return out
}

// String renders the elements as [e0, e1, ...].
func (a *Array[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < a.length; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, a.data[i])
	}
	b.WriteByte(']')
	return b.String()
}

// put writes without checking the logical length; callers keep i < Cap().
func (a *Array[T]) put(i int, v T) {
	a.data[i] = v
}

func (a *Array[T]) checkIndex(op string, i int) error {
	if i < 0 || i >= a.length {
		return &IndexError{Op: op, Index: i, Len: a.length}
	}
	return nil
}

func (a *Array[T]) mustIndex(op string, i int) {
	if err := a.checkIndex(op, i); err != nil {
		panic(err)
	}
}
