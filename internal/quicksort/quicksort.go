package quicksort

import "cmp"

// Interface is the capability set Sort needs from a container.
type Interface[T any] interface {
	Len() int
	At(i int) T
	SetAt(i int, v T)
}

// Sort sorts s in place so that compare(s.At(i), s.At(i+1)) <= 0 for every
// adjacent pair.
func Sort[T any](s Interface[T], compare func(a, b T) int) {
	n := s.Len()
	if n < 2 {
		return
	}
	quickSort(s, compare, 0, n-1)
}

func quickSort[T any](s Interface[T], compare func(a, b T) int, low, high int) {
	for low < high {
		p := partition(s, compare, low, high)
		if p-low < high-p {
			quickSort(s, compare, low, p-1)
			low = p + 1
		} else {
			quickSort(s, compare, p+1, high)
			high = p - 1
		}
	}
}

// partition moves every element that compares <= the pivot s[high] in front
// of it and returns the pivot's final index.
func partition[T any](s Interface[T], compare func(a, b T) int, low, high int) int {
	pivot := s.At(high)
	i := low - 1
	for j := low; j < high; j++ {
		if compare(s.At(j), pivot) <= 0 {
			i++
			swap(s, i, j)
		}
	}
	swap(s, i+1, high)
	return i + 1
}

func swap[T any](s Interface[T], i, j int) {
	if i == j {
		return
	}
	vi := s.At(i)
	s.SetAt(i, s.At(j))
	s.SetAt(j, vi)
}

// IsSorted reports whether s is ordered by compare.
func IsSorted[T any](s Interface[T], compare func(a, b T) int) bool {
	for i := 1; i < s.Len(); i++ {
		if compare(s.At(i-1), s.At(i)) > 0 {
			return false
		}
	}
	return true
}

// Slice adapts a plain slice to Interface.
type Slice[T any] []T

func (s Slice[T]) Len() int         { return len(s) }
func (s Slice[T]) At(i int) T       { return s[i] }
func (s Slice[T]) SetAt(i int, v T) { s[i] = v }

// SortSlice sorts v in place.
func SortSlice[T any](v []T, compare func(a, b T) int) {
	Sort[T](Slice[T](v), compare)
}

// Ascending orders values from smallest to largest.
func Ascending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Descending orders values from largest to smallest.
func Descending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}
