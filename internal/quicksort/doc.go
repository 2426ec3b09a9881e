// Package quicksort sorts indexed containers in place with a Lomuto
// partition quicksort.
//
// Any type with Len, At and SetAt satisfies [Interface]; ordering comes from
// a three-way comparison function returning a negative number, zero or a
// positive number.
//
// The sort is not stable. The pivot is always the last element of the
// current range, so already sorted input costs O(n^2) comparisons. Recursion
// always descends into the smaller partition and loops over the larger one,
// which bounds stack depth by O(log n) for every input.
package quicksort
