// Package dynarray provides a growable array with manual capacity
// management.
//
// An [Array] owns a backing store of Cap() slots of which the first Len()
// are live. Appending to a full array doubles its capacity; nothing ever
// shrinks it.
//
//   - [New] / [NewDefault]: construction with an explicit or default capacity
//   - [Array.Get] / [Array.Set]: bounds-checked indexed access
//   - [Array.Append] / [Array.Insert] / [Array.Remove]: shifting mutations
//   - [Array.Clear]: drops every element, keeps the storage
//
// # Example
//
//	a := dynarray.NewDefault[int]()
//	_ = a.Append(10)
//	_ = a.Insert(0, 5)
//	fmt.Println(a) // [5, 10]
//
// # Thread Safety
//
// Array instances are NOT thread-safe. An array has a single owner.
package dynarray
