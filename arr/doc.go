// Package arr provides helpers for ordered sequences: slicing, range
// generation, deduplication, flattening, chunking and zipping.
//
// Every helper accepts any sequence shape understood by package collections
// (slices of any element type, arrays, strings) and returns a fresh []any:
//
//	arr.Slice([]int{1, 2, 3, 4}, -2)     // → [3 4]
//	arr.Uniq([]string{"a", "b", "a"})    // → [a b]
//	arr.Range(0, 10, 3)                  // → [0 3 6 9]
//	chunks, _ := arr.Chunk("abcde", 2)   // → [[a b] [c d] [e]]
//
// Negative indexes count back from the end, the way JavaScript's
// Array.prototype.slice does.
package arr
