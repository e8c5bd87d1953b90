// Package funcjs is a functional utility library for Go with lazy,
// fused operation chains.
//
// The helpers themselves live in sub-packages and work on any container
// shape (slices, arrays, strings, maps, sets and structs):
//
//	collections  traversal, map/filter/reduce, grouping, sorting
//	arr          slicing, ranges, uniq, flatten, chunk, zip
//	object       property paths, pick/omit, merge, matchers
//	str          conversion, padding, case conversion
//	fn           tap, once, after, compose
//	chain        the lazy chain and its fusion engine
//
// This package ties them together: every helper is registered by name in
// one [Registry], so it can be called directly with [Call] or recorded in a
// chain started with [Wrap]:
//
//	out, err := funcjs.Wrap(libs).
//	    Filter(map[string]any{"tags": map[string]any{"utils": true}}).
//	    First().
//	    Call("get", "name").
//	    Value()
//	// out == "func.js"
//
// Consecutive map, filter, slice, tail, take, first, head, last, reverse
// and tap steps run as a single pass that stops as soon as the result is
// complete. See package chain for the details.
package funcjs
