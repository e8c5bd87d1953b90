// Package iteratee converts the many ways a caller can describe a callback
// into one uniform function shape.
//
// Collection operations accept a mapper or predicate as `any`: a function,
// a property path, or a map describing the shape an element must match.
// [New] normalizes all of these into a [Func]:
//
//	iteratee.New("name")                          // reads element["name"]
//	iteratee.New([]string{"tags", "utils"})       // reads element.tags.utils
//	iteratee.New(map[string]any{"js": true})      // partial deep match
//	iteratee.New(func(n int) bool { return n > 2 }) // typed callback via reflection
//	iteratee.New(nil)                             // identity
package iteratee
