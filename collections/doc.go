// Package collections provides traversal and transformation helpers that work
// on any container shape: slices, arrays, strings, maps, sets
// (map[K]struct{}) and structs.
//
// # Traversal
//
// [Each] and [EachRight] are the single iteration primitive every other
// helper in this module builds on. The visitor returns false to stop early:
//
//	collections.Each(users, func(v, i any) bool {
//	    if v.(User).Banned {
//	        return false // stop here
//	    }
//	    fmt.Println(v)
//	    return true
//	})
//
// [All] and [Backward] expose the same traversal as range-over-func
// iterators.
//
// # Callbacks
//
// Mapper and predicate arguments are typed as any and normalized through
// the iteratee adapter, so functions, property paths and shape maps are all
// accepted:
//
//	collections.Map(libs, "name")                         // → ["func.js" "juth2"]
//	collections.Filter(libs, map[string]any{"js": true})  // shape match
//	collections.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//
// # Results
//
// Every helper returns fresh values ([]any for sequences) and never modifies
// its input. For a lazy, fused pipeline over these operations see package
// chain.
package collections
