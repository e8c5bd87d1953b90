// Package object provides property-path access and small helpers for keyed
// values: nested maps, slices and structs.
//
// # Paths
//
// Paths are dotted strings with optional bracket indices, or explicit segment
// lists:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "tags": []any{"admin", "ops"},
//	    },
//	}
//	object.Get(m, "user.name")          // → "Alice"
//	object.Get(m, "user.tags[1]")       // → "ops"
//	object.Has(m, "user.email")         // → false
//	object.Set(m, "user.address.city", "London")
//
// Struct fields are addressed by their Go field name.
//
// # Matching
//
// [IsMatch] performs a partial deep comparison and backs the shape-matcher
// form of the iteratee adapter.
package object
