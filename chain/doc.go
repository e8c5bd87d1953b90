// Package chain implements lazy operation chains with shortcut fusion.
//
// A [Chain] records operations over a seed value and evaluates nothing until
// [Chain.Value] is called. At that point runs of consecutive fusable
// operations (map, filter, slice, tail, take, first, head, last, reverse,
// tap) are folded into a single plan that walks the seed once, forward or
// backward, applying every map and filter per element and stopping as soon
// as the requested count or index window is filled:
//
//	out, _ := chain.New(nil, arr.Range(20_000_000)).
//	    Map(func(n int) int { return n + 1 }).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Reverse().
//	    Slice(1, 4).
//	    Value()
//	// out == []any{19999998, 19999996, 19999994}, after visiting 7 elements
//
// # Operations
//
// Every chain step is an [Operation]: a name, a [Kind] and an eager
// implementation. The fusion engine decides what it may fold by Kind alone,
// so an operation registered under another name keeps fusing:
//
//	reg.Alias("where", "filter")
//
// Operations of Kind [Opaque] are applied eagerly and switch fusion off for
// the rest of the chain. [Boundary] operations (split, toArray, range)
// produce an unrelated sequence and start a new fused run on it.
//
// # Differences from eager evaluation
//
// The result of a fused run equals applying its operations one at a time,
// with two exceptions:
//
//   - Only the last tap of a fused run fires, once, with the run's result.
//   - Callbacks see fewer elements when the run stops early, and receive
//     the element's key in the source collection rather than its position
//     in an intermediate result. A callback that panics may therefore panic
//     at a different element, or not at all.
package chain
