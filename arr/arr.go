package arr

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"

	"github.com/ghetzel/go-stockutil/sliceutil"
	"github.com/hasbyte1/go-funcjs/collections"
	"github.com/hasbyte1/go-funcjs/iteratee"
	"golang.org/x/crypto/blake2b"
)

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, or nil when the sequence is empty.
func First(items any) any {
	var out any
	collections.Each(items, func(v, _ any) bool {
		out = v
		return false
	})
	return out
}

// Head is an alias of [First].
func Head(items any) any { return First(items) }

// Last returns the last element, or nil when the sequence is empty.
func Last(items any) any {
	var out any
	collections.EachRight(items, func(v, _ any) bool {
		out = v
		return false
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns the elements from begin up to, but not including, end.
// Negative indexes count back from the end of the sequence; an omitted end
// means the length.
//
//	Slice([]int{1, 2, 3, 4}, 1)      // → [2 3 4]
//	Slice([]int{1, 2, 3, 4}, -3, -1) // → [2 3]
func Slice(items any, begin int, end ...int) []any {
	all := collections.ToArray(items)
	n := len(all)
	stop := n
	if len(end) > 0 {
		stop = end[0]
	}
	from, to := clamp(begin, n), clamp(stop, n)
	if from >= to {
		return []any{}
	}
	out := make([]any, to-from)
	copy(out, all[from:to])
	return out
}

func clamp(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

// Tail returns every element except the first.
func Tail(items any) []any { return Slice(items, 1) }

// Initial returns every element except the last.
func Initial(items any) []any { return Slice(items, 0, -1) }

// Take returns the first n elements. A negative n counts back from the end,
// so Take(items, -1) drops the last element.
func Take(items any, n int) []any { return Slice(items, 0, n) }

// TakeRight returns the last n elements. Zero or a negative n returns every
// element.
func TakeRight(items any, n int) []any {
	size := collections.Size(items)
	if n <= 0 || n > size {
		n = size
	}
	return Slice(items, size-n)
}

// Reverse returns the elements in reverse order.
func Reverse(items any) []any {
	out := make([]any, 0, collections.Size(items))
	collections.EachRight(items, func(v, _ any) bool {
		out = append(out, v)
		return true
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Generation
// ─────────────────────────────────────────────────────────────────────────────

// Range generates integers. With one argument it counts from 0 up to the
// argument; with two from the first up to the second; a third argument is
// the step. Descending ranges count down by the step. The end is never
// included.
//
//	Range(4)        // → [0 1 2 3]
//	Range(1, 5)     // → [1 2 3 4]
//	Range(0, 10, 3) // → [0 3 6 9]
//	Range(3, 0)     // → [3 2 1]
func Range(args ...int) []int {
	start, end, step := 0, 0, 1
	switch len(args) {
	case 0:
		return []int{}
	case 1:
		end = args[0]
	case 2:
		start, end = args[0], args[1]
	default:
		start, end = args[0], args[1]
		if args[2] != 0 {
			step = args[2]
		}
	}
	if step < 0 {
		step = -step
	}

	out := make([]int, 0, rangeLen(start, end, step))
	switch {
	case end > start:
		for i := start; i < end; i += step {
			out = append(out, i)
		}
	case end < start:
		for i := start; i > end; i -= step {
			out = append(out, i)
		}
	}
	return out
}

// RangeLen returns the length of Range(start, end, step) without
// allocating it.
func RangeLen(start, end, step int) int {
	if step == 0 {
		step = 1
	}
	if step < 0 {
		step = -step
	}
	return rangeLen(start, end, step)
}

func rangeLen(start, end, step int) int {
	d := end - start
	if d < 0 {
		d = -d
	}
	return (d + step - 1) / step
}

// ─────────────────────────────────────────────────────────────────────────────
// Set-like operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns the elements with duplicates removed, keeping the first
// occurrence. Uncomparable elements (slices, maps) are deduplicated by
// content.
//
//	Uniq([]any{1, 2, 1, []int{3}, []int{3}}) // → [1 2 [3]]
func Uniq(items any) []any {
	return UniqBy(items, nil)
}

// UniqBy is [Uniq] using the result of itee as the identity of each element.
func UniqBy(items any, itee any) []any {
	fn := iteratee.New(itee)
	seen := make(map[any]struct{})
	out := make([]any, 0)
	collections.Each(items, func(v, k any) bool {
		key := identity(fn(v, k))
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
		out = append(out, v)
		return true
	})
	return out
}

// contentKey marks identities derived from a hash of an element's content so
// they never collide with plain string elements.
type contentKey string

// identity returns v itself when it can be used as a map key, and a digest
// of its content otherwise. Structs and arrays holding slices or maps behind
// interface fields count as unusable.
func identity(v any) any {
	if v == nil || reflect.ValueOf(v).Comparable() {
		return v
	}
	sum := blake2b.Sum256([]byte(fmt.Sprintf("%T:%#v", v, v)))
	return contentKey(hex.EncodeToString(sum[:]))
}

// Compact returns the truthy elements: false, 0, "", NaN and nil are
// removed.
func Compact(items any) []any {
	return collections.Filter(items, iteratee.Truthy)
}

// Without returns the elements that are not deeply equal to any of values.
func Without(items any, values ...any) []any {
	return collections.Reject(items, func(v any) bool {
		return collections.Includes(values, v)
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Structure
// ─────────────────────────────────────────────────────────────────────────────

// Flat flattens nested sequences up to depth levels. A depth below 1
// returns a shallow copy.
//
//	Flat([]any{1, []any{2, []int{3}}}, 1) // → [1 2 [3]]
func Flat(items any, depth int) []any {
	out := make([]any, 0, collections.Size(items))
	collections.Each(items, func(v, _ any) bool {
		if _, isString := v.(string); depth > 0 && !isString && collections.IsSequence(v) {
			out = append(out, Flat(v, depth-1)...)
		} else {
			out = append(out, v)
		}
		return true
	})
	return out
}

// FlatDeep flattens nested sequences completely.
func FlatDeep(items any) []any {
	return Flat(items, int(^uint(0)>>1))
}

// Chunk splits the elements into groups of size. The last group holds the
// remainder.
//
//	Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
func Chunk(items any, size int) ([][]any, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
	}
	all := collections.ToArray(items)
	if len(all) == 0 {
		return [][]any{}, nil
	}
	return sliceutil.Chunks(all, size), nil
}

// Concat joins sequences into one slice. Arguments that are not sequences
// are appended as single elements.
//
//	Concat([]int{1}, 2, []string{"a"}) // → [1 2 a]
func Concat(values ...any) []any {
	out := make([]any, 0)
	for _, v := range values {
		if _, isString := v.(string); !isString && collections.IsSequence(v) {
			out = append(out, collections.ToArray(v)...)
		} else {
			out = append(out, v)
		}
	}
	return out
}

// Join converts every element to a string and joins them with sep, which
// defaults to ",".
func Join(items any, sep ...string) string {
	separator := ","
	if len(sep) > 0 {
		separator = sep[0]
	}
	return strings.Join(sliceutil.Stringify(collections.ToArray(items)), separator)
}

// Zip groups the elements of each sequence by index. Shorter sequences leave
// nil in their column.
//
//	Zip([]string{"a", "b"}, []int{1, 2}) // → [[a 1] [b 2]]
func Zip(sequences ...any) [][]any {
	out := make([][]any, 0)
	for col, seq := range sequences {
		collections.Each(seq, func(v, k any) bool {
			row, ok := k.(int)
			if !ok {
				return false
			}
			for len(out) <= row {
				out = append(out, make([]any, len(sequences)))
			}
			out[row][col] = v
			return true
		})
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// FindIndex returns the index of the first element for which pred is
// truthy, starting at from (default 0), or -1.
func FindIndex(items any, pred any, from ...int) int {
	fn := iteratee.Predicate(pred)
	start := 0
	if len(from) > 0 {
		start = from[0]
	}
	found := -1
	collections.Each(items, func(v, k any) bool {
		i, _ := k.(int)
		if i < start || !fn(v, k) {
			return true
		}
		found = i
		return false
	})
	return found
}

// FindLastIndex returns the index of the last element for which pred is
// truthy, searching backwards from from (default the last index), or -1.
func FindLastIndex(items any, pred any, from ...int) int {
	fn := iteratee.Predicate(pred)
	start := collections.Size(items) - 1
	if len(from) > 0 {
		start = from[0]
	}
	found := -1
	collections.EachRight(items, func(v, k any) bool {
		i, _ := k.(int)
		if i > start || !fn(v, k) {
			return true
		}
		found = i
		return false
	})
	return found
}
