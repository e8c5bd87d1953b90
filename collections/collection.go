package collections

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"strings"

	"github.com/hasbyte1/go-funcjs/iteratee"
)

// Operations in this file accept any container shape understood by [Each]
// and always return fresh values; the input is never modified.
//
// Callback arguments are described as `any` and normalized through
// [iteratee.New], so a function, a property path or a shape map may be
// passed wherever a mapper or predicate is expected:
//
//	collections.Map(users, "name")
//	collections.Filter(users, map[string]any{"active": true})
//	collections.Filter([]int{1, 2, 3}, func(n int) bool { return n > 1 })

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns the result of calling itee(value, key) for every element.
func Map(collection any, itee any) []any {
	fn := iteratee.New(itee)
	out := make([]any, 0, Size(collection))
	Each(collection, func(v, k any) bool {
		out = append(out, fn(v, k))
		return true
	})
	return out
}

// FlatMap is [Map] followed by flattening one level: results that are
// slices or arrays contribute their elements.
//
//	FlatMap([]any{[]int{1, 2}, 3}, nil) // → [1 2 3]
func FlatMap(collection any, itee any) []any {
	fn := iteratee.New(itee)
	out := make([]any, 0, Size(collection))
	Each(collection, func(v, k any) bool {
		r := fn(v, k)
		if _, isString := r.(string); !isString && IsSequence(r) {
			out = append(out, ToArray(r)...)
		} else {
			out = append(out, r)
		}
		return true
	})
	return out
}

// Filter returns the elements for which pred is truthy.
func Filter(collection any, pred any) []any {
	fn := iteratee.Predicate(pred)
	out := make([]any, 0)
	Each(collection, func(v, k any) bool {
		if fn(v, k) {
			out = append(out, v)
		}
		return true
	})
	return out
}

// Reject is the complement of [Filter].
func Reject(collection any, pred any) []any {
	fn := iteratee.Predicate(pred)
	return Filter(collection, func(v, k any) bool { return !fn(v, k) })
}

// Partition splits the elements into those for which pred is truthy and the
// rest.
func Partition(collection any, pred any) ([]any, []any) {
	fn := iteratee.Predicate(pred)
	pass := make([]any, 0)
	fail := make([]any, 0)
	Each(collection, func(v, k any) bool {
		if fn(v, k) {
			pass = append(pass, v)
		} else {
			fail = append(fail, v)
		}
		return true
	})
	return pass, fail
}

// Reduce folds the elements into one value. When initial is omitted the
// first element seeds the accumulator and is not passed to fn.
//
//	Reduce([]int{1, 2, 3}, func(acc, v, _ any) any { return acc.(int) + v.(int) }) // → 6
func Reduce(collection any, fn func(acc, value, key any) any, initial ...any) any {
	var acc any
	seeded := len(initial) > 0
	if seeded {
		acc = initial[0]
	}
	Each(collection, func(v, k any) bool {
		if !seeded {
			acc, seeded = v, true
			return true
		}
		acc = fn(acc, v, k)
		return true
	})
	return acc
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element for which pred is truthy.
// Returns nil and false when nothing matches.
func Find(collection any, pred any) (any, bool) {
	fn := iteratee.Predicate(pred)
	var found any
	matched := false
	Each(collection, func(v, k any) bool {
		if fn(v, k) {
			found, matched = v, true
			return false
		}
		return true
	})
	return found, matched
}

// FindLast returns the last element for which pred is truthy.
func FindLast(collection any, pred any) (any, bool) {
	fn := iteratee.Predicate(pred)
	var found any
	matched := false
	EachRight(collection, func(v, k any) bool {
		if fn(v, k) {
			found, matched = v, true
			return false
		}
		return true
	})
	return found, matched
}

// Every reports whether pred is truthy for all elements.
// An empty collection yields true.
func Every(collection any, pred any) bool {
	fn := iteratee.Predicate(pred)
	ok := true
	Each(collection, func(v, k any) bool {
		ok = fn(v, k)
		return ok
	})
	return ok
}

// Some reports whether pred is truthy for at least one element.
func Some(collection any, pred any) bool {
	_, found := Find(collection, pred)
	return found
}

// Includes reports whether value is an element of collection. For strings
// it reports whether value is a substring.
func Includes(collection any, value any) bool {
	if s, ok := collection.(string); ok {
		sub, isString := value.(string)
		return isString && strings.Contains(s, sub)
	}
	return Some(collection, func(v, _ any) bool { return reflect.DeepEqual(v, value) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups the elements by the result of itee. Results that cannot be
// used as map keys are grouped by their %v form.
//
//	GroupBy([]int{1, 2, 3}, func(n int) bool { return n%2 == 0 })
//	// → map[false:[1 3] true:[2]]
func GroupBy(collection any, itee any) map[any][]any {
	fn := iteratee.New(itee)
	groups := make(map[any][]any)
	Each(collection, func(v, k any) bool {
		key := hashable(fn(v, k))
		groups[key] = append(groups[key], v)
		return true
	})
	return groups
}

// KeyBy indexes the elements by the result of itee. Later elements win.
func KeyBy(collection any, itee any) map[any]any {
	fn := iteratee.New(itee)
	out := make(map[any]any, Size(collection))
	Each(collection, func(v, k any) bool {
		out[hashable(fn(v, k))] = v
		return true
	})
	return out
}

// CountBy counts the elements per result of itee.
func CountBy(collection any, itee any) map[any]int {
	fn := iteratee.New(itee)
	out := make(map[any]int)
	Each(collection, func(v, k any) bool {
		out[hashable(fn(v, k))]++
		return true
	})
	return out
}

// hashable returns v when it can be used as a map key, checking the dynamic
// values of interface fields too, and its %v form otherwise.
func hashable(v any) any {
	if v == nil || reflect.ValueOf(v).Comparable() {
		return v
	}
	return fmt.Sprintf("%v", v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// SortBy returns the elements stably sorted by the results of the given
// iteratees, earlier iteratees taking precedence. With no iteratee the
// elements themselves are compared. Numbers compare numerically, strings
// lexically, and nil sorts last. Each iteratee runs once per element with
// the element's original index as its key.
//
//	SortBy(users, "age", "name")
func SortBy(collection any, itees ...any) []any {
	out := ToArray(collection)
	if len(itees) == 0 {
		itees = []any{nil}
	}
	fns := make([]iteratee.Func, len(itees))
	for i, itee := range itees {
		fns[i] = iteratee.New(itee)
	}

	type keyed struct {
		value any
		keys  []any
	}
	rows := make([]keyed, len(out))
	for i, v := range out {
		keys := make([]any, len(fns))
		for n, fn := range fns {
			keys[n] = fn(v, i)
		}
		rows[i] = keyed{value: v, keys: keys}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		for n := range fns {
			if c := Compare(rows[i].keys[n], rows[j].keys[n]); c != 0 {
				return c < 0
			}
		}
		return false
	})
	for i, row := range rows {
		out[i] = row.value
	}
	return out
}

// Compare orders two values: -1 if a sorts before b, 1 if after, 0 if they
// are equivalent. Numbers of any kind compare numerically, strings
// lexically, false before true, and nil after everything else. Values of
// unrelated kinds compare by their %v form.
func Compare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		}
		return -1
	}

	if af, ok := number(a); ok {
		if bf, ok := number(b); ok {
			return cmp(af < bf, af > bf)
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs)
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return cmp(!ab && bb, ab && !bb)
		}
	}
	return strings.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}

func cmp(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// Shuffle returns the elements in random order.
func Shuffle(collection any) []any {
	out := ToArray(collection)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns one random element, or nil for an empty collection.
func Sample(collection any) any {
	items := ToArray(collection)
	if len(items) == 0 {
		return nil
	}
	return items[rand.Intn(len(items))]
}

// SampleSize returns n random elements without replacement. If n is at
// least the collection size, every element is returned in random order.
func SampleSize(collection any, n int) []any {
	out := Shuffle(collection)
	if n < 0 {
		n = 0
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}
