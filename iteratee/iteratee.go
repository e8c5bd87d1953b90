package iteratee

import (
	"reflect"

	"github.com/ghetzel/go-stockutil/typeutil"
	"github.com/hasbyte1/go-funcjs/object"
)

// Func is the uniform callback shape used by every collection operation:
// it receives an element and its key (index for sequences, map key or field
// name for keyed containers) and returns a result. Predicates return a value
// interpreted by [Truthy].
type Func func(value, key any) any

// New adapts v into a [Func]:
//
//   - nil                    → [Identity]
//   - Func, func(any) any,
//     func(any, any) any     → called as-is
//   - func(any) bool,
//     func(any, any) bool    → called as-is
//   - any other func with one or two parameters and one result
//     → called through reflection, converting arguments to the parameter types
//   - string                 → [Prop] of the path
//   - []string, []any        → [Prop] of the segments
//   - map[string]any         → [Matcher] of the shape
//   - anything else          → a Func that always returns false
//
//	collections.Map(users, "address.city")
//	collections.Filter(libs, map[string]any{"js": true})
//	collections.Filter(nums, func(n int) bool { return n%2 == 0 })
func New(v any) Func {
	switch f := v.(type) {
	case nil:
		return Identity
	case Func:
		return f
	case func(any, any) any:
		return f
	case func(any) any:
		return func(value, _ any) any { return f(value) }
	case func(any, any) bool:
		return func(value, key any) any { return f(value, key) }
	case func(any) bool:
		return func(value, _ any) any { return f(value) }
	case string, []string, []any:
		return Prop(f)
	case map[string]any:
		return Matcher(f)
	}

	if typeutil.IsKind(v, reflect.Func) {
		if fn, ok := reflectFunc(reflect.ValueOf(v)); ok {
			return fn
		}
	}
	return func(any, any) any { return false }
}

// Predicate adapts v like [New] and reports the [Truthy] value of its result.
func Predicate(v any) func(value, key any) bool {
	fn := New(v)
	return func(value, key any) bool { return Truthy(fn(value, key)) }
}

// Identity returns value unchanged.
func Identity(value, _ any) any { return value }

// Prop returns a Func that reads path from each element.
//
//	Prop("tags.utils")(lib, 0) // → lib["tags"]["utils"]
func Prop(path any) Func {
	segments := object.ToPath(path)
	return func(value, _ any) any {
		return object.Get(value, segments)
	}
}

// Matcher returns a Func reporting whether each element partially matches
// props (see [object.IsMatch]).
func Matcher(props map[string]any) Func {
	return func(value, _ any) any {
		return object.IsMatch(value, props)
	}
}

// Truthy reports whether v counts as true when returned from a predicate:
// nil, false, numeric zero, NaN and the empty string are false; everything
// else, including empty slices and maps, is true.
func Truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case float64:
		return b == b && b != 0
	case float32:
		return b == b && b != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Struct:
		return true
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return !typeutil.IsZero(v)
}

func reflectFunc(fv reflect.Value) (Func, bool) {
	ft := fv.Type()
	if ft.IsVariadic() || ft.NumIn() < 1 || ft.NumIn() > 2 || ft.NumOut() != 1 {
		return nil, false
	}

	return func(value, key any) any {
		in := []reflect.Value{argValue(ft.In(0), value)}
		if ft.NumIn() == 2 {
			in = append(in, argValue(ft.In(1), key))
		}
		return fv.Call(in)[0].Interface()
	}, true
}

// argValue converts v to t, falling back to the zero value of t when v is nil
// or not convertible.
func argValue(t reflect.Type, v any) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv
	}
	if rv.Type().ConvertibleTo(t) && convertible(rv.Kind(), t.Kind()) {
		return rv.Convert(t)
	}
	return reflect.Zero(t)
}

// convertible rejects the reflect conversions that are legal but not
// meaningful for callback arguments, such as int → string.
func convertible(from, to reflect.Kind) bool {
	if to == reflect.String {
		return from == reflect.String
	}
	return true
}
