package collections

import (
	"fmt"
	"iter"
	"reflect"
	"sort"
	"unicode/utf8"
)

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
//
// Every operation in this module is built on one walk over a container. The
// supported shapes and the key handed to the visitor are:
//
//	slice / array          index (int)
//	string                 rune index (int), value is the one-rune string
//	map[K]struct{} (set)   position (int), value is the member
//	any other map          map key, in sorted key order
//	struct / *struct       exported field name, in declaration order
//
// nil values, nil pointers and scalars are visited zero times.
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every element of collection in ascending
// order. Returning false from fn stops the traversal immediately.
//
//	collections.Each([]int{1, 2, 3}, func(v, i any) bool {
//	    fmt.Println(i, v)
//	    return true
//	})
func Each(collection any, fn func(value, key any) bool) {
	walk(collection, false, fn)
}

// EachRight is [Each] in descending order.
func EachRight(collection any, fn func(value, key any) bool) {
	walk(collection, true, fn)
}

// All returns an iterator over the (value, key) pairs of collection in
// ascending order.
//
//	for v, i := range collections.All([]string{"a", "b"}) { ... }
func All(collection any) iter.Seq2[any, any] {
	return func(yield func(value, key any) bool) {
		walk(collection, false, yield)
	}
}

// Backward returns an iterator over the (value, key) pairs of collection in
// descending order.
func Backward(collection any) iter.Seq2[any, any] {
	return func(yield func(value, key any) bool) {
		walk(collection, true, yield)
	}
}

func walk(collection any, right bool, fn func(value, key any) bool) {
	switch c := collection.(type) {
	case nil:
		return
	case []any:
		walkSlice(len(c), right, func(i int) bool { return fn(c[i], i) })
		return
	case []int:
		walkSlice(len(c), right, func(i int) bool { return fn(c[i], i) })
		return
	case []string:
		walkSlice(len(c), right, func(i int) bool { return fn(c[i], i) })
		return
	case []float64:
		walkSlice(len(c), right, func(i int) bool { return fn(c[i], i) })
		return
	case string:
		walkString(c, right, fn)
		return
	}

	rv := indirect(reflect.ValueOf(collection))
	if !rv.IsValid() {
		return
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		walkSlice(rv.Len(), right, func(i int) bool { return fn(rv.Index(i).Interface(), i) })
	case reflect.String:
		walkString(rv.String(), right, fn)
	case reflect.Map:
		keys := sortedKeys(rv)
		if isSet(rv.Type()) {
			walkSlice(len(keys), right, func(i int) bool { return fn(keys[i].Interface(), i) })
		} else {
			walkSlice(len(keys), right, func(i int) bool {
				return fn(rv.MapIndex(keys[i]).Interface(), keys[i].Interface())
			})
		}
	case reflect.Struct:
		fields := exportedFields(rv.Type())
		walkSlice(len(fields), right, func(i int) bool {
			return fn(rv.FieldByIndex(fields[i].Index).Interface(), fields[i].Name)
		})
	}
}

func walkSlice(n int, right bool, visit func(i int) bool) {
	if right {
		for i := n - 1; i >= 0; i-- {
			if !visit(i) {
				return
			}
		}
		return
	}
	for i := 0; i < n; i++ {
		if !visit(i) {
			return
		}
	}
}

func walkString(s string, right bool, fn func(value, key any) bool) {
	if !right {
		i := 0
		for _, r := range s {
			if !fn(string(r), i) {
				return
			}
			i++
		}
		return
	}

	i := utf8.RuneCountInString(s) - 1
	for end := len(s); end > 0; i-- {
		r, size := utf8.DecodeLastRuneInString(s[:end])
		if !fn(string(r), i) {
			return
		}
		end -= size
	}
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// isSet reports whether t is a map used as a set (map[K]struct{}).
func isSet(t reflect.Type) bool {
	elem := t.Elem()
	return elem.Kind() == reflect.Struct && elem.NumField() == 0
}

func exportedFields(t reflect.Type) []reflect.StructField {
	fields := make([]reflect.StructField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.IsExported() {
			fields = append(fields, f)
		}
	}
	return fields
}

// sortedKeys returns the keys of a map value in a deterministic order:
// numbers numerically, strings lexically, everything else by its %v form.
func sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})
	return keys
}

func keyLess(a, b reflect.Value) bool {
	a, b = indirect(a), indirect(b)
	if !a.IsValid() || !b.IsValid() {
		return !a.IsValid() && b.IsValid()
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return a.Int() < b.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return a.Uint() < b.Uint()
		case reflect.Float32, reflect.Float64:
			return a.Float() < b.Float()
		case reflect.String:
			return a.String() < b.String()
		case reflect.Bool:
			return !a.Bool() && b.Bool()
		}
	}
	return fmt.Sprintf("%v", a.Interface()) < fmt.Sprintf("%v", b.Interface())
}
