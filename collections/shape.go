package collections

import (
	"reflect"
	"unicode/utf8"

	"github.com/ghetzel/go-stockutil/sliceutil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// IsSequence reports whether v is ordered, indexable and of finite length:
// a slice, an array, or a non-empty string. Sequences are the only values a
// lazy chain will fuse over.
func IsSequence(v any) bool {
	if s, ok := v.(string); ok {
		return s != ""
	}
	return typeutil.IsArray(v)
}

// Size returns the number of elements [Each] would visit.
//
//	Size("func.js")                  // → 7
//	Size(map[string]int{"a": 1})     // → 1
//	Size(nil)                        // → 0
func Size(collection any) int {
	if s, ok := collection.(string); ok {
		return utf8.RuneCountInString(s)
	}

	rv := indirect(reflect.ValueOf(collection))
	if !rv.IsValid() {
		return 0
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	case reflect.String:
		return utf8.RuneCountInString(rv.String())
	case reflect.Struct:
		return len(exportedFields(rv.Type()))
	}
	return 0
}

// ToArray returns the values of collection as a new []any.
// Maps and structs contribute their values, strings their runes. A scalar
// becomes a one-element slice; nil becomes an empty one.
func ToArray(collection any) []any {
	switch c := collection.(type) {
	case nil:
		return []any{}
	case []any:
		out := make([]any, len(c))
		copy(out, c)
		return out
	}

	if typeutil.IsArray(collection) {
		return sliceutil.Sliceify(collection)
	}

	rv := indirect(reflect.ValueOf(collection))
	if !rv.IsValid() {
		return []any{}
	}
	switch rv.Kind() {
	case reflect.String, reflect.Map, reflect.Struct:
		out := make([]any, 0, Size(collection))
		Each(collection, func(v, _ any) bool {
			out = append(out, v)
			return true
		})
		return out
	}
	return []any{collection}
}
