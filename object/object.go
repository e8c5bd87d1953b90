package object

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/ghetzel/go-stockutil/maputil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// ─────────────────────────────────────────────────────────────────────────────
// Property paths
//
// A path addresses a value nested inside maps, slices and structs. It may be
// given as a dotted string with optional bracket indices, a []string of
// segments, a []any of segments, or a single number:
//
//	ToPath("user.tags[0].name")         → ["user" "tags" "0" "name"]
//	ToPath([]string{"user", "name"})    → ["user" "name"]
//	ToPath(2)                           → ["2"]
// ─────────────────────────────────────────────────────────────────────────────

var rxBracketIndex = regexp.MustCompile(`\[([^\]]+)\]`)

// ToPath converts path into its list of segments.
func ToPath(path any) []string {
	var joined string

	switch p := path.(type) {
	case nil:
		return []string{}
	case string:
		joined = p
	case []string:
		joined = strings.Join(p, ".")
	case []any:
		parts := make([]string, len(p))
		for i, seg := range p {
			parts[i] = fmt.Sprintf("%v", seg)
		}
		joined = strings.Join(parts, ".")
	default:
		joined = fmt.Sprintf("%v", p)
	}

	joined = rxBracketIndex.ReplaceAllString(joined, ".$1")
	joined = strings.TrimPrefix(joined, ".")
	return strings.Split(joined, ".")
}

// Get resolves path inside obj. Returns def[0] (or nil) when any segment is
// missing.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
//	Get(users, "[1].name")             // name of the second user
func Get(obj any, path any, def ...any) any {
	segments := ToPath(path)

	if typeutil.IsMap(obj) && !hasNegativeIndex(segments) {
		if v := maputil.DeepGet(obj, segments); v != nil {
			return v
		}
	}

	if v, ok := lookup(obj, segments); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// hasNegativeIndex reports whether any segment is a negative integer, which
// maputil.DeepGet would use as a slice index unchecked.
func hasNegativeIndex(segments []string) bool {
	for _, seg := range segments {
		if i, err := strconv.Atoi(seg); err == nil && i < 0 {
			return true
		}
	}
	return false
}

// Has reports whether every segment of path resolves inside obj.
func Has(obj any, path any) bool {
	segments := ToPath(path)
	if len(segments) == 0 {
		return false
	}
	_, ok := lookup(obj, segments)
	return ok
}

// HasAll reports whether all paths resolve inside obj.
func HasAll(obj any, paths ...string) bool {
	for _, path := range paths {
		if !Has(obj, path) {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the paths resolves inside obj.
func HasAny(obj any, paths ...string) bool {
	for _, path := range paths {
		if Has(obj, path) {
			return true
		}
	}
	return false
}

func lookup(obj any, segments []string) (any, bool) {
	current := reflect.ValueOf(obj)

	for _, seg := range segments {
		current = indirect(current)
		if !current.IsValid() {
			return nil, false
		}

		switch current.Kind() {
		case reflect.Map:
			key, ok := mapKey(current.Type().Key(), seg)
			if !ok {
				return nil, false
			}
			next := current.MapIndex(key)
			if !next.IsValid() {
				return nil, false
			}
			current = next
		case reflect.Slice, reflect.Array, reflect.String:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= current.Len() {
				return nil, false
			}
			current = current.Index(i)
		case reflect.Struct:
			field := current.FieldByName(seg)
			if !field.IsValid() || !field.CanInterface() {
				return nil, false
			}
			current = field
		default:
			return nil, false
		}
	}

	if !current.IsValid() {
		return nil, false
	}
	return current.Interface(), true
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

// mapKey converts a path segment into a value usable as a key of keyType.
func mapKey(keyType reflect.Type, seg string) (reflect.Value, bool) {
	switch keyType.Kind() {
	case reflect.String:
		return reflect.ValueOf(seg).Convert(keyType), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(seg, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(i).Convert(keyType), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(seg, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(u).Convert(keyType), true
	case reflect.Interface:
		return reflect.ValueOf(seg), true
	}
	return reflect.Value{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Writing nested map[string]any values
// ─────────────────────────────────────────────────────────────────────────────

// Set writes value into m at path, creating intermediate maps as needed.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, path any, value any) {
	setSegments(m, ToPath(path), value)
}

func setSegments(m map[string]any, segments []string, value any) {
	if len(segments) == 1 {
		m[segments[0]] = value
		return
	}
	seg, rest := segments[0], segments[1:]
	nested, ok := m[seg].(map[string]any)
	if !ok {
		nested = make(map[string]any)
		m[seg] = nested
	}
	setSegments(nested, rest, value)
}

// Unset removes path from m. Intermediate maps are left in place.
func Unset(m map[string]any, path any) {
	segments := ToPath(path)
	for len(segments) > 1 {
		nested, ok := m[segments[0]].(map[string]any)
		if !ok {
			return
		}
		m, segments = nested, segments[1:]
	}
	delete(m, segments[0])
}

// Pick returns a new map containing only the given top-level keys.
func Pick(m map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a shallow copy of m without the given top-level keys.
func Omit(m map[string]any, keys ...string) map[string]any {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// Merge merges src into dst, returning dst.
// Values in src overwrite values in dst for matching keys; nested maps are
// merged recursively.
func Merge(dst, src map[string]any) map[string]any {
	for k, srcVal := range src {
		dstVal, ok := dst[k]
		if ok {
			dstMap, dstIsMap := dstVal.(map[string]any)
			srcMap, srcIsMap := srcVal.(map[string]any)
			if dstIsMap && srcIsMap {
				Merge(dstMap, srcMap)
				continue
			}
		}
		dst[k] = srcVal
	}
	return dst
}

// Flatten collapses a nested map[string]any into a single level keyed by
// dotted paths.
//
//	Flatten(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	flatten("", m, out)
	return out
}

func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Unflatten expands a map keyed by dotted paths back into nested maps.
func Unflatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	for key, val := range m {
		Set(out, key, val)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Matching
// ─────────────────────────────────────────────────────────────────────────────

// IsMatch reports whether obj contains every property of props with an equal
// value. Nested maps in props are matched recursively, so only the listed
// properties need to be present:
//
//	IsMatch(lib, map[string]any{"tags": map[string]any{"utils": true}})
//
// Keys of props are plain property names; they are not parsed as paths.
func IsMatch(obj any, props map[string]any) bool {
	for k, want := range props {
		got, ok := lookup(obj, []string{k})
		if !ok {
			return false
		}
		if nested, isMap := want.(map[string]any); isMap {
			if !IsMatch(got, nested) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
