package funcjs

import (
	"fmt"

	"github.com/hasbyte1/go-funcjs/arr"
	"github.com/hasbyte1/go-funcjs/chain"
	"github.com/hasbyte1/go-funcjs/collections"
	"github.com/hasbyte1/go-funcjs/fn"
	"github.com/hasbyte1/go-funcjs/iteratee"
	"github.com/hasbyte1/go-funcjs/object"
	"github.com/hasbyte1/go-funcjs/str"
)

// ─────────────────────────────────────────────────────────────────────────────
// Adapters from plain helpers to chain.Func
// ─────────────────────────────────────────────────────────────────────────────

// unary adapts f(acc).
func unary[R any](f func(any) R) chain.Func {
	return func(acc any, _ ...any) (any, error) {
		return f(acc), nil
	}
}

// binary adapts f(acc, args[0]).
func binary[R any](f func(any, any) R) chain.Func {
	return func(acc any, args ...any) (any, error) {
		return f(acc, chain.Args(args).Get(0)), nil
	}
}

// withInt adapts f(acc, args[0]) for an integer argument defaulting to def.
func withInt[R any](f func(any, int) R, def int) chain.Func {
	return func(acc any, args ...any) (any, error) {
		n, err := chain.Args(args).Int(0, def)
		if err != nil {
			return nil, err
		}
		return f(acc, n), nil
	}
}

// variadic adapts f(acc, args...).
func variadic[R any](f func(any, ...any) R) chain.Func {
	return func(acc any, args ...any) (any, error) {
		return f(acc, args...), nil
	}
}

// withStrings adapts f(acc, args...) with every argument converted to a
// string.
func withStrings[R any](f func(any, ...string) R) chain.Func {
	return func(acc any, args ...any) (any, error) {
		return f(acc, stringArgs(args)...), nil
	}
}

// onMap adapts f(acc, args...) for helpers that only work on
// map[string]any.
func onMap[R any](f func(map[string]any, ...string) R) chain.Func {
	return func(acc any, args ...any) (any, error) {
		m, err := asMap(acc)
		if err != nil {
			return nil, err
		}
		return f(m, stringArgs(args)...), nil
	}
}

func stringArgs(args []any) []string {
	ss := make([]string, len(args))
	for i, a := range args {
		ss[i] = str.ToString(a)
	}
	return ss
}

func asMap(v any) (map[string]any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	return nil, fmt.Errorf("%w: expected map[string]any, got %T", chain.ErrInvalidArgument, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Operation tables
// ─────────────────────────────────────────────────────────────────────────────

func collectionOps() []chain.Operation {
	return []chain.Operation{
		{Name: "size", Fn: unary(collections.Size)},
		{Name: "reject", Fn: binary(collections.Reject)},
		{Name: "flatMap", Fn: binary(collections.FlatMap)},
		{Name: "partition", Fn: binary(func(c, pred any) []any {
			pass, fail := collections.Partition(c, pred)
			return []any{pass, fail}
		})},
		{Name: "reduce", Fn: reduceOp},
		{Name: "find", Fn: binary(func(c, pred any) any {
			v, _ := collections.Find(c, pred)
			return v
		})},
		{Name: "findLast", Fn: binary(func(c, pred any) any {
			v, _ := collections.FindLast(c, pred)
			return v
		})},
		{Name: "every", Fn: binary(collections.Every)},
		{Name: "some", Fn: binary(collections.Some)},
		{Name: "includes", Fn: binary(collections.Includes)},
		{Name: "groupBy", Fn: binary(collections.GroupBy)},
		{Name: "keyBy", Fn: binary(collections.KeyBy)},
		{Name: "countBy", Fn: binary(collections.CountBy)},
		{Name: "sortBy", Fn: variadic(collections.SortBy)},
		{Name: "shuffle", Fn: unary(collections.Shuffle)},
		{Name: "sample", Fn: unary(collections.Sample)},
		{Name: "sampleSize", Fn: withInt(collections.SampleSize, 1)},
	}
}

// reduceOp folds with a func(acc, value, key any) any and an optional
// initial value.
func reduceOp(acc any, args ...any) (any, error) {
	a := chain.Args(args)
	f, ok := a.Get(0).(func(acc, value, key any) any)
	if !ok {
		return nil, fmt.Errorf("%w: reduce needs a func(acc, value, key any) any, got %T", chain.ErrInvalidArgument, a.Get(0))
	}
	if len(a) > 1 {
		return collections.Reduce(acc, f, a[1]), nil
	}
	return collections.Reduce(acc, f), nil
}

func arrayOps() []chain.Operation {
	return []chain.Operation{
		{Name: "initial", Fn: unary(arr.Initial)},
		{Name: "takeRight", Fn: withInt(arr.TakeRight, 1)},
		{Name: "uniq", Fn: unary(arr.Uniq)},
		{Name: "uniqBy", Fn: binary(arr.UniqBy)},
		{Name: "compact", Fn: unary(arr.Compact)},
		{Name: "flat", Fn: withInt(arr.Flat, 1)},
		{Name: "flatDeep", Fn: unary(arr.FlatDeep)},
		{Name: "chunk", Fn: func(acc any, args ...any) (any, error) {
			size, err := chain.Args(args).Int(0, 1)
			if err != nil {
				return nil, err
			}
			return arr.Chunk(acc, size)
		}},
		{Name: "join", Fn: withStrings(arr.Join)},
		{Name: "concat", Fn: variadic(func(acc any, values ...any) []any {
			return arr.Concat(append([]any{acc}, values...)...)
		})},
		{Name: "zip", Fn: variadic(func(acc any, others ...any) [][]any {
			return arr.Zip(append([]any{acc}, others...)...)
		})},
		{Name: "findIndex", Fn: indexOp(arr.FindIndex)},
		{Name: "findLastIndex", Fn: indexOp(arr.FindLastIndex)},
		{Name: "without", Fn: variadic(arr.Without)},
	}
}

func indexOp(f func(any, any, ...int) int) chain.Func {
	return func(acc any, args ...any) (any, error) {
		a := chain.Args(args)
		if !a.Has(1) {
			return f(acc, a.Get(0)), nil
		}
		from, err := a.Int(1, 0)
		if err != nil {
			return nil, err
		}
		return f(acc, a.Get(0), from), nil
	}
}

func objectOps() []chain.Operation {
	return []chain.Operation{
		{Name: "get", Fn: func(acc any, args ...any) (any, error) {
			a := chain.Args(args)
			if len(a) > 1 {
				return object.Get(acc, a[0], a[1]), nil
			}
			return object.Get(acc, a.Get(0)), nil
		}},
		{Name: "has", Fn: binary(object.Has)},
		{Name: "isMatch", Fn: func(acc any, args ...any) (any, error) {
			props, err := asMap(chain.Args(args).Get(0))
			if err != nil {
				return nil, err
			}
			return object.IsMatch(acc, props), nil
		}},
		{Name: "pick", Fn: onMap(object.Pick)},
		{Name: "omit", Fn: onMap(object.Omit)},
		{Name: "flatten", Fn: onMap(func(m map[string]any, _ ...string) map[string]any { return object.Flatten(m) })},
		{Name: "unflatten", Fn: onMap(func(m map[string]any, _ ...string) map[string]any { return object.Unflatten(m) })},
		{Name: "merge", Fn: func(acc any, args ...any) (any, error) {
			dst, err := asMap(acc)
			if err != nil {
				return nil, err
			}
			for _, a := range args {
				src, err := asMap(a)
				if err != nil {
					return nil, err
				}
				dst = object.Merge(dst, src)
			}
			return dst, nil
		}},
	}
}

func stringOps() []chain.Operation {
	return []chain.Operation{
		{Name: "toString", Fn: unary(str.ToString)},
		{Name: "words", Fn: unary(str.Words)},
		{Name: "capitalize", Fn: unary(str.Capitalize)},
		{Name: "upperFirst", Fn: unary(str.UpperFirst)},
		{Name: "lowerFirst", Fn: unary(str.LowerFirst)},
		{Name: "camelCase", Fn: unary(str.CamelCase)},
		{Name: "pascalCase", Fn: unary(str.PascalCase)},
		{Name: "snakeCase", Fn: unary(str.SnakeCase)},
		{Name: "kebabCase", Fn: unary(str.KebabCase)},
		{Name: "trim", Fn: unary(str.Trim)},
		{Name: "trimStart", Fn: unary(str.TrimStart)},
		{Name: "trimEnd", Fn: unary(str.TrimEnd)},
		{Name: "repeat", Fn: withInt(str.Repeat, 1)},
		{Name: "padStart", Fn: padOp(str.PadStart)},
		{Name: "padEnd", Fn: padOp(str.PadEnd)},
	}
}

func padOp(f func(any, int, ...string) string) chain.Func {
	return func(acc any, args ...any) (any, error) {
		a := chain.Args(args)
		n, err := a.Int(0, 0)
		if err != nil {
			return nil, err
		}
		if a.Has(1) {
			return f(acc, n, str.ToString(a[1])), nil
		}
		return f(acc, n), nil
	}
}

func functionOps() []chain.Operation {
	return []chain.Operation{
		{Name: "alt", Fn: func(acc any, args ...any) (any, error) {
			a := chain.Args(args)
			primary, fallback := iteratee.New(a.Get(0)), iteratee.New(a.Get(1))
			return fn.Alt(acc,
				func(v any) any { return primary(v, nil) },
				func(v any) any { return fallback(v, nil) },
			), nil
		}},
		{Name: "call", Fn: func(acc any, args ...any) (any, error) {
			f, ok := chain.Args(args).Get(0).(func(any) any)
			if !ok {
				return nil, fmt.Errorf("%w: call needs a func(any) any, got %T", chain.ErrInvalidArgument, chain.Args(args).Get(0))
			}
			return f(acc), nil
		}},
	}
}
