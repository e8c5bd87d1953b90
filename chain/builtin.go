package chain

import (
	"fmt"
	"reflect"

	"github.com/ghetzel/go-stockutil/typeutil"
	"github.com/hasbyte1/go-funcjs/arr"
	"github.com/hasbyte1/go-funcjs/collections"
	"github.com/hasbyte1/go-funcjs/fn"
	"github.com/hasbyte1/go-funcjs/iteratee"
	"github.com/hasbyte1/go-funcjs/str"
)

// Names of the built-in operations.
const (
	OpMap     = "map"
	OpFilter  = "filter"
	OpSlice   = "slice"
	OpTail    = "tail"
	OpTake    = "take"
	OpFirst   = "first"
	OpHead    = "head"
	OpLast    = "last"
	OpReverse = "reverse"
	OpTap     = "tap"
	OpSplit   = "split"
	OpToArray = "toArray"
	OpRange   = "range"
)

// Builtins returns the operations the fusion engine knows, each tagged with
// its Kind, plus the three boundary operations.
//
//	map(iteratee)          filter(predicate)
//	slice(begin, end?)     tail()
//	take(n)                first() / head() / last()
//	reverse()              tap(func(any))
//	split(sep?, limit?)    toArray()        range(end?, step?)
func Builtins() []Operation {
	return []Operation{
		{Name: OpMap, Kind: Map, Fn: mapOp},
		{Name: OpFilter, Kind: Filter, Fn: filterOp},
		{Name: OpSlice, Kind: Slice, Fn: sliceOp},
		{Name: OpTail, Kind: Tail, Fn: tailOp},
		{Name: OpTake, Kind: Take, Fn: takeOp},
		{Name: OpFirst, Kind: First, Fn: firstOp},
		{Name: OpHead, Kind: Head, Fn: firstOp},
		{Name: OpLast, Kind: Last, Fn: lastOp},
		{Name: OpReverse, Kind: Reverse, Fn: reverseOp},
		{Name: OpTap, Kind: Tap, Fn: tapOp},
		{Name: OpSplit, Kind: Boundary, Fn: splitOp},
		{Name: OpToArray, Kind: Boundary, Fn: toArrayOp},
		{Name: OpRange, Kind: Boundary, Fn: rangeOp},
	}
}

func builtin(name string) Operation {
	for _, op := range Builtins() {
		if op.Name == name {
			return op
		}
	}
	panic(fmt.Sprintf("chain: no builtin %q", name))
}

func mapOp(acc any, args ...any) (any, error) {
	return collections.Map(acc, Args(args).Get(0)), nil
}

func filterOp(acc any, args ...any) (any, error) {
	return collections.Filter(acc, Args(args).Get(0)), nil
}

func sliceOp(acc any, args ...any) (any, error) {
	begin, end, hasEnd, err := sliceBounds(args)
	if err != nil {
		return nil, err
	}
	if hasEnd {
		return arr.Slice(acc, begin, end), nil
	}
	return arr.Slice(acc, begin), nil
}

func sliceBounds(args Args) (begin, end int, hasEnd bool, err error) {
	if begin, err = args.Int(0, 0); err != nil {
		return 0, 0, false, err
	}
	if !args.Has(1) {
		return begin, 0, false, nil
	}
	end, err = args.Int(1, 0)
	return begin, end, true, err
}

func tailOp(acc any, _ ...any) (any, error) {
	return arr.Tail(acc), nil
}

func takeOp(acc any, args ...any) (any, error) {
	if !Args(args).Has(0) {
		return arr.Slice(acc, 0), nil
	}
	n, err := Args(args).Int(0, 0)
	if err != nil {
		return nil, err
	}
	return arr.Take(acc, n), nil
}

func firstOp(acc any, _ ...any) (any, error) {
	return arr.First(acc), nil
}

func lastOp(acc any, _ ...any) (any, error) {
	return arr.Last(acc), nil
}

func reverseOp(acc any, _ ...any) (any, error) {
	return arr.Reverse(acc), nil
}

func tapOp(acc any, args ...any) (any, error) {
	interceptor, err := tapFunc(Args(args).Get(0))
	if err != nil {
		return nil, err
	}
	return fn.Tap(acc, interceptor), nil
}

// tapFunc accepts any one- or two-parameter function as an interceptor.
func tapFunc(v any) (func(any), error) {
	switch f := v.(type) {
	case func(any):
		return f, nil
	case nil:
		return nil, fmt.Errorf("%w: tap needs a function", ErrInvalidArgument)
	}
	if !typeutil.IsKind(v, reflect.Func) {
		return nil, fmt.Errorf("%w: tap needs a function, got %T", ErrInvalidArgument, v)
	}
	call := iteratee.New(v)
	return func(result any) { call(result, nil) }, nil
}

func splitOp(acc any, args ...any) (any, error) {
	a := Args(args)
	if !a.Has(0) {
		return []string{str.ToString(acc)}, nil
	}
	limit, err := a.Int(1, -1)
	if err != nil {
		return nil, err
	}
	return str.Split(acc, str.ToString(a.Get(0)), limit), nil
}

func toArrayOp(acc any, _ ...any) (any, error) {
	return collections.ToArray(acc), nil
}

// rangeOp generates integers with the accumulator as the first bound, so
// New(reg, 5).Range() yields [0 1 2 3 4] and New(reg, 1).Range(4) yields
// [1 2 3]. A nil accumulator is skipped.
func rangeOp(acc any, args ...any) (any, error) {
	bounds := make(Args, 0, len(args)+1)
	if acc != nil {
		bounds = append(bounds, acc)
	}
	bounds = append(bounds, args...)

	ints := make([]int, len(bounds))
	for i := range bounds {
		n, err := bounds.Int(i, 0)
		if err != nil {
			return nil, err
		}
		ints[i] = n
	}
	return arr.Range(ints...), nil
}
