package chain

import (
	"fmt"
	"math"
	"reflect"
)

// Kind tags an operation with the semantics the fusion engine understands.
// Two operations with the same Kind must behave identically when applied
// eagerly; the engine relies on the tag, never on the operation's name.
type Kind int

const (
	// Opaque operations are applied eagerly and end fusion for the rest of
	// the chain, unless a Boundary operation starts a new run.
	Opaque Kind = iota
	Map
	Filter
	Slice
	Tail
	Take
	First
	Head
	Last
	Reverse
	Tap
	// Boundary operations (split, toArray, range) produce a fresh sequence
	// unrelated to the elements of their input. They always close the
	// current plan and a new one starts on their result.
	Boundary
)

var kindNames = [...]string{
	Opaque:   "opaque",
	Map:      "map",
	Filter:   "filter",
	Slice:    "slice",
	Tail:     "tail",
	Take:     "take",
	First:    "first",
	Head:     "head",
	Last:     "last",
	Reverse:  "reverse",
	Tap:      "tap",
	Boundary: "boundary",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Fusable reports whether operations of this kind can be folded into a plan.
func (k Kind) Fusable() bool {
	return k > Opaque && k < Boundary
}

// Func is the eager implementation of an operation. acc is the value
// produced by the previous link (or the chain's seed); args are the
// arguments recorded with the link.
type Func func(acc any, args ...any) (any, error)

// Operation is a named, tagged chain step.
type Operation struct {
	Name string
	Kind Kind
	Fn   Func
}

func (op Operation) validate() error {
	if op.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidOperation)
	}
	if op.Fn == nil {
		return fmt.Errorf("%w: %q has no function", ErrInvalidOperation, op.Name)
	}
	return nil
}

// Link is one recorded call: the operation and its extra arguments.
type Link struct {
	Op   Operation
	Args Args
}

func (l Link) apply(acc any) (any, error) {
	return l.Op.Fn(acc, l.Args...)
}

func (l Link) String() string {
	return fmt.Sprintf("%s%v", l.Op.Name, []any(l.Args))
}

// Args are the arguments recorded with a link.
type Args []any

// Get returns the i-th argument, or nil when it was not given.
func (a Args) Get(i int) any {
	if i < 0 || i >= len(a) {
		return nil
	}
	return a[i]
}

// Has reports whether the i-th argument was given and is not nil.
func (a Args) Has(i int) bool {
	return a.Get(i) != nil
}

// Int returns the i-th argument as an int, or def when it was not given.
// Floating point values are accepted only when they hold a whole number,
// and values outside the range of int are rejected.
func (a Args) Int(i int, def int) (int, error) {
	v := a.Get(i)
	if v == nil {
		return def, nil
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("%w: argument %d must be an integer, got %T(%v)", ErrInvalidArgument, i, v, v)
	}
	return n, nil
}

func toInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return int(rv.Int()), true
	case reflect.Int64:
		n := rv.Int()
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		// float64(math.MaxInt) rounds up to 2^63, which int cannot hold
		if f != math.Trunc(f) || f >= float64(math.MaxInt) || f < float64(math.MinInt) {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}
