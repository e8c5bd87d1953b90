package chain

import (
	"fmt"

	"github.com/ghetzel/go-stockutil/log"
	"github.com/hasbyte1/go-funcjs/collections"
)

// Chain records operations over a seed value and runs them only when
// [Chain.Value] is called. Recording methods return the same *Chain so
// calls can be strung together:
//
//	out, err := chain.New(nil, items).
//	    Map(func(n int) int { return n + 1 }).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Take(2).
//	    Value()
//
// A Chain is not safe for concurrent recording.
type Chain struct {
	reg   *Registry
	seed  any
	links []Link
	err   error
}

// New wraps v in a chain whose named operations are resolved through reg
// ([Default] when reg is nil). If v is already a *Chain it is returned
// unchanged; chains never nest.
func New(reg *Registry, v any) *Chain {
	if c, ok := v.(*Chain); ok {
		return c
	}
	if reg == nil {
		reg = Default()
	}
	return &Chain{reg: reg, seed: v}
}

// Seed returns the wrapped value.
func (c *Chain) Seed() any { return c.seed }

// Links returns a copy of the recorded links.
func (c *Chain) Links() []Link {
	out := make([]Link, len(c.links))
	copy(out, c.links)
	return out
}

// Then records op with args.
func (c *Chain) Then(op Operation, args ...any) *Chain {
	if err := op.validate(); err != nil {
		c.fail(err)
		return c
	}
	c.links = append(c.links, Link{Op: op, Args: Args(args)})
	return c
}

// Call records the operation registered under name. An unknown name is
// reported by [Chain.Value] as ErrUnknownOperation.
func (c *Chain) Call(name string, args ...any) *Chain {
	op, ok := c.reg.Lookup(name)
	if !ok {
		c.fail(fmt.Errorf("%w: %q", ErrUnknownOperation, name))
		return c
	}
	return c.Then(op, args...)
}

func (c *Chain) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// builtin records the registry's operation for name, falling back to the
// built-in one when the registry does not carry it.
func (c *Chain) builtin(name string, args ...any) *Chain {
	if op, ok := c.reg.Lookup(name); ok {
		return c.Then(op, args...)
	}
	return c.Then(builtin(name), args...)
}

// Map records map(itee). itee is anything the iteratee adapter accepts.
func (c *Chain) Map(itee any) *Chain { return c.builtin(OpMap, itee) }

// Filter records filter(pred).
func (c *Chain) Filter(pred any) *Chain { return c.builtin(OpFilter, pred) }

// Slice records slice(begin, end?).
func (c *Chain) Slice(begin int, end ...int) *Chain {
	if len(end) > 0 {
		return c.builtin(OpSlice, begin, end[0])
	}
	return c.builtin(OpSlice, begin)
}

// Tail records tail().
func (c *Chain) Tail() *Chain { return c.builtin(OpTail) }

// Take records take(n).
func (c *Chain) Take(n int) *Chain { return c.builtin(OpTake, n) }

// First records first().
func (c *Chain) First() *Chain { return c.builtin(OpFirst) }

// Head records head().
func (c *Chain) Head() *Chain { return c.builtin(OpHead) }

// Last records last().
func (c *Chain) Last() *Chain { return c.builtin(OpLast) }

// Reverse records reverse().
func (c *Chain) Reverse() *Chain { return c.builtin(OpReverse) }

// Tap records tap(interceptor). Within one fused run only the last tap
// fires, once, with the run's result.
func (c *Chain) Tap(interceptor any) *Chain { return c.builtin(OpTap, interceptor) }

// Split records split(sep, limit?).
func (c *Chain) Split(sep string, limit ...int) *Chain {
	if len(limit) > 0 {
		return c.builtin(OpSplit, sep, limit[0])
	}
	return c.builtin(OpSplit, sep)
}

// ToArray records toArray().
func (c *Chain) ToArray() *Chain { return c.builtin(OpToArray) }

// Range records range(args...), using the current value as the first bound.
func (c *Chain) Range(args ...int) *Chain {
	a := make([]any, len(args))
	for i, n := range args {
		a[i] = n
	}
	return c.builtin(OpRange, a...)
}

// Value replays the recorded links from the seed and returns the result.
//
// Consecutive fusable links are folded into one plan that traverses the
// current value once, stopping as soon as its count or range is
// satisfied. Any other link closes the plan and is applied directly to
// the plan's result. The first error aborts evaluation. A Chain may be
// evaluated more than once.
func (c *Chain) Value() (any, error) {
	if c.err != nil {
		return nil, c.err
	}

	acc := c.seed
	var p *plan
	if collections.IsSequence(acc) {
		p = openPlan()
	}

	for _, l := range c.links {
		var err error
		if acc, p, err = step(p, l, acc); err != nil {
			return nil, fmt.Errorf("%v: %w", l.Op.Name, err)
		}
	}
	if p != nil {
		acc = run(p, acc)
	}
	return acc, nil
}

// step offers one link to the open plan p (nil when fusion is off) and
// returns the new accumulator and plan.
func step(p *plan, l Link, acc any) (any, *plan, error) {
	if p == nil {
		out, err := l.apply(acc)
		if err != nil {
			return nil, nil, err
		}
		// a boundary turns fusion back on for its result
		if l.Op.Kind == Boundary && collections.IsSequence(out) {
			return out, openPlan(), nil
		}
		return out, nil, nil
	}

	res, err := p.fold(l)
	if err != nil {
		return nil, nil, err
	}
	if res == absorbed {
		return acc, p, nil
	}

	log.Debugf("chain: %s closes plan %v (%v)", l.Op.Name, p, res)
	acc = run(p, acc)

	switch {
	case res == closeThenStart && l.Op.Kind != Boundary && collections.IsSequence(acc):
		return step(openPlan(), l, acc)
	case l.Op.Kind == Opaque:
		out, err := l.apply(acc)
		return out, nil, err
	}

	// a boundary, or a fusable link that cannot be folded here: apply it
	// and keep fusing over its result
	out, err := l.apply(acc)
	if err != nil {
		return nil, nil, err
	}
	if collections.IsSequence(out) {
		return out, openPlan(), nil
	}
	return out, nil, nil
}

// MustValue is like [Chain.Value] but panics on error.
func (c *Chain) MustValue() any {
	v, err := c.Value()
	if err != nil {
		panic(err)
	}
	return v
}
