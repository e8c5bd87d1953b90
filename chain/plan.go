package chain

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-funcjs/iteratee"
)

// foldResult tells the evaluation loop what happened to a link offered to
// the open plan.
type foldResult int

const (
	// absorbed: the link is part of the plan; nothing runs yet.
	absorbed foldResult = iota
	// closeThenApply: run the plan, then apply the link eagerly to its
	// result.
	closeThenApply
	// closeThenStart: run the plan, then offer the link to a fresh plan.
	closeThenStart
)

func (r foldResult) String() string {
	switch r {
	case absorbed:
		return "absorbed"
	case closeThenApply:
		return "close-then-apply"
	case closeThenStart:
		return "close-then-start"
	}
	return fmt.Sprintf("foldResult(%d)", int(r))
}

// goal is one map or filter step applied per element.
type goal struct {
	kind Kind
	fn   iteratee.Func
}

// plan describes one fused traversal. It lives for a single Value call.
type plan struct {
	goals []goal

	count    int
	hasCount bool

	start, end int
	hasRange   bool
	hasEnd     bool

	reverseTraversal bool
	reverseOutput    bool
	returnEl         bool
	tap              func(any)

	// dirty is set once any link is absorbed; shaped once a link other
	// than tap is.
	dirty  bool
	shaped bool
}

func openPlan() *plan {
	return &plan{}
}

// bounded reports whether a count or a range already fixes which elements
// the plan produces. Steps that depend on element positions cannot be
// folded in after that point.
func (p *plan) bounded() bool {
	return p.hasCount || p.hasRange
}

// fold tries to absorb l into the plan.
func (p *plan) fold(l Link) (foldResult, error) {
	kind := l.Op.Kind
	if !kind.Fusable() {
		if kind == Boundary {
			return closeThenStart, nil
		}
		return closeThenApply, nil
	}
	// after first/head/last the result is a single element, not a sequence
	if p.returnEl && kind != Tap {
		return closeThenStart, nil
	}

	switch kind {
	case Map, Filter:
		if p.bounded() {
			return closeThenStart, nil
		}
		p.goals = append(p.goals, goal{kind: kind, fn: iteratee.New(l.Args.Get(0))})

	case Reverse:
		if p.bounded() {
			p.reverseOutput = !p.reverseOutput
		} else {
			p.reverseTraversal = !p.reverseTraversal
		}

	case Slice, Tail:
		if p.bounded() {
			return closeThenStart, nil
		}
		begin, end, hasEnd := 1, 0, false
		if kind == Slice {
			var err error
			if begin, end, hasEnd, err = sliceBounds(l.Args); err != nil {
				return closeThenApply, err
			}
		}
		if begin < 0 || (hasEnd && end < 0) {
			// relative to the length, which is unknown until the plan runs
			return closeThenApply, nil
		}
		p.start, p.end, p.hasEnd, p.hasRange = begin, end, hasEnd, true

	case Take:
		if p.reverseOutput {
			return closeThenStart, nil
		}
		if !l.Args.Has(0) {
			break
		}
		n, err := l.Args.Int(0, 0)
		if err != nil {
			return closeThenApply, err
		}
		if n < 0 {
			return closeThenApply, nil
		}
		p.limit(n)

	case First, Head:
		if p.reverseOutput {
			return closeThenStart, nil
		}
		p.limit(1)
		p.returnEl = true

	case Last:
		if p.bounded() {
			return closeThenStart, nil
		}
		p.limit(1)
		p.returnEl = true
		p.reverseTraversal = !p.reverseTraversal

	case Tap:
		interceptor, err := tapFunc(l.Args.Get(0))
		if err != nil {
			return closeThenApply, err
		}
		// only the last tap of a fused run fires
		p.tap = interceptor
	}

	p.dirty = true
	if kind != Tap {
		p.shaped = true
	}
	return absorbed, nil
}

func (p *plan) limit(n int) {
	if !p.hasCount || n < p.count {
		p.count = n
	}
	p.hasCount = true
}

// budget returns the maximum number of elements the plan can produce, and
// false when it is unbounded.
func (p *plan) budget() (int, bool) {
	n, ok := p.count, p.hasCount
	if p.hasRange && p.hasEnd {
		if window := p.end - p.start; !ok || window < n {
			n, ok = window, true
		}
	}
	return n, ok
}

func (p *plan) String() string {
	var parts []string
	for _, g := range p.goals {
		parts = append(parts, g.kind.String())
	}
	if p.hasRange {
		if p.hasEnd {
			parts = append(parts, fmt.Sprintf("range[%d:%d]", p.start, p.end))
		} else {
			parts = append(parts, fmt.Sprintf("range[%d:]", p.start))
		}
	}
	if p.hasCount {
		parts = append(parts, fmt.Sprintf("count=%d", p.count))
	}
	if p.reverseTraversal {
		parts = append(parts, "backward")
	}
	if p.reverseOutput {
		parts = append(parts, "reverse-output")
	}
	if p.returnEl {
		parts = append(parts, "element")
	}
	if p.tap != nil {
		parts = append(parts, "tap")
	}
	return "{" + strings.Join(parts, " ") + "}"
}
