package chain

import (
	"github.com/ghetzel/go-stockutil/log"
	"github.com/hasbyte1/go-funcjs/collections"
	"github.com/hasbyte1/go-funcjs/iteratee"
)

// run executes p over collection once and fires its deferred tap with the
// result. A plan that absorbed nothing returns collection unchanged, and a
// plan holding only a tap hands collection to the tap as is.
func run(p *plan, collection any) any {
	if !p.dirty {
		return collection
	}

	result := collection
	if p.shaped {
		var visited int
		result, visited = execute(p, collection)
		log.Debugf("chain: fused pass %v visited %d element(s)", p, visited)
	}
	if p.tap != nil {
		p.tap(result)
	}
	return result
}

// execute performs the single traversal described by p and returns the
// result with the number of source elements visited.
func execute(p *plan, collection any) (any, int) {
	out := make([]any, 0)
	budget, bounded := p.budget()
	if bounded && budget <= 0 {
		return p.finish(out), 0
	}

	visited, accepted := 0, 0
	visit := func(value, key any) bool {
		visited++
		v := value
		for _, g := range p.goals {
			switch g.kind {
			case Map:
				v = g.fn(v, key)
			case Filter:
				if !iteratee.Truthy(g.fn(v, key)) {
					return true
				}
			}
		}

		idx := accepted
		accepted++
		if p.hasRange {
			if idx < p.start {
				return true
			}
			if p.hasEnd && idx >= p.end {
				return false
			}
		}

		out = append(out, v)
		if bounded && len(out) >= budget {
			return false
		}
		return !(p.hasRange && p.hasEnd && accepted >= p.end)
	}

	if p.reverseTraversal {
		collections.EachRight(collection, visit)
	} else {
		collections.Each(collection, visit)
	}
	return p.finish(out), visited
}

// finish applies the output order and unwraps single-element results.
func (p *plan) finish(out []any) any {
	if p.reverseOutput {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if p.returnEl {
		if len(out) == 0 {
			return nil
		}
		return out[0]
	}
	return out
}
