package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func link(name string, args ...any) Link {
	return Link{Op: builtin(name), Args: Args(args)}
}

func foldAll(t *testing.T, links ...Link) (*plan, foldResult) {
	t.Helper()
	p := openPlan()
	res := absorbed
	for _, l := range links {
		var err error
		res, err = p.fold(l)
		require.NoError(t, err, l.String())
		if res != absorbed {
			break
		}
	}
	return p, res
}

func TestFoldRules(t *testing.T) {
	identity := func(v any) any { return v }

	tests := []struct {
		name  string
		links []Link
		want  foldResult
		plan  string
	}{
		{"map filter", []Link{link(OpMap, identity), link(OpFilter, identity)}, absorbed, "{map filter}"},
		{"reverse before range", []Link{link(OpReverse), link(OpSlice, 1, 3)}, absorbed, "{range[1:3] backward}"},
		{"reverse after range", []Link{link(OpSlice, 1, 3), link(OpReverse)}, absorbed, "{range[1:3] reverse-output}"},
		{"reverse after count", []Link{link(OpTake, 2), link(OpReverse)}, absorbed, "{count=2 reverse-output}"},
		{"second range", []Link{link(OpSlice, 1), link(OpTail)}, closeThenStart, "{range[1:]}"},
		{"range after count", []Link{link(OpTake, 3), link(OpSlice, 1)}, closeThenStart, "{count=3}"},
		{"map after count", []Link{link(OpTake, 3), link(OpMap, identity)}, closeThenStart, "{count=3}"},
		{"filter after range", []Link{link(OpSlice, 0, 2), link(OpFilter, identity)}, closeThenStart, "{range[0:2]}"},
		{"negative slice", []Link{link(OpSlice, -2)}, closeThenApply, "{}"},
		{"negative take", []Link{link(OpTake, -1)}, closeThenApply, "{}"},
		{"count tightens", []Link{link(OpTake, 5), link(OpTake, 2), link(OpTake, 4)}, absorbed, "{count=2}"},
		{"first", []Link{link(OpFirst)}, absorbed, "{count=1 element}"},
		{"take after first", []Link{link(OpFirst), link(OpTake, 1)}, closeThenStart, "{count=1 element}"},
		{"tap after first", []Link{link(OpHead), link(OpTap, func(any) {})}, absorbed, "{count=1 element tap}"},
		{"last", []Link{link(OpLast)}, absorbed, "{count=1 backward element}"},
		{"last after count", []Link{link(OpTake, 2), link(OpLast)}, closeThenStart, "{count=2}"},
		{"take after reverse output", []Link{link(OpSlice, 1, 4), link(OpReverse), link(OpTake, 1)}, closeThenStart, "{range[1:4] reverse-output}"},
		{"first after reverse output", []Link{link(OpTake, 3), link(OpReverse), link(OpFirst)}, closeThenStart, "{count=3 reverse-output}"},
		{"boundary", []Link{link(OpMap, identity), link(OpToArray)}, closeThenStart, "{map}"},
		{"opaque", []Link{{Op: Operation{Name: "sum", Fn: sliceOp}}}, closeThenApply, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, res := foldAll(t, tt.links...)
			assert.Equal(t, tt.want, res)
			assert.Equal(t, tt.plan, p.String())
		})
	}
}

func TestFoldTapOverwrites(t *testing.T) {
	var first, second int
	p, _ := foldAll(t,
		link(OpTap, func(any) { first++ }),
		link(OpTap, func(any) { second++ }),
	)
	run(p, []int{1})
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.False(t, p.shaped)
}

func TestFoldInvalidArguments(t *testing.T) {
	for _, l := range []Link{
		link(OpTake, "x"),
		link(OpSlice, 0, "y"),
		link(OpTap, 42),
	} {
		_, err := openPlan().fold(l)
		assert.ErrorIs(t, err, ErrInvalidArgument, l.String())
	}
}

func TestPlanBudget(t *testing.T) {
	p := &plan{}
	_, ok := p.budget()
	assert.False(t, ok)

	p = &plan{hasRange: true, start: 2}
	_, ok = p.budget()
	assert.False(t, ok)

	p = &plan{hasRange: true, hasEnd: true, start: 2, end: 6, hasCount: true, count: 3}
	n, ok := p.budget()
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	p.count = 10
	n, _ = p.budget()
	assert.Equal(t, 4, n)
}

func TestExecuteVisits(t *testing.T) {
	p, _ := foldAll(t, link(OpSlice, 2, 4))
	out, visited := execute(p, []int{0, 1, 2, 3, 4, 5, 6})
	assert.Equal(t, []any{2, 3}, out)
	assert.Equal(t, 4, visited)

	p, _ = foldAll(t, link(OpLast))
	out, visited = execute(p, []int{0, 1, 2})
	assert.Equal(t, 2, out)
	assert.Equal(t, 1, visited)

	p, _ = foldAll(t, link(OpSlice, 3, 1))
	out, visited = execute(p, []int{0, 1, 2})
	assert.Equal(t, []any{}, out)
	assert.Equal(t, 0, visited)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "filter", Filter.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.True(t, Tap.Fusable())
	assert.False(t, Opaque.Fusable())
	assert.False(t, Boundary.Fusable())
}
