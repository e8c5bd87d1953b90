package collections_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/hasbyte1/go-funcjs/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func assertSlice(t *testing.T, got, want []any) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

type visit struct {
	value any
	key   any
}

func visits(collection any, right bool) []visit {
	var out []visit
	fn := func(v, k any) bool {
		out = append(out, visit{v, k})
		return true
	}
	if right {
		collections.EachRight(collection, fn)
	} else {
		collections.Each(collection, fn)
	}
	return out
}

var libs = []map[string]any{
	{"name": "func.js", "platform": []any{"web", "nodejs"}, "tags": map[string]any{"utils": true}, "js": true},
	{"name": "juth2", "platform": []any{"web", "java"}, "tags": map[string]any{"utils": false, "middleware": true}, "js": false},
	{"name": "soya2d", "platform": []any{"web"}, "tags": map[string]any{"utils": true}, "js": true},
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

func TestEachShapes(t *testing.T) {
	type point struct {
		X, Y   int
		hidden int
	}

	tests := []struct {
		name       string
		collection any
		want       []visit
	}{
		{"slice", []int{1, 2, 3}, []visit{{1, 0}, {2, 1}, {3, 2}}},
		{"any slice", []any{"a", 2}, []visit{{"a", 0}, {2, 1}}},
		{"array", [2]string{"x", "y"}, []visit{{"x", 0}, {"y", 1}}},
		{"string", "hé!", []visit{{"h", 0}, {"é", 1}, {"!", 2}}},
		{"map", map[string]int{"b": 2, "a": 1}, []visit{{1, "a"}, {2, "b"}}},
		{"int keys", map[int]string{10: "x", 2: "y"}, []visit{{"y", 2}, {"x", 10}}},
		{"set", map[string]struct{}{"z": {}, "m": {}}, []visit{{"m", 0}, {"z", 1}}},
		{"struct", point{X: 1, Y: 2}, []visit{{1, "X"}, {2, "Y"}}},
		{"struct pointer", &point{X: 3, Y: 4}, []visit{{3, "X"}, {4, "Y"}}},
		{"nil", nil, nil},
		{"nil pointer", (*point)(nil), nil},
		{"scalar", 42, nil},
		{"empty", []int{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := visits(tt.collection, false)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Each = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestEachRight(t *testing.T) {
	got := visits([]int{1, 2, 3}, true)
	want := []visit{{3, 2}, {2, 1}, {1, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("EachRight = %v; want %v", got, want)
	}

	got = visits("hé!", true)
	want = []visit{{"!", 2}, {"é", 1}, {"h", 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("EachRight string = %v; want %v", got, want)
	}

	got = visits(map[string]int{"a": 1, "b": 2}, true)
	want = []visit{{2, "b"}, {1, "a"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("EachRight map = %v; want %v", got, want)
	}
}

func TestEachStopsOnFalse(t *testing.T) {
	n := 0
	collections.Each([]int{1, 2, 3, 4}, func(v, _ any) bool {
		n++
		return v.(int) < 2
	})
	if n != 2 {
		t.Fatalf("Each visited %d elements; want 2", n)
	}

	n = 0
	collections.EachRight([]int{1, 2, 3, 4}, func(v, _ any) bool {
		n++
		return false
	})
	if n != 1 {
		t.Fatalf("EachRight visited %d elements; want 1", n)
	}
}

func TestAllAndBackward(t *testing.T) {
	var keys []any
	for _, k := range collections.All([]string{"a", "b", "c"}) {
		keys = append(keys, k)
	}
	assertSlice(t, keys, []any{0, 1, 2})

	var values []any
	for v := range collections.Backward([]string{"a", "b", "c"}) {
		values = append(values, v)
		if len(values) == 2 {
			break
		}
	}
	assertSlice(t, values, []any{"c", "b"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Shape
// ─────────────────────────────────────────────────────────────────────────────

func TestIsSequence(t *testing.T) {
	for _, v := range []any{[]int{1}, []any{}, [3]int{}, "abc"} {
		if !collections.IsSequence(v) {
			t.Fatalf("IsSequence(%#v) = false; want true", v)
		}
	}
	for _, v := range []any{nil, "", 42, map[string]int{}, struct{}{}} {
		if collections.IsSequence(v) {
			t.Fatalf("IsSequence(%#v) = true; want false", v)
		}
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		collection any
		want       int
	}{
		{[]int{1, 2, 3}, 3},
		{"func.js", 7},
		{"hé", 2},
		{map[string]int{"a": 1}, 1},
		{struct{ A, B int }{}, 2},
		{nil, 0},
		{42, 0},
	}
	for _, tt := range tests {
		if got := collections.Size(tt.collection); got != tt.want {
			t.Fatalf("Size(%#v) = %d; want %d", tt.collection, got, tt.want)
		}
	}
}

func TestToArray(t *testing.T) {
	assertSlice(t, collections.ToArray([]int{1, 2, 3}), []any{1, 2, 3})
	assertSlice(t, collections.ToArray("abc"), []any{"a", "b", "c"})
	assertSlice(t, collections.ToArray(map[string]int{"y": 2, "x": 1}), []any{1, 2})
	assertSlice(t, collections.ToArray(42), []any{42})
	if got := collections.ToArray(nil); len(got) != 0 {
		t.Fatalf("ToArray(nil) = %v; want empty", got)
	}

	src := []any{1, 2}
	cp := collections.ToArray(src)
	cp[0] = 99
	if src[0] != 1 {
		t.Fatal("ToArray did not copy the slice")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestMap(t *testing.T) {
	got := collections.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	assertSlice(t, got, []any{2, 4, 6})

	assertSlice(t, collections.Map(libs, "name"), []any{"func.js", "juth2", "soya2d"})
	assertSlice(t, collections.Map(map[string]int{"a": 1, "b": 2}, nil), []any{1, 2})
	assertSlice(t, collections.Map([]string{"a", "b"}, func(_, k any) any { return k }), []any{0, 1})
}

func TestFlatMap(t *testing.T) {
	got := collections.FlatMap([]any{[]int{1, 2}, []any{[]int{3}}, 4}, nil)
	if len(got) != 4 || got[0] != 1 || got[1] != 2 || got[3] != 4 {
		t.Fatalf("FlatMap = %v", got)
	}
	assertSlice(t, collections.FlatMap([]string{"ab"}, nil), []any{"ab"})
}

func TestFilter(t *testing.T) {
	got := collections.Filter([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	assertSlice(t, got, []any{2, 4, 6})

	names := collections.Map(collections.Filter(libs, map[string]any{"tags": map[string]any{"utils": true}}), "name")
	assertSlice(t, names, []any{"func.js", "soya2d"})

	names = collections.Map(collections.Filter(libs, "js"), "name")
	assertSlice(t, names, []any{"func.js", "soya2d"})
}

func TestReject(t *testing.T) {
	got := collections.Reject([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 1 })
	assertSlice(t, got, []any{2, 4})
}

func TestPartition(t *testing.T) {
	evens, odds := collections.Partition([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
	assertSlice(t, evens, []any{2, 4})
	assertSlice(t, odds, []any{1, 3, 5})
}

func TestReduce(t *testing.T) {
	sum := func(acc, v, _ any) any { return acc.(int) + v.(int) }
	if got := collections.Reduce([]int{1, 2, 3, 4}, sum); got != 10 {
		t.Fatalf("Reduce = %v; want 10", got)
	}
	if got := collections.Reduce([]int{1, 2, 3, 4}, sum, 100); got != 110 {
		t.Fatalf("Reduce with initial = %v; want 110", got)
	}
	if got := collections.Reduce([]int{}, sum); got != nil {
		t.Fatalf("Reduce on empty = %v; want nil", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

func TestFind(t *testing.T) {
	v, ok := collections.Find([]int{1, 2, 3, 4}, func(n int) bool { return n > 2 })
	if !ok || v != 3 {
		t.Fatalf("Find = %v, %v; want 3, true", v, ok)
	}
	v, ok = collections.FindLast([]int{1, 2, 3, 4}, func(n int) bool { return n < 3 })
	if !ok || v != 2 {
		t.Fatalf("FindLast = %v, %v; want 2, true", v, ok)
	}
	if _, ok = collections.Find([]int{}, nil); ok {
		t.Fatal("Find on empty should return false")
	}
}

func TestEverySome(t *testing.T) {
	odd := func(n int) bool { return n%2 == 1 }
	if !collections.Every([]int{1, 3, 5}, odd) {
		t.Fatal("Every should be true")
	}
	if collections.Every([]int{1, 2}, odd) {
		t.Fatal("Every should be false")
	}
	if !collections.Every([]int{}, odd) {
		t.Fatal("Every on empty should be true")
	}
	if !collections.Some([]int{2, 3}, odd) {
		t.Fatal("Some should be true")
	}
	if collections.Some(libs, map[string]any{"name": "lodash"}) {
		t.Fatal("Some should be false")
	}
}

func TestIncludes(t *testing.T) {
	if !collections.Includes([]any{1, []int{2}}, []int{2}) {
		t.Fatal("Includes should deep-compare")
	}
	if collections.Includes([]int{1, 2}, 3) {
		t.Fatal("Includes should be false")
	}
	if !collections.Includes("func.js", ".js") {
		t.Fatal("Includes on string should match substrings")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

func TestGroupBy(t *testing.T) {
	groups := collections.GroupBy([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
	assertSlice(t, groups[true], []any{2, 4})
	assertSlice(t, groups[false], []any{1, 3, 5})

	byPlatform := collections.GroupBy(libs, "platform")
	if len(byPlatform) != 3 {
		t.Fatalf("GroupBy unhashable keys = %d groups; want 3", len(byPlatform))
	}
}

// boxed holds an uncomparable value behind an interface field, so its type
// is comparable but hashing it would panic.
type boxed struct{ V any }

func TestGroupingUncomparableKeys(t *testing.T) {
	toBox := func(n int) any { return boxed{[]int{n % 2}} }

	groups := collections.GroupBy([]int{1, 2, 3}, toBox)
	if len(groups) != 2 {
		t.Fatalf("GroupBy = %v; want 2 groups", groups)
	}
	for _, members := range groups {
		if len(members) == 2 {
			assertSlice(t, members, []any{1, 3})
		}
	}

	keyed := collections.KeyBy([]int{1, 2, 3}, toBox)
	if len(keyed) != 2 {
		t.Fatalf("KeyBy = %v; want 2 keys", keyed)
	}

	counts := collections.CountBy([]int{1, 2, 3}, toBox)
	total := 0
	for _, n := range counts {
		total += n
	}
	if len(counts) != 2 || total != 3 {
		t.Fatalf("CountBy = %v", counts)
	}

	// comparable dynamic values still group by value
	plain := collections.GroupBy([]int{1, 2, 3}, func(n int) any { return boxed{n % 2} })
	assertSlice(t, plain[boxed{1}], []any{1, 3})
}

func TestKeyByCountBy(t *testing.T) {
	keyed := collections.KeyBy(libs, "name")
	if keyed["juth2"].(map[string]any)["js"] != false {
		t.Fatalf("KeyBy = %v", keyed)
	}

	counts := collections.CountBy(libs, "js")
	if counts[true] != 2 || counts[false] != 1 {
		t.Fatalf("CountBy = %v", counts)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

func TestSortBy(t *testing.T) {
	assertSlice(t, collections.SortBy([]int{9, 80, 7}), []any{7, 9, 80})

	users := []map[string]any{
		{"name": "zhangsan", "age": 53},
		{"name": "lisi", "age": 44},
		{"name": "wangwu", "age": 25},
		{"name": "zhaoliu", "age": 44},
	}
	names := collections.Map(collections.SortBy(users, "age", "name"), "name")
	assertSlice(t, names, []any{"wangwu", "lisi", "zhaoliu", "zhangsan"})

	assertSlice(t, collections.SortBy([]any{nil, 2, 1.5}), []any{1.5, 2, nil})

	// the key is the original index, however elements move while sorting
	letters := []string{"d", "c", "b", "a"}
	seen := map[any]any{}
	byIndex := collections.SortBy(letters, func(v, k any) any {
		if prev, ok := seen[v]; ok && prev != k {
			t.Fatalf("element %v got key %v after %v", v, k, prev)
		}
		seen[v] = k
		return -k.(int)
	})
	assertSlice(t, byIndex, []any{"a", "b", "c", "d"})
	if seen["a"] != 3 || seen["d"] != 0 {
		t.Fatalf("keys = %v", seen)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b any
		want int
	}{
		{1, 2, -1},
		{2.5, 2, 1},
		{uint8(3), 3, 0},
		{"a", "b", -1},
		{false, true, -1},
		{nil, 1, 1},
		{1, nil, -1},
		{nil, nil, 0},
	}
	for _, tt := range tests {
		if got := collections.Compare(tt.a, tt.b); got != tt.want {
			t.Fatalf("Compare(%v, %v) = %d; want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestShuffleSample(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	shuffled := collections.Shuffle(items)
	got := make([]int, len(shuffled))
	for i, v := range shuffled {
		got[i] = v.(int)
	}
	sort.Ints(got)
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("Shuffle lost elements: %v", shuffled)
	}

	if s := collections.Sample(items); !collections.Includes(items, s) {
		t.Fatalf("Sample returned foreign value %v", s)
	}
	if collections.Sample([]int{}) != nil {
		t.Fatal("Sample on empty should be nil")
	}
	if n := len(collections.SampleSize(items, 3)); n != 3 {
		t.Fatalf("SampleSize(3) len = %d", n)
	}
	if n := len(collections.SampleSize(items, 10)); n != 5 {
		t.Fatalf("SampleSize(10) len = %d", n)
	}
}
