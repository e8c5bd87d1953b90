package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-funcjs/collections"
)

func ExampleEach() {
	collections.Each([]string{"a", "b", "c"}, func(v, i any) bool {
		fmt.Println(i, v)
		return i.(int) < 1
	})
	// Output:
	// 0 a
	// 1 b
}

func ExampleEach_map() {
	collections.Each(map[string]int{"b": 2, "a": 1}, func(v, k any) bool {
		fmt.Println(k, v)
		return true
	})
	// Output:
	// a 1
	// b 2
}

func ExampleMap() {
	libs := []map[string]any{{"name": "func.js"}, {"name": "juth2"}}
	fmt.Println(collections.Map(libs, "name"))
	// Output: [func.js juth2]
}

func ExampleFilter() {
	result := collections.Filter([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExamplePartition() {
	evens, odds := collections.Partition([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
	fmt.Println(evens, odds)
	// Output: [2 4] [1 3 5]
}

func ExampleReduce() {
	sum := collections.Reduce([]int{1, 2, 3}, func(acc, v, _ any) any { return acc.(int) + v.(int) })
	fmt.Println(sum)
	// Output: 6
}

func ExampleSortBy() {
	users := []map[string]any{
		{"name": "lisi", "age": 44},
		{"name": "wangwu", "age": 25},
	}
	fmt.Println(collections.Map(collections.SortBy(users, "age"), "name"))
	// Output: [wangwu lisi]
}

func ExampleToArray() {
	fmt.Println(collections.ToArray("abc"), collections.ToArray(7))
	// Output: [a b c] [7]
}
