package funcjs_test

import (
	"fmt"

	funcjs "github.com/hasbyte1/go-funcjs"
)

func ExampleWrap() {
	users := []map[string]any{
		{"name": "zhangsan", "age": 53},
		{"name": "lisi", "age": 44},
		{"name": "wangwu", "age": 25},
	}
	out, _ := funcjs.Wrap(users).
		Call("sortBy", "age").
		Map("name").
		Take(2).
		Value()
	fmt.Println(out)
	// Output: [wangwu lisi]
}

func ExampleCall() {
	out, _ := funcjs.Call("kebabCase", "webkitPerspectiveOriginX")
	fmt.Println(out)
	// Output: webkit-perspective-origin-x
}
