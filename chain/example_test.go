package chain_test

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-funcjs/arr"
	"github.com/hasbyte1/go-funcjs/chain"
)

func ExampleChain_Value() {
	visits := 0
	out, _ := chain.New(nil, arr.Range(2_000_000)).
		Map(func(n int) int {
			visits++
			return n + 1
		}).
		Filter(func(n int) bool { return n%2 == 0 }).
		Reverse().
		Slice(1, 4).
		Value()
	fmt.Println(out, visits)
	// Output: [1999998 1999996 1999994] 7
}

func ExampleChain_First() {
	fmt.Println(chain.New(nil, []int{1, 2, 3}).First().MustValue())
	fmt.Println(chain.New(nil, []int{1, 2, 3}).Last().MustValue())
	// Output:
	// 1
	// 3
}

func ExampleChain_Split() {
	out := chain.New(nil, "func.js,juth2,soya2d").
		Split(",").
		Map(strings.ToUpper).
		Take(2).
		MustValue()
	fmt.Println(out)
	// Output: [FUNC.JS JUTH2]
}

func ExampleRegistry_Alias() {
	reg := chain.NewRegistry()
	_ = reg.RegisterAll(chain.Builtins()...)
	_ = reg.Alias("where", chain.OpFilter)
	_ = reg.Alias("top", chain.OpTake)

	out := chain.New(reg, []int{5, 8, 13, 21, 34}).
		Call("where", func(n int) bool { return n > 10 }).
		Call("top", 2).
		MustValue()
	fmt.Println(out)
	// Output: [13 21]
}
