package funcjs

import (
	"fmt"
	"sort"

	"github.com/hasbyte1/go-funcjs/chain"
)

var registry = mustRegistry()

func mustRegistry() *chain.Registry {
	reg := chain.NewRegistry()
	for _, ops := range [][]chain.Operation{
		chain.Builtins(),
		collectionOps(),
		arrayOps(),
		objectOps(),
		stringOps(),
		functionOps(),
	} {
		if err := reg.RegisterAll(ops...); err != nil {
			panic(err)
		}
	}
	return reg
}

// Registry returns the registry holding every operation of this module.
// Chains created with [Wrap] resolve names through it.
func Registry() *chain.Registry {
	return registry
}

// Wrap starts a chain over v. If v is already a chain it is returned
// unchanged.
//
//	out, err := funcjs.Wrap(users).
//	    Filter(map[string]any{"active": true}).
//	    Call("sortBy", "age").
//	    Map("name").
//	    Value()
func Wrap(v any) *chain.Chain {
	return chain.New(registry, v)
}

// Chain is an alias of [Wrap].
func Chain(v any) *chain.Chain {
	return Wrap(v)
}

// Call applies the named operation to acc immediately.
//
//	funcjs.Call("kebabCase", "getMyURL") // → "get-my-url", nil
func Call(name string, acc any, args ...any) (any, error) {
	return registry.Call(name, acc, args...)
}

// Mixin registers extra operations. They are opaque to fusion and become
// available both to [Call] and to (*chain.Chain).Call. Operations are
// registered in name order; the first invalid one aborts the rest.
//
// Mixin is meant to be called during program setup, before chains that use
// the new names are evaluated.
func Mixin(ops map[string]chain.Func) error {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := registry.Register(chain.Operation{Name: name, Kind: chain.Opaque, Fn: ops[name]}); err != nil {
			return fmt.Errorf("mixin %q: %w", name, err)
		}
	}
	return nil
}

// Alias registers an existing operation under another name, keeping its
// fusion behaviour.
//
//	funcjs.Alias("where", "filter")
func Alias(alias, target string) error {
	return registry.Alias(alias, target)
}
