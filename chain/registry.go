package chain

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps operation names to tagged operations. It is filled once at
// setup and read by every chain built on it; reads are safe from multiple
// goroutines.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds op under op.Name. If an operation with that name already
// exists it is replaced.
func (r *Registry) Register(op Operation) error {
	if err := op.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[op.Name] = op
	return nil
}

// RegisterAll registers every operation, stopping at the first invalid one.
func (r *Registry) RegisterAll(ops ...Operation) error {
	for _, op := range ops {
		if err := r.Register(op); err != nil {
			return err
		}
	}
	return nil
}

// Alias registers the operation known as target under a second name. The
// alias keeps the target's Kind, so chains recorded through it still fuse:
//
//	reg.Alias("where", "filter")
//	reg.Alias("top", "take")
func (r *Registry) Alias(alias, target string) error {
	op, ok := r.Lookup(target)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOperation, target)
	}
	op.Name = alias
	return r.Register(op)
}

// Clone returns a new registry holding the same operations. Changes to
// either registry do not affect the other.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := &Registry{ops: make(map[string]Operation, len(r.ops))}
	for name, op := range r.ops {
		out.ops[name] = op
	}
	return out
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	return op, ok
}

// Has reports whether an operation is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call applies the named operation to acc immediately, without fusion.
// Returns ErrUnknownOperation if no operation is registered under name.
func (r *Registry) Call(name string, acc any, args ...any) (any, error) {
	op, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op.Fn(acc, args...)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns a registry holding only [Builtins]. It is built on first
// use and shared by chains created with a nil registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := defaultRegistry.RegisterAll(Builtins()...); err != nil {
			panic(err)
		}
	})
	return defaultRegistry
}
