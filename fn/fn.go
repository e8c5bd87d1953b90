package fn

import "sync"

// Variadic is the shape of the functions wrapped by [Once], [After] and
// [Compose].
type Variadic func(args ...any) any

// Tap calls interceptor with v and returns v unchanged.
//
//	fn.Tap(items, func(v any) { log.Debugf("items: %v", v) })
func Tap(v any, interceptor func(any)) any {
	if interceptor != nil {
		interceptor(v)
	}
	return v
}

// Alt returns primary(v), or fallback(v) when primary yields nil.
func Alt(v any, primary, fallback func(any) any) any {
	if rs := primary(v); rs != nil {
		return rs
	}
	return fallback(v)
}

// Once returns a function that invokes f on the first call only; later
// calls return nil. It is safe for concurrent use.
func Once(f Variadic) Variadic {
	var once sync.Once
	return func(args ...any) any {
		var rtn any
		once.Do(func() { rtn = f(args...) })
		return rtn
	}
}

// After returns a function that ignores its first count calls and invokes f
// from then on. Ignored calls return the most recent result, nil at first.
//
//	ready := fn.After(2, load)
//	ready() // nil
//	ready() // nil
//	ready() // load()
func After(count int, f Variadic) Variadic {
	var mu sync.Mutex
	remaining := count
	var rtn any
	return func(args ...any) any {
		mu.Lock()
		defer mu.Unlock()
		if remaining <= 0 {
			rtn = f(args...)
		} else {
			remaining--
		}
		return rtn
	}
}

// Compose returns a function that passes its arguments to the first
// function and each result on to the next, left to right.
//
//	inc := func(a ...any) any { return a[0].(int) + 1 }
//	fn.Compose(inc, inc)(1) // → 3
func Compose(fns ...Variadic) Variadic {
	return func(args ...any) any {
		if len(fns) == 0 {
			if len(args) > 0 {
				return args[0]
			}
			return nil
		}
		rs := fns[0](args...)
		for _, f := range fns[1:] {
			if f != nil {
				rs = f(rs)
			}
		}
		return rs
	}
}
