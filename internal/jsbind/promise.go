//go:build js

package jsbind

import (
	"context"
	"syscall/js"
)

// Promise is a settled-once JS promise seen from Go.
type Promise[T any] interface {
	Then(cb func(value T)) Promise[T]
	Catch(cb func(err error)) Promise[T]
}

var _ Promise[struct{}] = jsPromise[struct{}]{}

type jsPromise[T any] struct {
	value   js.Value
	convert func(value js.Value) T
}

// once registers cb under method and releases the JS function after its
// single invocation.
func (p jsPromise[T]) once(method string, cb func(arg js.Value)) {
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer fn.Release()
		arg := js.Undefined()
		if len(args) > 0 {
			arg = args[0]
		}
		cb(arg)
		return nil
	})
	p.value.Call(method, fn)
}

func (p jsPromise[T]) Then(cb func(value T)) Promise[T] {
	p.once("then", func(arg js.Value) {
		cb(p.convert(arg))
	})
	return p
}

func (p jsPromise[T]) Catch(cb func(err error)) Promise[T] {
	p.once("catch", func(arg js.Value) {
		cb(js.Error{Value: arg})
	})
	return p
}

// dynamicImport wraps import(), which is syntax rather than a global
// function.
var dynamicImport = js.Global().Get("Function").New("url", "return import(url)")

// Import loads an ES module with a dynamic import().
func Import(url string) Promise[js.Value] {
	return jsPromise[js.Value]{
		value: dynamicImport.Invoke(url),
		convert: func(value js.Value) js.Value {
			return value
		},
	}
}

// Await blocks until the promise settles or ctx is done. The calling
// goroutine must not be the one the JS event loop is waiting on.
func Await[T any](ctx context.Context, p Promise[T]) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	p.Then(func(value T) {
		done <- result{value: value}
	}).Catch(func(err error) {
		done <- result{err: err}
	})
	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
