// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// AsyncEither owns one pending computation that settles to an Either
// exactly once. Settlement never fails as observed externally: any
// failure of the underlying computation has been captured into a Left
// before a waiter can see it.
//
// An AsyncEither is never mutated after settlement. Combinators
// register a continuation against the current wrapper and return a
// brand-new pending wrapper, so chains form an immutable pipeline and
// the original may keep being derived from concurrently.
type AsyncEither[L, R any] struct {
	done chan struct{}
	res  Either[L, R]
}

// newPending creates an unsettled AsyncEither.
func newPending[L, R any]() *AsyncEither[L, R] {
	return &AsyncEither[L, R]{done: make(chan struct{})}
}

// settle records the final Either and releases all waiters.
// Must be called exactly once; the channel close is the happens-before
// barrier between this write and every Await.
func (a *AsyncEither[L, R]) settle(e Either[L, R]) {
	a.res = e
	close(a.done)
}

// settled creates an AsyncEither that is already resolved to e.
func settled[L, R any](e Either[L, R]) *AsyncEither[L, R] {
	a := newPending[L, R]()
	a.settle(e)
	return a
}

// capture converts a panic escaping a continuation into a Left
// settlement. A value that type-asserts to L is captured directly;
// when L is error the value is wrapped in [*PanicError]; anything else
// re-panics, since the failure channel cannot hold it.
func (a *AsyncEither[L, R]) capture() {
	r := recover()
	if r == nil {
		return
	}
	if l, ok := r.(L); ok {
		a.settle(Left[L, R](l))
		return
	}
	var zero L
	if perr, ok := any(&zero).(*error); ok {
		*perr = &PanicError{Value: r}
		a.settle(Left[L, R](zero))
		return
	}
	panic(r)
}

// Await blocks until the computation settles and returns its Either.
// Await never fails; it may be called any number of times from any
// goroutine.
func (a *AsyncEither[L, R]) Await() Either[L, R] {
	<-a.done
	return a.res
}

// TryAwait returns (result, true) when already settled,
// or (zero, false) while still pending.
func (a *AsyncEither[L, R]) TryAwait() (Either[L, R], bool) {
	select {
	case <-a.done:
		return a.res, true
	default:
		var zero Either[L, R]
		return zero, false
	}
}

// Done returns a channel that is closed at settlement, for composing
// with select alongside other channels. After Done is closed, Await
// returns without blocking.
func (a *AsyncEither[L, R]) Done() <-chan struct{} {
	return a.done
}

// AsyncRight creates an AsyncEither already settled to Right(v).
func AsyncRight[L, R any](v R) *AsyncEither[L, R] {
	return settled(Right[L, R](v))
}

// AsyncLeft creates an AsyncEither already settled to Left(e).
func AsyncLeft[L, R any](e L) *AsyncEither[L, R] {
	return settled(Left[L, R](e))
}

// FromEither wraps an already-built Either with no extra deferral.
func FromEither[L, R any](e Either[L, R]) *AsyncEither[L, R] {
	return settled(e)
}

// Go runs f in a new goroutine and settles with its result.
// A panic in f is captured into Left per the capture rule.
func Go[L, R any](f func() Either[L, R]) *AsyncEither[L, R] {
	a := newPending[L, R]()
	go func() {
		defer a.capture()
		a.settle(f())
	}()
	return a
}

// TryCatch runs f in a new goroutine, settling Right on a nil error and
// Left on a non-nil one. The failure type defaults to error; a panic in
// f settles Left holding a [*PanicError].
func TryCatch[R any](f func() (R, error)) *AsyncEither[error, R] {
	return Go(func() Either[error, R] {
		v, err := f()
		if err != nil {
			return Left[error, R](err)
		}
		return Right[error](v)
	})
}

// FromPromise adopts an in-flight computation that will deliver either
// a value or an error over the given channel pair. The first delivery
// settles the wrapper; an error delivery is captured into Left rather
// than surfacing as a failure of the wrapper itself.
func FromPromise[R any](values <-chan R, errs <-chan error) *AsyncEither[error, R] {
	a := newPending[error, R]()
	go func() {
		select {
		case v := <-values:
			a.settle(Right[error](v))
		case err := <-errs:
			a.settle(Left[error, R](err))
		}
	}()
	return a
}
