// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// Asynchronous combinators.
//
// Each combinator creates a fresh pending wrapper and one continuation
// goroutine. The continuation blocks on the parent's settlement before
// doing anything, so the steps of one chain run strictly one after
// another and exactly once; independent chains are scheduled freely by
// the runtime. Panics escaping a continuation are captured into Left at
// the settlement boundary (see capture).

// MapAsync applies f to the Right value once the wrapper settles.
// A Left settlement passes through unchanged and f is never invoked.
func MapAsync[L, R, B any](a *AsyncEither[L, R], f func(R) B) *AsyncEither[L, B] {
	next := newPending[L, B]()
	go func() {
		defer next.capture()
		e := a.Await()
		if !e.isRight {
			next.settle(Left[L, B](e.left))
			return
		}
		next.settle(Right[L](f(e.right)))
	}()
	return next
}

// FlatMapAsync sequences the Right value into the chain produced by f.
// The returned wrapper adopts the settlement of f's result directly —
// no double wrapping. A Left settlement short-circuits and f is never
// invoked.
func FlatMapAsync[L, R, B any](a *AsyncEither[L, R], f func(R) *AsyncEither[L, B]) *AsyncEither[L, B] {
	next := newPending[L, B]()
	go func() {
		defer next.capture()
		e := a.Await()
		if !e.isRight {
			next.settle(Left[L, B](e.left))
			return
		}
		next.settle(f(e.right).Await())
	}()
	return next
}

// FlatMapEitherAsync sequences the Right value into a synchronous
// Either produced by f. A Left settlement short-circuits.
func FlatMapEitherAsync[L, R, B any](a *AsyncEither[L, R], f func(R) Either[L, B]) *AsyncEither[L, B] {
	next := newPending[L, B]()
	go func() {
		defer next.capture()
		e := a.Await()
		if !e.isRight {
			next.settle(Left[L, B](e.left))
			return
		}
		next.settle(f(e.right))
	}()
	return next
}

// MapErrorAsync applies f to the Left value once the wrapper settles.
// A Right settlement passes through unchanged.
func MapErrorAsync[L, M, R any](a *AsyncEither[L, R], f func(L) M) *AsyncEither[M, R] {
	next := newPending[M, R]()
	go func() {
		defer next.capture()
		e := a.Await()
		if e.isRight {
			next.settle(Right[M](e.right))
			return
		}
		next.settle(Left[M, R](f(e.left)))
	}()
	return next
}

// Filter demotes a Right settlement to Left when pred rejects the
// value, using errFactory to produce the failure. pred may block; it is
// the asynchronous form of a predicate. A Left settlement passes
// through and neither function is invoked.
func (a *AsyncEither[L, R]) Filter(pred func(R) bool, errFactory func(R) L) *AsyncEither[L, R] {
	next := newPending[L, R]()
	go func() {
		defer next.capture()
		e := a.Await()
		if !e.isRight || pred(e.right) {
			next.settle(e)
			return
		}
		next.settle(Left[L, R](errFactory(e.right)))
	}()
	return next
}

// Recover replaces a Left settlement with the chain produced by f.
// f receives the full Either in its Left state, so it can inspect
// context before deciding how to recover. A Right settlement passes
// through and f is never invoked.
func (a *AsyncEither[L, R]) Recover(f func(Either[L, R]) *AsyncEither[L, R]) *AsyncEither[L, R] {
	next := newPending[L, R]()
	go func() {
		defer next.capture()
		e := a.Await()
		if e.isRight {
			next.settle(e)
			return
		}
		next.settle(f(e).Await())
	}()
	return next
}

// Tap runs f on the Right settlement for its side effect only, with the
// same swallow-and-log policy as [Either.Tap]. The side effect has run
// before the returned wrapper settles, so any Await on it observes the
// effect.
func (a *AsyncEither[L, R]) Tap(f func(R)) *AsyncEither[L, R] {
	next := newPending[L, R]()
	go func() {
		next.settle(a.Await().Tap(f))
	}()
	return next
}

// TapError runs f on the Left settlement for its side effect only.
func (a *AsyncEither[L, R]) TapError(f func(L)) *AsyncEither[L, R] {
	next := newPending[L, R]()
	go func() {
		next.settle(a.Await().TapError(f))
	}()
	return next
}

// TapBoth runs onRight or onLeft, whichever applies and is non-nil.
func (a *AsyncEither[L, R]) TapBoth(onRight func(R), onLeft func(L)) *AsyncEither[L, R] {
	next := newPending[L, R]()
	go func() {
		next.settle(a.Await().TapBoth(onRight, onLeft))
	}()
	return next
}

// GetOrElse awaits settlement and returns the Right value, or def on a
// Left.
func (a *AsyncEither[L, R]) GetOrElse(def R) R {
	return a.Await().GetOrElse(def)
}

// GetOrElseFunc awaits settlement and returns the Right value; def is
// evaluated lazily, only on a Left.
func (a *AsyncEither[L, R]) GetOrElseFunc(def func() R) R {
	e := a.Await()
	if e.isRight {
		return e.right
	}
	return def()
}

// GetErrorOrElse awaits settlement and returns the Left value, or def
// on a Right.
func (a *AsyncEither[L, R]) GetErrorOrElse(def L) L {
	return a.Await().GetErrorOrElse(def)
}

// GetErrorOrElseFunc awaits settlement and returns the Left value; def
// is evaluated lazily, only on a Right.
func (a *AsyncEither[L, R]) GetErrorOrElseFunc(def func() L) L {
	e := a.Await()
	if !e.isRight {
		return e.left
	}
	return def()
}

// ToResult awaits settlement and converts to a [Result] record.
func (a *AsyncEither[L, R]) ToResult() Result[L, R] {
	return a.Await().ToResult()
}
