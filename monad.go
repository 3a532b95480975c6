// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// Combinators over Either.
//
// Minimal definition: Map (functor) and FlatMap (monadic bind) on the
// Right channel, with MapError as the Left-channel mirror. Each
// combinator branches only on the variant tag, so composition is O(1)
// regardless of chain length.
//
// None of these recover panics from their transformer function: a
// transformer that panics is a programmer error and fails loudly in the
// synchronous world. The asynchronous combinators capture instead — see
// the Capture section in the package documentation.

// Map applies a pure function to the Right value.
// On Left the error passes through unchanged and f is never invoked.
func Map[L, R, B any](e Either[L, R], f func(R) B) Either[L, B] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, B](e.left)
}

// FlatMap sequences the Right value into another Either, flattening one
// level. On Left the error passes through unchanged and f is never
// invoked.
func FlatMap[L, R, B any](e Either[L, R], f func(R) Either[L, B]) Either[L, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, B](e.left)
}

// MapError applies a pure function to the Left value.
// On Right the value passes through unchanged and f is never invoked.
func MapError[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}

// Filter demotes a Right to a Left when pred rejects the value, using
// errFactory to produce the failure. A Left passes through unchanged
// and neither function is invoked.
func (e Either[L, R]) Filter(pred func(R) bool, errFactory func(R) L) Either[L, R] {
	if !e.isRight || pred(e.right) {
		return e
	}
	return Left[L, R](errFactory(e.right))
}
