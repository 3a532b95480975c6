// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// Either represents a value that is either Left (failure) or Right (success).
// Exactly one payload exists; the other field holds its type's zero value
// and is never observable through the API.
//
// Either is an immutable value type. Combinators allocate a new Either and
// never modify the receiver, so a value may be shared and re-derived freely.
//
// The zero value of Either[L, R] is Left of L's zero value.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left (failure) value.
func Left[L, R any](e L) Either[L, R] {
	return Either[L, R]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{isRight: true, right: v}
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// Unwrap returns the Right value.
// Panics with [*UnwrapError] when called on a Left; check the variant
// first with IsRight, or use GetRight/GetOrElse for a non-panicking path.
func (e Either[L, R]) Unwrap() R {
	if !e.isRight {
		panic(NewUnwrapError("Cannot unwrap Left instance"))
	}
	return e.right
}

// UnwrapError returns the Left value.
// Panics with [*UnwrapError] when called on a Right.
func (e Either[L, R]) UnwrapError() L {
	if e.isRight {
		panic(NewUnwrapError("Cannot unwrapError Right instance"))
	}
	return e.left
}

// GetOrElse returns the Right value, or def when this is a Left.
func (e Either[L, R]) GetOrElse(def R) R {
	if e.isRight {
		return e.right
	}
	return def
}

// GetErrorOrElse returns the Left value, or def when this is a Right.
func (e Either[L, R]) GetErrorOrElse(def L) L {
	if !e.isRight {
		return e.left
	}
	return def
}

// Swap exchanges the failure and success channels.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// Match pattern matches on the Either, calling onLeft or onRight.
func Match[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
