// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

// Result is a plain discriminated record for interop with callers that
// do not speak Either. When Success is true only Value is meaningful;
// otherwise only Error is.
type Result[L, R any] struct {
	Success bool
	Value   R
	Error   L
}

// ToResult converts the Either to a Result record.
func (e Either[L, R]) ToResult() Result[L, R] {
	if e.isRight {
		return Result[L, R]{Success: true, Value: e.right}
	}
	return Result[L, R]{Error: e.left}
}

// FromResult rebuilds an Either from a Result record.
func FromResult[L, R any](r Result[L, R]) Either[L, R] {
	if r.Success {
		return Right[L](r.Value)
	}
	return Left[L, R](r.Error)
}
