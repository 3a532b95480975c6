// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "fmt"

// UnwrapErrorCode is the machine-readable code carried by UnwrapError
// values created through NewUnwrapError.
const UnwrapErrorCode = "EITHER_UNWRAP_ERROR"

// unwrapErrorMessage is the default human-readable message.
const unwrapErrorMessage = "Either unwrap error"

// UnwrapError reports a contract violation: extracting the side of an
// Either that is not present. It is raised by panic, never stored as
// state.
type UnwrapError struct {
	Code    string
	Message string
}

// NewUnwrapError creates an UnwrapError with the given message and the
// default code. An empty message falls back to the package default.
func NewUnwrapError(message string) *UnwrapError {
	if message == "" {
		message = unwrapErrorMessage
	}
	return &UnwrapError{Code: UnwrapErrorCode, Message: message}
}

// Error implements the error interface.
func (e *UnwrapError) Error() string {
	return e.Message
}

// PanicError wraps a panic value recovered at an asynchronous
// settlement boundary so it can travel through an error-typed Left.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("either: captured panic: %v", e.Value)
}
