// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import (
	"log"
	"sync/atomic"
)

// The tap family runs observational side effects without disturbing the
// pipeline. A panic inside a tap callback is recovered, reported to the
// installed sink, and suppressed; the receiver is returned unchanged.
// Swallow, log, continue — inspection must never derail the primary
// computation.

// tapLogger holds the installed sink as a func(any).
var tapLogger atomic.Value

func init() {
	tapLogger.Store(defaultTapLogger)
}

// defaultTapLogger writes through the standard logger (stderr).
func defaultTapLogger(recovered any) {
	log.Printf("either: tap callback panicked: %v", recovered)
}

// SetTapLogger installs the sink that receives panic values recovered
// from tap callbacks. A nil sink restores the default, which writes to
// the standard logger. Safe for concurrent use.
func SetTapLogger(f func(recovered any)) {
	if f == nil {
		f = defaultTapLogger
	}
	tapLogger.Store(f)
}

// guardTap runs f, reporting any panic to the installed sink.
func guardTap(f func()) {
	defer func() {
		if r := recover(); r != nil {
			tapLogger.Load().(func(any))(r)
		}
	}()
	f()
}

// Tap runs f on the Right value for its side effect only.
// The return Either is the receiver unchanged, whatever f does.
// On Left, f is never invoked.
func (e Either[L, R]) Tap(f func(R)) Either[L, R] {
	if e.isRight {
		guardTap(func() { f(e.right) })
	}
	return e
}

// TapError runs f on the Left value for its side effect only.
// On Right, f is never invoked.
func (e Either[L, R]) TapError(f func(L)) Either[L, R] {
	if !e.isRight {
		guardTap(func() { f(e.left) })
	}
	return e
}

// TapBoth runs onRight on a Right or onLeft on a Left, whichever
// applies, when that callback is non-nil. A nil callback on the
// applicable side means no side effect at all.
func (e Either[L, R]) TapBoth(onRight func(R), onLeft func(L)) Either[L, R] {
	if e.isRight {
		if onRight == nil {
			return e
		}
		return e.Tap(onRight)
	}
	if onLeft == nil {
		return e
	}
	return e.TapError(onLeft)
}
