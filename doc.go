// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package either provides a disjoint-union value type for computation
// outcomes, and an asynchronous wrapper that settles to one.
//
// The core type [Either] holds exactly one of a failure value (Left) or
// a success value (Right). Instances are immutable: every combinator
// returns a new Either and never touches the receiver, so long chains
// compose without intermediate branching in caller code.
//
// # Design Philosophy
//
// either provides:
//   - A tagged-union sum type with exhaustive dispatch at each
//     combinator site, instead of a class pair narrowed at runtime
//   - Variant-preserving combinators: each operation branches only on
//     the receiver's own variant, giving O(1) composition
//   - An asynchronous wrapper whose settlement never fails as observed
//     externally: failures are captured into Left
//
// # Construction
//
//   - [Left]: lift a failure value
//   - [Right]: lift a success value
//   - [FromResult]: rebuild an Either from a plain [Result] record
//
// # Combinators
//
// Type-changing combinators are package functions, because Go methods
// cannot introduce type parameters:
//
//   - [Map]: transform the Right value
//   - [FlatMap]: sequence a Right value into another Either
//   - [MapError]: transform the Left value
//   - [Match]: eliminate both variants into one result
//
// Same-type operations are methods:
//
//   - [Either.Filter]: demote Right to Left when a predicate rejects it
//   - [Either.Swap]: exchange the two channels
//
// # Extraction
//
//   - [Either.Unwrap], [Either.UnwrapError]: panic with [*UnwrapError]
//     when the requested side is absent
//   - [Either.GetRight], [Either.GetLeft]: (value, ok) accessors
//   - [Either.GetOrElse], [Either.GetErrorOrElse]: defaulted accessors
//   - [Either.ToResult]: convert to a plain [Result] record
//
// # Inspection
//
// The tap family runs observational side effects without disturbing
// the pipeline. A panic inside a tap callback is recovered, reported
// to the sink installed with [SetTapLogger], and suppressed; the
// original Either is returned unchanged. This is a deliberate policy:
// inspection must never derail the primary computation.
//
//   - [Either.Tap]: observe the Right value
//   - [Either.TapError]: observe the Left value
//   - [Either.TapBoth]: observe whichever side applies
//
// # Asynchronous Wrapper
//
// [AsyncEither] owns one pending computation that settles to an Either
// exactly once. Awaiting never fails: any failure of the underlying
// computation has already been captured into Left.
//
//   - [AsyncRight], [AsyncLeft], [FromEither]: pre-settled wrappers
//   - [Go]: run a computation with a caller-chosen failure type
//   - [TryCatch]: run a (value, error) computation, failure type error
//   - [FromPromise]: adopt an in-flight value/error channel pair
//   - [AsyncEither.Await]: block until settled
//   - [AsyncEither.TryAwait]: non-blocking poll
//   - [AsyncEither.Done]: settlement barrier for select composition
//
// Asynchronous combinators register a continuation against the current
// wrapper and return a brand-new pending wrapper. Continuations run
// only after the prior step settles, so steps of one chain execute in
// strict sequence; independent chains are scheduled freely by the
// runtime.
//
//   - [MapAsync], [FlatMapAsync], [FlatMapEitherAsync], [MapErrorAsync]
//   - [AsyncEither.Filter], [AsyncEither.Recover]
//   - [AsyncEither.Tap], [AsyncEither.TapError], [AsyncEither.TapBoth]
//   - [AsyncEither.GetOrElse], [AsyncEither.GetOrElseFunc]
//   - [AsyncEither.GetErrorOrElse], [AsyncEither.GetErrorOrElseFunc]
//
// # Capture
//
// A panic escaping an asynchronous continuation is recovered at the
// settlement boundary and converted into a Left: directly when the
// panic value is an L, wrapped in [*PanicError] when L is error, and
// re-raised otherwise, since a value the failure channel cannot hold
// is a programmer error and must fail loudly.
//
// The synchronous combinators make the opposite choice on purpose:
// [Map], [FlatMap], [Either.Filter] and [MapError] do not recover
// panics from their transformer functions. Only the tap family
// swallows.
//
// # Errors
//
//   - [UnwrapError]: contract violation, extracting the absent side
//   - [PanicError]: a recovered panic travelling through an
//     error-typed Left
//
// # Example
//
//	res := either.Map(
//		either.Right[error](21),
//		func(x int) int { return x * 2 },
//	)
//	// res.Unwrap() == 42
//
//	sum := either.TryCatch(func() (int, error) {
//		return strconv.Atoi("5")
//	})
//	// sum.Await() == either.Right[error](5)
package either
