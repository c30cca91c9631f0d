// Package failor provides the value-or-failure containers FailureOr[T] and
// FailureOrNothing for railway-style composition of fallible operations.
//
// Highlights:
//   - Succeed/Fail/FromValue/From: construct FailureOr[T]
//   - Then/Map (methods and type-changing package functions): compose on success,
//     short-circuit on failure
//   - Match/Finally/GetOr/Catch: collapse or observe a result
//   - SucceedNothing/FailNothing/Do: the payload-less sibling for effectful steps
//   - Combine: merge the failures of several FailureOrNothing results
//
// Always build containers through the constructors. The zero value of
// either container is "empty": IsEmpty reports it, and it behaves as a
// failure whose descriptor reads "result is empty".
//
// Containers are immutable after construction and safe for concurrent
// reads. Suspension happens only inside caller-supplied callables; the
// *Ctx variants merely thread a context into them. Construction faults
// (nil values where the contract requires non-nil) panic immediately and
// are never converted into a Failure state.
package failor
