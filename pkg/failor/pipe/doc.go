// Package pipe provides a minimal fluent Chain[T] for synchronous
// composition of FailureOr[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the value in place
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Switch moves a chain to a new value type. The context given to Start
// travels with the chain and is passed to every callable.
package pipe
