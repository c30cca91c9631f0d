// Package optional provides Optional[T], a container holding either a
// value or nothing. The zero value is empty.
//
// Highlights:
// - Some/Empty/Of/OfPtr: construct an Optional
// - OrElse/OrElseGet/OrError: extract with a fallback
// - Map/FlatMap/Then: transform without unwrapping; nil results collapse to empty
// - Match/MatchCtx: mutually exclusive dispatch
//
// A present Optional never wraps a nil value: Of collapses nil to empty and
// Some panics on nil. Functions passed to Map may return nil; the result is
// then empty, which lets nil-returning legacy code participate in chains.
package optional
