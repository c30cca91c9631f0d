package colls

import (
	"github.com/ib-77/failor/pkg/failor"
	"github.com/ib-77/failor/pkg/optional"
)

// FirstOrNone returns the first element of items, or empty when there is
// none. A nil first element is treated as absent.
func FirstOrNone[T any](items []T) optional.Optional[T] {
	if len(items) == 0 {
		return optional.Empty[T]()
	}
	return optional.Of(items[0])
}

// SingleOrFailure succeeds with the only element of items and fails when
// the slice is empty or holds more than one element. A nil element is
// coerced to a failure.
func SingleOrFailure[T any](items []T) failor.FailureOr[T] {
	switch len(items) {
	case 0:
		return failor.FailMessage[T]("sequence contains no elements")
	case 1:
		return failor.FromValue(items[0])
	default:
		return failor.FailMessage[T]("sequence contains more than one element")
	}
}

// NotEmpty succeeds when items holds at least one element.
func NotEmpty[T any](items []T) failor.FailureOrNothing {
	if len(items) == 0 {
		return failor.FailNothingMessage("sequence is empty")
	}
	return failor.SucceedNothing()
}

// Lookup fetches key from m, treating a missing key as absent.
func Lookup[K comparable, V any](m map[K]V, key K) optional.Optional[V] {
	value, ok := m[key]
	if !ok {
		return optional.Empty[V]()
	}
	return optional.Of(value)
}
