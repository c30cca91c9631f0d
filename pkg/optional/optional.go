package optional

import (
	"context"
	"fmt"
	"reflect"
)

// Optional holds either a value of T or nothing. The zero value is empty.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a value. Panics if value is nil; use Of when the value may
// legitimately be absent.
func Some[T any](value T) Optional[T] {
	if isNil(value) {
		panic("optional: Some requires a non-nil value")
	}
	return Optional[T]{value: value, ok: true}
}

// Empty returns the absent Optional for T.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Of wraps a value when it is non-nil and returns Empty otherwise.
// It never panics.
func Of[T any](value T) Optional[T] {
	if isNil(value) {
		return Optional[T]{}
	}
	return Optional[T]{value: value, ok: true}
}

// OfPtr dereferences ptr into a present Optional, treating nil as empty.
func OfPtr[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return Optional[T]{}
	}
	return Of(*ptr)
}

// HasValue reports whether a value is present.
func (o Optional[T]) HasValue() bool {
	return o.ok
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the value when present, otherwise fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrElseGet returns the value when present; otherwise supply is invoked to
// produce the fallback. supply runs only on the empty path.
func (o Optional[T]) OrElseGet(supply func() T) T {
	if o.ok {
		return o.value
	}
	return supply()
}

// OrError returns the value when present, otherwise the given error.
func (o Optional[T]) OrError(err error) (T, error) {
	if o.ok {
		return o.value, nil
	}
	var zero T
	return zero, err
}

// IfHasValue invokes action with the value when present. No-op when empty.
func (o Optional[T]) IfHasValue(action func(T)) {
	if o.ok {
		action(o.value)
	}
}

// Map applies fn to the value when present. A nil result collapses to
// empty. Empty stays empty without invoking fn.
func (o Optional[T]) Map(fn func(T) T) Optional[T] {
	if !o.ok {
		return o
	}
	return Of(fn(o.value))
}

// Filter keeps the value only when pred holds for it.
func (o Optional[T]) Filter(pred func(T) bool) Optional[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return Optional[T]{}
}

// Match dispatches to exactly one of the handlers.
func (o Optional[T]) Match(onSome func(T), onNone func()) {
	if o.ok {
		onSome(o.value)
		return
	}
	onNone()
}

// MatchCtx dispatches to exactly one of the handlers, passing ctx through.
// Any blocking happens inside the handler, never in the container.
func (o Optional[T]) MatchCtx(ctx context.Context, onSome func(context.Context, T), onNone func(context.Context)) {
	if o.ok {
		onSome(ctx, o.value)
		return
	}
	onNone(ctx)
}

func (o Optional[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
