package optional

import "context"

// Map applies fn to the value when present and wraps the result. A nil
// result collapses to empty. Empty stays empty without invoking fn.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.ok {
		return Optional[U]{}
	}
	return Of(fn(o.value))
}

// FlatMap applies fn to the value when present and returns its result
// directly, without double-wrapping. Empty short-circuits to empty.
func FlatMap[T, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if !o.ok {
		return Optional[U]{}
	}
	return fn(o.value)
}

// Then is FlatMap under the name used for chaining.
func Then[T, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	return FlatMap(o, fn)
}

// Fold collapses the Optional into a single value.
func Fold[T, U any](o Optional[T], onNone func() U, onSome func(T) U) U {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// MapCtx is Map with ctx threaded into fn. Any blocking happens inside fn,
// never in the container.
func MapCtx[T, U any](ctx context.Context, o Optional[T], fn func(context.Context, T) U) Optional[U] {
	if !o.ok {
		return Optional[U]{}
	}
	return Of(fn(ctx, o.value))
}
