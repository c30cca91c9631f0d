package pipe

import (
	"context"

	"github.com/ib-77/failor/pkg/fail"
	"github.com/ib-77/failor/pkg/failor"
)

// Chain wraps a failor.FailureOr with a context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res failor.FailureOr[T]
}

// Start creates a new chain from an existing result.
func Start[T any](ctx context.Context, r failor.FailureOr[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, value T) Chain[T] {
	return Start(ctx, failor.Succeed(value))
}

// Result returns the underlying result.
func (c Chain[T]) Result() failor.FailureOr[T] {
	return c.res
}

// Then composes a function that already returns a result.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) failor.FailureOr[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes a function that returns (T, error), capturing the error
// into a failure.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}

	value, err := try(c.ctx, c.res.Value())
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: failor.FailError[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: failor.Succeed(value)}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: failor.Succeed(onSuccess(c.ctx, c.res.Value()))}
}

// Ensure triggers side effects for success or failure without changing the
// result. Either handler may be nil.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, fail.Failure)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Failure())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to
// failor.Finally.
func (c Chain[T]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, fail.Failure) T) T {
	return failor.Finally(c.ctx, c.res, onSuccess, onFailure)
}

// Switch moves the chain to a new value type via a result-returning
// function.
func Switch[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) failor.FailureOr[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: failor.ThenCtx(c.ctx, c.res, onSuccess)}
}
