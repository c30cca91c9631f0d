package failor

import (
	"context"

	"github.com/ib-77/failor/pkg/fail"
)

// failFrom carries a failure across a type change, preserving the
// descriptor, id and creation time.
func failFrom[In, Out any](r FailureOr[In]) FailureOr[Out] {
	return FailureOr[Out]{
		id:        r.id,
		createdAt: r.createdAt,
		failure:   r.failure,
	}
}

// Then chains a result-returning continuation on success, changing the
// value type. On failure, the same descriptor propagates into the new type
// without invoking onSuccess.
func Then[In, Out any](r FailureOr[In], onSuccess func(In) FailureOr[Out]) FailureOr[Out] {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return failFrom[In, Out](r)
}

// ThenCtx is Then with ctx threaded into the continuation. Any blocking
// happens inside onSuccess; a failure returns already resolved.
func ThenCtx[In, Out any](ctx context.Context, r FailureOr[In], onSuccess func(context.Context, In) FailureOr[Out]) FailureOr[Out] {
	if r.isSuccess {
		return onSuccess(ctx, r.value)
	}
	return failFrom[In, Out](r)
}

// Map transforms the success value into a new type, wrapping the result as
// a success. On failure, the same descriptor propagates without invoking
// onSuccess.
func Map[In, Out any](r FailureOr[In], onSuccess func(In) Out) FailureOr[Out] {
	if r.isSuccess {
		return Succeed(onSuccess(r.value))
	}
	return failFrom[In, Out](r)
}

// MapCtx is Map with ctx threaded into the transform.
func MapCtx[In, Out any](ctx context.Context, r FailureOr[In], onSuccess func(context.Context, In) Out) FailureOr[Out] {
	if r.isSuccess {
		return Succeed(onSuccess(ctx, r.value))
	}
	return failFrom[In, Out](r)
}

// Match collapses the result into a single value by dispatching to exactly
// one handler.
func Match[T, R any](r FailureOr[T], onSuccess func(T) R, onFailure func(fail.Failure) R) R {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.descriptor())
}

// Finally is Match with ctx threaded into the handler taken. Any blocking
// happens inside that handler, never in the container.
func Finally[In, Out any](ctx context.Context, r FailureOr[In],
	onSuccess func(context.Context, In) Out,
	onFailure func(context.Context, fail.Failure) Out) Out {

	if r.isSuccess {
		return onSuccess(ctx, r.value)
	}
	return onFailure(ctx, r.descriptor())
}

// ToNothing drops the success value, keeping the state, descriptor, id and
// creation time.
func ToNothing[T any](r FailureOr[T]) FailureOrNothing {
	return FailureOrNothing{
		id:        r.id,
		createdAt: r.createdAt,
		failure:   r.failure,
		isSuccess: r.isSuccess,
	}
}
