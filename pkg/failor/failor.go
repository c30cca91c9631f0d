package failor

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/failor/pkg/fail"
)

// FailureOr holds either a value of T or a failure descriptor, never both.
type FailureOr[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   fail.Failure
	isSuccess bool
}

// Succeed wraps a value as a success. Panics if value is nil: a success
// never holds nil, and a nil here is a programming error, not a domain
// failure. Use FromValue to coerce instead.
func Succeed[T any](value T) FailureOr[T] {
	if IsNil(value) {
		panic("failor: Succeed requires a non-nil value")
	}
	return FailureOr[T]{
		value:     value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail wraps a failure descriptor. Panics if f is nil.
func Fail[T any](f fail.Failure) FailureOr[T] {
	if f == nil {
		panic("failor: Fail requires a non-nil failure")
	}
	return FailureOr[T]{
		failure:   f,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailMessage is Fail with a plain descriptor built from message.
func FailMessage[T any](message string) FailureOr[T] {
	return Fail[T](fail.New(message))
}

// FailError is Fail with a descriptor built from err. When err already is
// a descriptor it is wrapped as-is; otherwise err becomes the cause.
func FailError[T any](err error) FailureOr[T] {
	if f, ok := err.(fail.Failure); ok {
		return Fail[T](f)
	}
	return Fail[T](fail.FromError(err))
}

// FailErrorMessage is Fail with a plain descriptor carrying message and
// err as the cause.
func FailErrorMessage[T any](message string, err error) FailureOr[T] {
	return Fail[T](fail.Wrap(message, err))
}

// FromValue coerces a raw value into a result. Precedence:
//  1. nil values become a Failure ("value is nil")
//  2. values that are themselves failure descriptors become a Failure
//     wrapping that descriptor
//  3. values that are errors become a Failure with that cause
//  4. anything else becomes a Success
//
// The rule lets generic code that yields either a domain value or an error
// marker convert without an explicit branch.
func FromValue[T any](value T) FailureOr[T] {
	if IsNil(value) {
		return FailMessage[T]("value is nil")
	}
	switch v := any(value).(type) {
	case fail.Failure:
		return Fail[T](v)
	case error:
		return FailError[T](v)
	}
	return Succeed(value)
}

// From invokes action and captures its outcome. A returned error or a
// panic becomes a Failure with that error as the cause. A nil value with a
// nil error is also a Failure: a success never holds nil.
func From[T any](action func() (T, error)) (res FailureOr[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Fail[T](fail.Wrap("action panicked", panicError(rec)))
		}
	}()

	value, err := action()
	if err != nil {
		return FailError[T](err)
	}
	if IsNil(value) {
		return FailMessage[T]("action returned nil result")
	}
	return Succeed(value)
}

// FromCtx is From for context-aware actions.
func FromCtx[T any](ctx context.Context, action func(ctx context.Context) (T, error)) FailureOr[T] {
	return From(func() (T, error) { return action(ctx) })
}

func (r FailureOr[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r FailureOr[T]) IsFailure() bool {
	return !r.isSuccess
}

// IsEmpty reports whether the container is a zero value, built without any
// of the constructors. An empty container behaves as a failure whose
// descriptor reads "result is empty".
func (r FailureOr[T]) IsEmpty() bool {
	return !r.isSuccess && r.failure == nil
}

// descriptor returns the failure descriptor, substituting one for the
// zero-value state so handlers never see nil.
func (r FailureOr[T]) descriptor() fail.Failure {
	if r.failure == nil {
		return fail.New("result is empty")
	}
	return r.failure
}

// Value returns the success value, or the zero value of T on failure.
func (r FailureOr[T]) Value() T {
	return r.value
}

// Failure returns the descriptor, or nil on success.
func (r FailureOr[T]) Failure() fail.Failure {
	if r.isSuccess {
		return nil
	}
	return r.descriptor()
}

// Err returns the descriptor as an error, or nil on success.
func (r FailureOr[T]) Err() error {
	if r.isSuccess {
		return nil
	}
	return r.descriptor()
}

func (r FailureOr[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r FailureOr[T]) CreatedAt() time.Time {
	return r.createdAt
}

// GetOr returns the success value, or fallback on failure. The fallback
// must be non-nil by contract; a nil fallback panics.
func (r FailureOr[T]) GetOr(fallback T) T {
	if IsNil(fallback) {
		panic("failor: GetOr requires a non-nil fallback")
	}
	if r.isSuccess {
		return r.value
	}
	return fallback
}

// Match dispatches to exactly one of the handlers.
func (r FailureOr[T]) Match(onSuccess func(T), onFailure func(fail.Failure)) {
	if r.isSuccess {
		onSuccess(r.value)
		return
	}
	onFailure(r.descriptor())
}

// MatchCtx dispatches to exactly one of the handlers, passing ctx through.
// Any blocking happens inside the handler taken, never in the container.
func (r FailureOr[T]) MatchCtx(ctx context.Context, onSuccess func(context.Context, T), onFailure func(context.Context, fail.Failure)) {
	if r.isSuccess {
		onSuccess(ctx, r.value)
		return
	}
	onFailure(ctx, r.descriptor())
}

// Catch invokes handler with the descriptor on failure and returns the
// result unchanged. No-op on success.
func (r FailureOr[T]) Catch(handler func(fail.Failure)) FailureOr[T] {
	if !r.isSuccess {
		handler(r.descriptor())
	}
	return r
}

// Then chains a result-returning continuation on success. On failure, the
// same descriptor propagates without invoking onSuccess. For a
// type-changing continuation use the package-level Then.
func (r FailureOr[T]) Then(onSuccess func(T) FailureOr[T]) FailureOr[T] {
	if !r.isSuccess {
		return r
	}
	return onSuccess(r.value)
}

// Map transforms the success value in place. On failure, the same
// descriptor propagates without invoking onSuccess. For a type-changing
// transform use the package-level Map.
func (r FailureOr[T]) Map(onSuccess func(T) T) FailureOr[T] {
	if !r.isSuccess {
		return r
	}
	return Succeed(onSuccess(r.value))
}
