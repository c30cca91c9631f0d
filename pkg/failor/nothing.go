package failor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/failor/pkg/fail"
)

// FailureOrNothing holds either a payload-less success or a failure
// descriptor. It is the container for effectful operations that produce no
// value.
type FailureOrNothing struct {
	id        uuid.UUID
	createdAt time.Time
	failure   fail.Failure
	isSuccess bool
}

// SucceedNothing returns a success with no payload.
func SucceedNothing() FailureOrNothing {
	return FailureOrNothing{
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailNothing wraps a failure descriptor. Panics if f is nil.
func FailNothing(f fail.Failure) FailureOrNothing {
	if f == nil {
		panic("failor: FailNothing requires a non-nil failure")
	}
	return FailureOrNothing{
		failure:   f,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailNothingMessage is FailNothing with a plain descriptor built from
// message.
func FailNothingMessage(message string) FailureOrNothing {
	return FailNothing(fail.New(message))
}

// FailNothingError is FailNothing with a descriptor built from err. When
// err already is a descriptor it is wrapped as-is; otherwise err becomes
// the cause.
func FailNothingError(err error) FailureOrNothing {
	if f, ok := err.(fail.Failure); ok {
		return FailNothing(f)
	}
	return FailNothing(fail.FromError(err))
}

// FailNothingErrorMessage is FailNothing with a plain descriptor carrying
// message and err as the cause.
func FailNothingErrorMessage(message string, err error) FailureOrNothing {
	return FailNothing(fail.Wrap(message, err))
}

// Do invokes action and captures its outcome. A returned error or a panic
// becomes a Failure with that error as the cause.
func Do(action func() error) (res FailureOrNothing) {
	defer func() {
		if rec := recover(); rec != nil {
			res = FailNothing(fail.Wrap("action panicked", panicError(rec)))
		}
	}()

	if err := action(); err != nil {
		return FailNothingError(err)
	}
	return SucceedNothing()
}

func (r FailureOrNothing) IsSuccess() bool {
	return r.isSuccess
}

func (r FailureOrNothing) IsFailure() bool {
	return !r.isSuccess
}

// IsEmpty reports whether the container is a zero value, built without any
// of the constructors. An empty container behaves as a failure whose
// descriptor reads "result is empty".
func (r FailureOrNothing) IsEmpty() bool {
	return !r.isSuccess && r.failure == nil
}

// descriptor returns the failure descriptor, substituting one for the
// zero-value state so handlers never see nil.
func (r FailureOrNothing) descriptor() fail.Failure {
	if r.failure == nil {
		return fail.New("result is empty")
	}
	return r.failure
}

// Failure returns the descriptor, or nil on success.
func (r FailureOrNothing) Failure() fail.Failure {
	if r.isSuccess {
		return nil
	}
	return r.descriptor()
}

// Err returns the descriptor as an error, or nil on success.
func (r FailureOrNothing) Err() error {
	if r.isSuccess {
		return nil
	}
	return r.descriptor()
}

func (r FailureOrNothing) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r FailureOrNothing) CreatedAt() time.Time {
	return r.createdAt
}

// Then executes action on success. A returned error or a panic is captured
// into a new Failure whose cause is that error; it never propagates
// uncaught. An already failed result short-circuits unchanged.
func (r FailureOrNothing) Then(action func() error) FailureOrNothing {
	if !r.isSuccess {
		return r
	}
	return Do(action)
}

// ThenCtx is Then with ctx threaded into the action. Any blocking happens
// inside the action; a failure returns already resolved.
func (r FailureOrNothing) ThenCtx(ctx context.Context, action func(context.Context) error) FailureOrNothing {
	if !r.isSuccess {
		return r
	}
	return Do(func() error { return action(ctx) })
}

// Match dispatches to exactly one of the handlers.
func (r FailureOrNothing) Match(onSuccess func(), onFailure func(fail.Failure)) {
	if r.isSuccess {
		onSuccess()
		return
	}
	onFailure(r.descriptor())
}

// MatchCtx dispatches to exactly one of the handlers, passing ctx through.
func (r FailureOrNothing) MatchCtx(ctx context.Context, onSuccess func(context.Context), onFailure func(context.Context, fail.Failure)) {
	if r.isSuccess {
		onSuccess(ctx)
		return
	}
	onFailure(ctx, r.descriptor())
}

// Catch invokes handler with the descriptor on failure and returns the
// result unchanged. No-op on success.
func (r FailureOrNothing) Catch(handler func(fail.Failure)) FailureOrNothing {
	if !r.isSuccess {
		handler(r.descriptor())
	}
	return r
}

// AsError converts a failure back into a conventional error: the cause
// when present, otherwise a new error carrying the descriptor's message.
// Returns nil on success. This is the escape hatch for call sites that
// cannot consume the container type.
func (r FailureOrNothing) AsError() error {
	if r.isSuccess {
		return nil
	}
	f := r.descriptor()
	if cause := f.Cause(); cause != nil {
		return cause
	}
	return errors.New(f.Message())
}

// MatchNothing collapses the result into a single value by dispatching to
// exactly one handler.
func MatchNothing[R any](r FailureOrNothing, onSuccess func() R, onFailure func(fail.Failure) R) R {
	if r.isSuccess {
		return onSuccess()
	}
	return onFailure(r.descriptor())
}
