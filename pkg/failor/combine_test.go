package failor

import (
	"errors"
	"strings"
	"testing"
)

func TestCombine_AllSuccess(t *testing.T) {
	t.Parallel()

	r := Combine(SucceedNothing(), SucceedNothing())

	if !r.IsSuccess() {
		t.Fatalf("expected success, got: %v", r.Err())
	}
}

func TestCombine_NoInputsIsSuccess(t *testing.T) {
	t.Parallel()

	if !Combine().IsSuccess() {
		t.Fatalf("combining nothing should succeed")
	}
}

func TestCombine_MergesAllFailures(t *testing.T) {
	t.Parallel()

	first := errors.New("first broke")
	second := errors.New("second broke")

	r := Combine(
		FailNothingError(first),
		SucceedNothing(),
		FailNothingError(second),
	)

	if !r.IsFailure() {
		t.Fatalf("expected failure")
	}

	cause := r.Failure().Cause()
	if !errors.Is(cause, first) || !errors.Is(cause, second) {
		t.Fatalf("both failures must be reachable through the merged cause: %v", cause)
	}
	if !strings.Contains(cause.Error(), "first broke") || !strings.Contains(cause.Error(), "second broke") {
		t.Fatalf("merged message should mention every failure: %q", cause.Error())
	}
}
