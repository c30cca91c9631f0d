package colls

import (
	"testing"
)

func TestFirstOrNone(t *testing.T) {
	t.Parallel()

	if got := FirstOrNone([]int{7, 8}).OrElse(-1); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if FirstOrNone([]int{}).HasValue() {
		t.Fatalf("empty slice must yield empty")
	}
	if FirstOrNone([]*int{nil, nil}).HasValue() {
		t.Fatalf("a nil first element is absent")
	}
}

func TestSingleOrFailure(t *testing.T) {
	t.Parallel()

	if got := SingleOrFailure([]string{"only"}).GetOr(""); got != "only" {
		t.Fatalf("expected the single element, got %q", got)
	}

	r := SingleOrFailure([]string{})
	if !r.IsFailure() || r.Failure().Message() != "sequence contains no elements" {
		t.Fatalf("unexpected result for empty slice: %v", r.Err())
	}

	r = SingleOrFailure([]string{"a", "b"})
	if !r.IsFailure() || r.Failure().Message() != "sequence contains more than one element" {
		t.Fatalf("unexpected result for multi-element slice: %v", r.Err())
	}
}

func TestNotEmpty(t *testing.T) {
	t.Parallel()

	if !NotEmpty([]int{1}).IsSuccess() {
		t.Fatalf("non-empty slice should succeed")
	}
	if !NotEmpty([]int{}).IsFailure() {
		t.Fatalf("empty slice should fail")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	m := map[string]int{"a": 1}

	if got := Lookup(m, "a").OrElse(-1); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if Lookup(m, "b").HasValue() {
		t.Fatalf("missing key must be absent")
	}
}
