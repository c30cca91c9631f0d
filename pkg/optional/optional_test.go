package optional

import (
	"context"
	"errors"
	"testing"
)

func TestSome_HasValue(t *testing.T) {
	t.Parallel()

	o := Some(42)

	if !o.HasValue() {
		t.Fatalf("expected a value")
	}
	if got := o.OrElse(-1); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestSome_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on Some(nil)")
		}
	}()
	var p *int
	Some(p)
}

func TestOf_NilIsEmpty(t *testing.T) {
	t.Parallel()

	var p *int
	o := Of(p)

	if o.HasValue() {
		t.Fatalf("Of(nil) must be empty")
	}
}

func TestEmpty_OrElse(t *testing.T) {
	t.Parallel()

	if got := Empty[string]().OrElse("fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestOrElseGet_LazyOnlyWhenEmpty(t *testing.T) {
	t.Parallel()

	calls := 0
	supply := func() int {
		calls++
		return -1
	}

	if got := Some(7).OrElseGet(supply); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if calls != 0 {
		t.Fatalf("supplier must not run when a value is present")
	}

	if got := Empty[int]().OrElseGet(supply); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if calls != 1 {
		t.Fatalf("supplier should run exactly once when empty, ran %d times", calls)
	}
}

func TestOrError(t *testing.T) {
	t.Parallel()

	missing := errors.New("missing")

	v, err := Some("x").OrError(missing)
	if err != nil || v != "x" {
		t.Fatalf("expected (x, nil), got (%q, %v)", v, err)
	}

	_, err = Empty[string]().OrError(missing)
	if err != missing {
		t.Fatalf("expected the given error, got %v", err)
	}
}

func TestIfHasValue(t *testing.T) {
	t.Parallel()

	seen := 0
	Some(5).IfHasValue(func(v int) { seen = v })
	if seen != 5 {
		t.Fatalf("action should run with the value")
	}

	Empty[int]().IfHasValue(func(v int) { t.Fatalf("action must not run when empty") })
}

func TestMap_EmptyShortCircuits(t *testing.T) {
	t.Parallel()

	var p *int
	o := Of(p).Map(func(v *int) *int {
		t.Fatalf("map function must not run on empty")
		return v
	})

	if o.HasValue() {
		t.Fatalf("empty must propagate through map")
	}
}

func TestMap_NilResultErasesValue(t *testing.T) {
	t.Parallel()

	v := 1
	o := Some(&v).Map(func(*int) *int { return nil })

	if o.HasValue() {
		t.Fatalf("nil map result must collapse to empty")
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	if Some(3).Filter(func(v int) bool { return v > 2 }).OrElse(-1) != 3 {
		t.Fatalf("filter should keep a matching value")
	}
	if Some(1).Filter(func(v int) bool { return v > 2 }).HasValue() {
		t.Fatalf("filter should drop a non-matching value")
	}
}

func TestMatch_ExclusiveDispatch(t *testing.T) {
	t.Parallel()

	Some(1).Match(
		func(v int) {},
		func() { t.Fatalf("onNone must not run for a present value") },
	)

	ran := false
	Empty[int]().Match(
		func(v int) { t.Fatalf("onSome must not run for empty") },
		func() { ran = true },
	)
	if !ran {
		t.Fatalf("onNone should run for empty")
	}
}

func TestMatchCtx(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	got := ""
	Some("x").MatchCtx(ctx,
		func(ctx context.Context, v string) { got = ctx.Value(key{}).(string) + v },
		func(ctx context.Context) { t.Fatalf("onNone must not run") },
	)
	if got != "vx" {
		t.Fatalf("context should flow into the handler, got %q", got)
	}
}

func TestOfPtr(t *testing.T) {
	t.Parallel()

	v := 9
	if OfPtr(&v).OrElse(-1) != 9 {
		t.Fatalf("OfPtr should dereference")
	}
	if OfPtr[int](nil).HasValue() {
		t.Fatalf("OfPtr(nil) must be empty")
	}
}
