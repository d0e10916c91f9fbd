package rop

import (
	"errors"
	"fmt"
	"testing"
	"testing/quick"
)

func TestSuccessAndFail_ExactlyOneVariant(t *testing.T) {
	t.Parallel()

	check := func(value int, ok bool) bool {
		var r Result[int, string]
		if ok {
			r = Success[int, string](value)
		} else {
			r = Fail[int]("boom")
		}
		return r.IsSuccess() != r.IsFailure() && r.IsSuccess() == ok
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("variant predicates are not exclusive: %v", err)
	}
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	if got := Fail[int]("boom").UnwrapOr(-1); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := Success[int, string](42).UnwrapOr(-1); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()

	got := Fail[int]("boom").UnwrapOrElse(func(err string) int { return len(err) })
	if got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	got = Success[int, string](7).UnwrapOrElse(func(string) int {
		t.Fatalf("fallback must not run on success")
		return 0
	})
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestMetadata(t *testing.T) {
	t.Parallel()

	a := Success[int, error](1)
	b := Success[int, error](1)
	if a.Id() == b.Id() {
		t.Fatalf("expected distinct ids")
	}
	if a.CreatedAt().IsZero() || a.CreatedAt().Location().String() != "UTC" {
		t.Fatalf("expected UTC creation time, got %v", a.CreatedAt())
	}
}

func TestFromTuple(t *testing.T) {
	t.Parallel()

	ok := FromTuple(3, nil)
	if !ok.IsSuccess() || ok.Result() != 3 {
		t.Fatalf("expected success with 3, got success=%v, err=%v", ok.IsSuccess(), ok.Err())
	}

	err := errors.New("nope")
	bad := FromTuple(0, err)
	if bad.IsSuccess() || bad.Err() != err {
		t.Fatalf("expected failure 'nope', got success=%v, err=%v", bad.IsSuccess(), bad.Err())
	}
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Fail[int]("boom")
	out := FailFrom[int, string](in)
	if out.IsSuccess() || out.Err() != "boom" {
		t.Fatalf("expected failure 'boom', got success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if out.Id() != in.Id() || !out.CreatedAt().Equal(in.CreatedAt()) {
		t.Fatalf("expected identity to be kept")
	}
}

func TestSuccessFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Success[int, string](5)
	out := SuccessFrom[int, string, error](in)
	if !out.IsSuccess() || out.Result() != 5 || out.Err() != nil {
		t.Fatalf("expected success with 5, got success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if out.Id() != in.Id() {
		t.Fatalf("expected identity to be kept")
	}
}

type describedErr struct {
	cause error
}

func (e *describedErr) Error() string    { return "described: " + e.cause.Error() }
func (e *describedErr) Describe() string { return e.Error() }
func (e *describedErr) Cause() error     { return e.cause }
func (e *describedErr) Unwrap() error    { return e.cause }

func TestErase(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk")
	typed := Fail[int](&describedErr{cause: cause})
	erased := Erase(typed)
	if erased.IsSuccess() || !errors.Is(erased.Err(), cause) {
		t.Fatalf("expected erased failure wrapping 'disk', got %v", erased.Err())
	}
	if erased.Id() != typed.Id() {
		t.Fatalf("expected identity to be kept")
	}

	ok := Erase(Success[int, *describedErr](9))
	if !ok.IsSuccess() || ok.Err() != nil || ok.Result() != 9 {
		t.Fatalf("expected success with 9 and nil error, got %v", ok.Err())
	}

	nilFail := Erase(Fail[int, *describedErr](nil))
	if nilFail.IsSuccess() || nilFail.Err() == nil {
		t.Fatalf("expected a non-nil placeholder error")
	}
}

func TestCauseChain(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	mid := &describedErr{cause: root}
	top := fmt.Errorf("top: %w", mid)

	chain := CauseChain(top)
	if len(chain) != 3 || chain[0] != top || chain[1] != mid || chain[2] != root {
		t.Fatalf("unexpected chain: %v", chain)
	}

	joined := errors.Join(errors.New("a"), errors.New("b"))
	if got := len(CauseChain(joined)); got != 3 {
		t.Fatalf("expected 3 entries for joined error, got %d", got)
	}

	nested := errors.Join(fmt.Errorf("wrapped: %w", root), errors.New("b"))
	got := CauseChain(nested)
	if len(got) != 4 || got[2] != root || got[3].Error() != "b" {
		t.Fatalf("expected joined branches to be walked depth first, got %v", got)
	}

	if got := CauseChain(nil); len(got) != 0 {
		t.Fatalf("expected empty chain for nil, got %v", got)
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	if got := Describe(&describedErr{cause: errors.New("x")}); got != "described: x" {
		t.Fatalf("unexpected description %q", got)
	}
	if got := Describe(errors.New("plain")); got != "plain" {
		t.Fatalf("unexpected description %q", got)
	}
	if got := Describe(nil); got != "" {
		t.Fatalf("expected empty description, got %q", got)
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("expected no errors, got %v", got)
	}
	if got := GetErrors(errors.Join(errors.New("a"), errors.New("b"))); len(got) != 2 {
		t.Fatalf("expected 2 errors, got %v", got)
	}
}
