package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeNoResults, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeSchema, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{ErrorCode(999), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Errorf("HTTPStatusCode(%d)=%d want %d", c.code, got, c.want)
		}
	}
}

func TestWrappingAndCodes(t *testing.T) {
	t.Parallel()

	src := stderrs.New("boom")

	e := Wrap(src, ErrorCodeUnavailable, "upstream failed")
	if e.Error() != "upstream failed: boom" {
		t.Fatalf("Error() = %q", e.Error())
	}
	if CodeOf(e) != ErrorCodeUnavailable {
		t.Fatalf("CodeOf = %d", CodeOf(e))
	}
	if !stderrs.Is(e, src) {
		t.Fatal("wrapped error lost its cause")
	}
	if Root(e) != src {
		t.Fatalf("Root = %v", Root(e))
	}

	e2 := Wrapf(src, ErrorCodeSchema, "invalid %s", "payload")
	if got, ok := As(e2); !ok || got.Code() != ErrorCodeSchema {
		t.Fatalf("As failed on %v", e2)
	}

	// foreign error maps to Unknown
	if CodeOf(src) != ErrorCodeUnknown {
		t.Fatalf("foreign CodeOf = %d", CodeOf(src))
	}
}

func TestMutatorsCopyOnWrite(t *testing.T) {
	t.Parallel()

	base := New(ErrorCodeValidation, "bad field")
	withF := WithField(base, "language")
	if f, _ := As(withF); f.Field() != "language" {
		t.Fatalf("field = %q", f.Field())
	}
	if b, _ := As(base); b.Field() != "" {
		t.Fatal("WithField mutated the original")
	}

	withOp := WithOp(base, "signal.search")
	if o, _ := As(withOp); o.Op() != "signal.search" {
		t.Fatalf("op = %q", o.Op())
	}
}

func TestWireFrom(t *testing.T) {
	t.Parallel()

	if w := WireFrom(nil); w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}
	w := WireFrom(WithField(New(ErrorCodeValidation, "nope"), "query"))
	if w.Code != ErrorCodeValidation || w.Message != "nope" || w.Field != "query" {
		t.Fatalf("WireFrom = %+v", w)
	}
	if w := WireFrom(stderrs.New("raw")); w.Code != ErrorCodeUnknown || w.Message != "raw" {
		t.Fatalf("foreign WireFrom = %+v", w)
	}
}

func TestSugarConstructors(t *testing.T) {
	t.Parallel()

	if !IsCode(NotFoundf("x"), ErrorCodeNotFound) ||
		!IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument) ||
		!IsCode(JSONErrf("x"), ErrorCodeJSON) ||
		!IsCode(PanicErrf("x"), ErrorCodePanic) ||
		!IsCode(Unavailablef("x"), ErrorCodeUnavailable) ||
		!IsCode(Schemaf("x"), ErrorCodeSchema) ||
		!IsCode(NoResultsf("x"), ErrorCodeNoResults) ||
		!IsCode(Internalf("x"), ErrorCodeUnknown) {
		t.Fatal("sugar constructor produced wrong code")
	}

	if WrapIf(nil, ErrorCodeUnavailable, "ignored") != nil {
		t.Fatal("WrapIf(nil) should be nil")
	}
	if WrapIf(stderrs.New("x"), ErrorCodeUnavailable, "up") == nil {
		t.Fatal("WrapIf(err) should wrap")
	}
}

func TestRetryable(t *testing.T) {
	t.Parallel()

	if !Retryable(Unavailablef("down")) {
		t.Fatal("unavailable should be retryable")
	}
	if !Retryable(New(ErrorCodeTooManyRequests, "slow down")) {
		t.Fatal("rate limited should be retryable")
	}
	if Retryable(Schemaf("bad shape")) || Retryable(nil) {
		t.Fatal("schema/nil must not be retryable")
	}
}

func TestHTTPBundle(t *testing.T) {
	t.Parallel()

	status, wire := HTTP(nil)
	if status != http.StatusOK || wire.Message != "" {
		t.Fatalf("HTTP(nil) = %d %+v", status, wire)
	}
	status, wire = HTTP(NoResultsf("no valid recommendations"))
	if status != http.StatusNotFound || wire.Code != ErrorCodeNoResults {
		t.Fatalf("HTTP(noResults) = %d %+v", status, wire)
	}
}
