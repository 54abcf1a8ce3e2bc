package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrIsByCode(t *testing.T) {
	sentinel := NewErrfCode("NOT_READY", "not ready")

	e1 := sentinel.Wrapf(fmt.Errorf("socket closed"), "during handshake")
	if !errors.Is(e1, sentinel) {
		t.Fatal("wrapped error should match its sentinel")
	}

	e2 := sentinel.WithInternalMsg("attempt %v", 3)
	if !errors.Is(e2, sentinel) {
		t.Fatal("error with internal msg should match its sentinel")
	}

	other := NewErrfCode("OTHER", "other")
	if errors.Is(e1, other) {
		t.Fatal("codes differ, should not match")
	}

	uncoded := NewErrf("no code")
	if errors.Is(uncoded, sentinel) {
		t.Fatal("uncoded error should not match")
	}
}

func TestErrWrapNil(t *testing.T) {
	sentinel := NewErrfCode("CODE", "msg")
	if sentinel.Wrap(nil) != nil {
		t.Fatal("wrapping nil should yield nil")
	}
	if sentinel.Wrapf(nil, "ctx") != nil {
		t.Fatal("wrapping nil should yield nil")
	}
	if WrapErrf(nil, "ctx") != nil {
		t.Fatal("wrapping nil should yield nil")
	}
}

func TestErrError(t *testing.T) {
	cause := fmt.Errorf("underlying")
	e := NewErrfCode("CODE", "lookup failed").Wrapf(cause, "name 'x'")

	s := e.Error()
	if s != "lookup failed, name 'x', underlying" {
		t.Fatalf("unexpected message: %v", s)
	}
	if !errors.Is(e, cause) {
		t.Fatal("cause should be reachable via errors.Is")
	}
}

func TestUnwrapErrStack(t *testing.T) {
	e := WrapErrf(fmt.Errorf("root"), "wrapped")
	st, ok := UnwrapErrStack(e)
	if !ok || st == "" {
		t.Fatal("stacktrace should be captured")
	}

	if _, ok := UnwrapErrStack(fmt.Errorf("plain")); ok {
		t.Fatal("plain error has no stacktrace")
	}
}
