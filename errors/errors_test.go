package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := ResourceExhausted(stderrors.New("EAGAIN"), "thread limit reached")

	msg := err.Error()
	if !strings.Contains(msg, "[spawn]") {
		t.Fatalf("missing phase in %q", msg)
	}
	if !strings.Contains(msg, "resource_exhausted") {
		t.Fatalf("missing kind in %q", msg)
	}
	if !strings.Contains(msg, "EAGAIN") {
		t.Fatalf("missing cause in %q", msg)
	}
}

func TestError_Is(t *testing.T) {
	err := OutOfRange(PhasePin, "cpu", 12, 8)

	if !stderrors.Is(err, &Error{Phase: PhasePin, Kind: KindOutOfRange}) {
		t.Fatal("expected Is match on phase+kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseSpawn, Kind: KindOutOfRange}) {
		t.Fatal("unexpected Is match across phases")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(PhaseJoin, KindInvalidHandle, cause, "joined twice")

	if !stderrors.Is(err, cause) {
		t.Fatal("expected unwrap to reach cause")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhasePin, KindOutOfRange).
		Detail("cpu %d exceeds cpu count %d", 9, 4).
		Build()

	if err.Phase != PhasePin || err.Kind != KindOutOfRange {
		t.Fatalf("builder lost phase/kind: %+v", err)
	}
	if err.Detail != "cpu 9 exceeds cpu count 4" {
		t.Fatalf("unexpected detail %q", err.Detail)
	}
}
