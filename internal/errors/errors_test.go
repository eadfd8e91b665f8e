package errors

import (
	"errors"
	"strings"
	"testing"
)

// TestWrap tests sentinel preservation through Wrap and Wrapf
func TestWrap(t *testing.T) {
	err := Wrap(ErrInvalidFEN, "parsing position")
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("Wrap broke errors.Is on the sentinel")
	}
	if got := err.Error(); !strings.Contains(got, "parsing position") {
		t.Errorf("Error() = %q, missing context", got)
	}

	err = Wrapf(ErrInvalidSquare, "square %q", "z9")
	if !errors.Is(err, ErrInvalidSquare) {
		t.Error("Wrapf broke errors.Is on the sentinel")
	}
	if got := err.Error(); !strings.Contains(got, `"z9"`) {
		t.Errorf("Error() = %q, missing formatted context", got)
	}
}

// TestWrapNil tests that wrapping nil stays nil
func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}
}

// TestMoveError tests unwrapping and the message format
func TestMoveError(t *testing.T) {
	err := error(&MoveError{Err: ErrIllegalMove, Ply: 3, MoveText: "e2e5"})

	if !errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is failed through MoveError")
	}

	var moveErr *MoveError
	if !errors.As(err, &moveErr) {
		t.Fatal("errors.As failed to recover *MoveError")
	}
	if moveErr.Ply != 3 || moveErr.MoveText != "e2e5" {
		t.Errorf("recovered MoveError = %+v", moveErr)
	}

	want := `ply 3, move "e2e5": illegal move`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// TestMoveErrorWithoutCause tests the message when no underlying error
// is set
func TestMoveErrorWithoutCause(t *testing.T) {
	err := &MoveError{Ply: 1, MoveText: "e2e4"}
	want := `ply 1, move "e2e4"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap() != nil for a cause-less MoveError")
	}
}
