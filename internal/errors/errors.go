// Package errors provides sentinel errors and error types for the chess
// engine. It defines common error conditions and structured error types
// that preserve context while allowing error inspection with errors.Is()
// and errors.As().
//
// These errors cover recoverable conditions at the edges of the engine
// (notation parsing, scripted move replay). Contract violations inside
// the rules core — moving from an empty square, promoting a non-pawn —
// are caller bugs and panic instead.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed algebraic square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")
)

// MoveError wraps errors with the context of a particular move,
// including the ply at which it was attempted and its text form.
// It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply at which the move was attempted
	MoveText string // The move text that caused the error
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ply %d, move %q: %v", e.Ply, e.MoveText, e.Err)
	}
	return fmt.Sprintf("ply %d, move %q", e.Ply, e.MoveText)
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
