// Package errors provides sentinel errors and error types for the chess
// rules engine. It defines the recoverable user-input failures and structured
// error types that preserve move context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for recoverable failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoPiece indicates the source square holds no piece.
	ErrNoPiece = errors.New("no piece on square")

	// ErrWrongTurn indicates the moved piece does not belong to the side to move.
	ErrWrongTurn = errors.New("piece belongs to the other player")

	// ErrOccupiedBySameColour indicates the destination holds a friendly piece.
	ErrOccupiedBySameColour = errors.New("cannot move to occupied tile")

	// ErrIllegalMove indicates a move absent from the piece's legal move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move was attempted after a terminal state.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidSquare indicates malformed or out-of-board algebraic input.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// MoveError wraps errors with move context: the squares involved and the
// side that tried to move. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Algebraic source square (if applicable)
	To     string // Algebraic destination square (if applicable)
	Colour string // The side attempting the move (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Colour != "" {
		parts = append(parts, e.Colour)
	}
	if e.From != "" {
		if e.To != "" {
			parts = append(parts, fmt.Sprintf("%s to %s", e.From, e.To))
		} else {
			parts = append(parts, e.From)
		}
	} else if e.To != "" {
		parts = append(parts, e.To)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
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

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
