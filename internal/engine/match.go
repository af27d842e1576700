package engine

import (
	"github.com/svKyan/Chess/internal/chess"
	"github.com/svKyan/Chess/internal/errors"
)

// Status is the state of a match after the last completed move.
type Status int

const (
	// StatusAwaitingMove means play continues and the side to move is not
	// in check.
	StatusAwaitingMove Status = iota

	// StatusInCheck means the side to move is in check but has at least one
	// move that resolves it.
	StatusInCheck

	// StatusCheckmate means the side to move is in check with no legal
	// moves. The winner is the side that delivered the mate.
	StatusCheckmate

	// StatusStalemate means the side to move is not in check but has no
	// legal moves.
	StatusStalemate

	// StatusWon means the opposing king was captured.
	StatusWon
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"awaiting move", "in check", "checkmate", "stalemate", "won"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// Terminal reports whether the match has ended.
func (s Status) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate || s == StatusWon
}

// Match is the authoritative state of one game: the position, whose turn it
// is, and the status derived from the last move. Match values are immutable
// through the public API; Apply returns a replacement value and never touches
// its receiver, so the control loop owns exactly one current Match.
type Match struct {
	Game   chess.Game
	Turn   chess.Colour
	Status Status

	// Winner is valid when Status is StatusWon or StatusCheckmate.
	Winner chess.Colour
}

// NewMatch returns a match at the starting position with White to move.
func NewMatch() Match {
	return Match{Game: chess.NewGame(), Turn: chess.White, Status: StatusAwaitingMove}
}

// Apply validates and carries out the move from -> to for the side to move,
// returning the resulting match. The returned Capture is non-nil when the
// move took a piece. On a validation failure the original match is returned
// unchanged alongside the error, so no state is ever mutated by a rejected
// move.
//
// Capturing the opposing king ends the game immediately as a win for the
// mover. Otherwise the turn flips, check is recomputed for the new side to
// move, and the status becomes checkmate, in-check, stalemate, or awaiting
// move depending on check state and whether any piece of that side retains a
// move.
func (m Match) Apply(from, to chess.Square) (Match, *Capture, error) {
	if m.Status.Terminal() {
		return m, nil, &errors.MoveError{Err: errors.ErrGameOver, From: from.String(), To: to.String()}
	}
	if err := ValidateMove(&m.Game, m.Turn, from, to); err != nil {
		return m, nil, err
	}

	var capture *Capture
	target := m.Game.Board.At(to)
	if !target.Empty() {
		capture = &Capture{Piece: target, Square: to}
	}

	next := m
	next.Game = applyMove(m.Game, from, to)

	if capture != nil && capture.Piece.Kind == chess.King {
		next.Status = StatusWon
		next.Winner = m.Turn
		return next, capture, nil
	}

	next.Turn = m.Turn.Opposite()
	switch {
	case IsChecked(&next.Game, next.Turn):
		if !HasAnyLegalMove(&next.Game, next.Turn) {
			next.Status = StatusCheckmate
			next.Winner = m.Turn
		} else {
			next.Status = StatusInCheck
		}
	case !HasAnyLegalMove(&next.Game, next.Turn):
		next.Status = StatusStalemate
	default:
		next.Status = StatusAwaitingMove
	}
	return next, capture, nil
}
