package engine

import (
	"github.com/svKyan/Chess/internal/chess"
	"github.com/svKyan/Chess/internal/errors"
)

// Capture describes a piece removed from the board by a move.
type Capture struct {
	Piece  chess.Piece
	Square chess.Square
}

// ValidateMove checks a requested move for the side to move. It returns nil
// when the move is in the piece's current move set, and otherwise a
// *errors.MoveError wrapping one of the recoverable sentinels: ErrNoPiece,
// ErrWrongTurn, ErrOccupiedBySameColour, or ErrIllegalMove. The board is
// never modified.
func ValidateMove(g *chess.Game, turn chess.Colour, from, to chess.Square) error {
	piece := g.Board.At(from)
	if piece.Empty() {
		return &errors.MoveError{Err: errors.ErrNoPiece, From: from.String()}
	}
	if piece.Colour != turn {
		return &errors.MoveError{Err: errors.ErrWrongTurn, From: from.String(), Colour: piece.Colour.String()}
	}
	if target := g.Board.At(to); !target.Empty() && target.Colour == piece.Colour {
		return &errors.MoveError{Err: errors.ErrOccupiedBySameColour, From: from.String(), To: to.String()}
	}
	if !containsVector(Moves(g, from), to.Sub(from)) {
		return &errors.MoveError{Err: errors.ErrIllegalMove, From: from.String(), To: to.String(), Colour: piece.Colour.String()}
	}
	return nil
}

// applyMove carries out a validated move on a copy of the game and returns
// the new value. It clears the checked flag and the en-passant target, then
// records a fresh target when the move is a pawn double step. Moving copies
// the piece value to the destination and clears the source.
func applyMove(g chess.Game, from, to chess.Square) chess.Game {
	g.Checked = false
	g.ClearEnPassant()

	piece := g.Board.At(from)
	if piece.Kind == chess.Pawn && from.File == to.File && abs(to.Rank-from.Rank) == 2 {
		g.SetEnPassant(to)
	}

	g.Board.Set(to, piece)
	g.Board.Clear(from)
	return g
}
