// Package engine implements the chess rules: move generation, check
// detection, legality filtering, move application, and the match state
// machine. It operates on the value types of the chess package and never
// mutates a caller's game except through the documented checked-flag
// write-back of IsChecked.
package engine

import (
	"fmt"

	"github.com/svKyan/Chess/internal/chess"
)

// Fixed displacement tables. Order is part of the engine's observable
// behaviour (move lists are returned in generation order).
var (
	knightOffsets = [8]chess.Vector{
		{DX: -1, DY: -2}, {DX: 1, DY: -2}, {DX: 2, DY: -1}, {DX: 2, DY: 1},
		{DX: 1, DY: 2}, {DX: -1, DY: 2}, {DX: -2, DY: 1}, {DX: -2, DY: -1},
	}
	kingOffsets = [8]chess.Vector{
		{DX: -1, DY: 0}, {DX: -1, DY: -1}, {DX: 0, DY: -1}, {DX: 1, DY: -1},
		{DX: 1, DY: 0}, {DX: 1, DY: 1}, {DX: 0, DY: 1}, {DX: -1, DY: 1},
	}
	diagonalDirs = [4]chess.Vector{
		{DX: -1, DY: -1}, {DX: 1, DY: -1}, {DX: 1, DY: 1}, {DX: -1, DY: 1},
	}
	straightDirs = [4]chess.Vector{
		{DX: -1, DY: 0}, {DX: 0, DY: -1}, {DX: 1, DY: 0}, {DX: 0, DY: 1},
	}
)

// Moves returns the displacement vectors the piece on from may move by.
// When the game's checked flag is set the result is narrowed to moves that
// leave the mover's own king out of check; otherwise it is the piece's
// pseudo-legal move set. Querying an empty square violates the board
// invariants and panics.
func Moves(g *chess.Game, from chess.Square) []chess.Vector {
	moves := pseudoMoves(g, from)
	if g.Checked {
		return filterLegal(g, from, moves)
	}
	return moves
}

// pseudoMoves generates the raw per-kind movement pattern, clipped against
// board edges and occupancy, without any king-safety filtering.
func pseudoMoves(g *chess.Game, from chess.Square) []chess.Vector {
	piece := g.Board.At(from)
	if piece.Empty() {
		panic(fmt.Sprintf("engine: move query on empty square %s", from))
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(g, from, piece.Colour)
	case chess.Knight:
		return leaperMoves(&g.Board, from, piece.Colour, knightOffsets[:])
	case chess.Bishop:
		return slidingMoves(&g.Board, from, piece.Colour, diagonalDirs[:])
	case chess.Rook:
		return slidingMoves(&g.Board, from, piece.Colour, straightDirs[:])
	case chess.Queen:
		moves := slidingMoves(&g.Board, from, piece.Colour, diagonalDirs[:])
		return append(moves, slidingMoves(&g.Board, from, piece.Colour, straightDirs[:])...)
	case chess.King:
		return leaperMoves(&g.Board, from, piece.Colour, kingOffsets[:])
	}
	panic(fmt.Sprintf("engine: unknown piece kind %d on %s", piece.Kind, from))
}

// pawnHomeRank is the rank a colour's pawns start on.
func pawnHomeRank(colour chess.Colour) int {
	if colour == chess.Black {
		return 1
	}
	return chess.BoardSize - 2
}

// pawnDir is the forward rank direction for a colour's pawns.
func pawnDir(colour chess.Colour) int {
	if colour == chess.Black {
		return 1
	}
	return -1
}

// pawnMoves generates pawn displacement vectors.
//
// From the home rank a pawn may advance one or two squares. Off the home
// rank the forward diagonals are probed in a fixed order against the
// en-passant target; the first match becomes the entire move set, otherwise
// the pawn has the single forward push. Ordinary diagonal captures of an
// occupied square are not generated: the en-passant branch is the only
// diagonal a pawn ever takes.
func pawnMoves(g *chess.Game, from chess.Square, colour chess.Colour) []chess.Vector {
	dir := pawnDir(colour)
	if from.Rank == pawnHomeRank(colour) {
		return []chess.Vector{{DX: 0, DY: dir}, {DX: 0, DY: 2 * dir}}
	}

	diagonals := [2]chess.Vector{{DX: 1, DY: dir}, {DX: -1, DY: dir}}
	if colour == chess.White {
		diagonals = [2]chess.Vector{{DX: -1, DY: dir}, {DX: 1, DY: dir}}
	}
	if target, ok := g.EnPassantTarget(); ok {
		for _, diag := range diagonals {
			to := from.Offset(diag)
			if !to.OnBoard() {
				continue
			}
			if to == target {
				return []chess.Vector{diag}
			}
		}
	}
	return []chess.Vector{{DX: 0, DY: dir}}
}

// leaperMoves generates moves for fixed-offset pieces (knight, king): each
// offset is included iff the destination is on the board and not occupied by
// a same-colour piece.
func leaperMoves(b *chess.Board, from chess.Square, colour chess.Colour, offsets []chess.Vector) []chess.Vector {
	var moves []chess.Vector
	for _, off := range offsets {
		to := from.Offset(off)
		if !to.OnBoard() {
			continue
		}
		if target := b.At(to); target.Empty() || target.Colour != colour {
			moves = append(moves, off)
		}
	}
	return moves
}

// slidingMoves walks each direction accumulating vectors while destination
// squares are empty and on the board. The first occupied square ends the
// walk; its vector is included only when it holds an opposing piece.
func slidingMoves(b *chess.Board, from chess.Square, colour chess.Colour, dirs []chess.Vector) []chess.Vector {
	var moves []chess.Vector
	for _, dir := range dirs {
		step := dir
		to := from.Offset(step)
		for to.OnBoard() && b.At(to).Empty() {
			moves = append(moves, step)
			step = chess.Vector{DX: step.DX + dir.DX, DY: step.DY + dir.DY}
			to = from.Offset(step)
		}
		if to.OnBoard() && b.At(to).Colour != colour {
			moves = append(moves, step)
		}
	}
	return moves
}

// containsVector reports whether v is in moves.
func containsVector(moves []chess.Vector, v chess.Vector) bool {
	for _, m := range moves {
		if m == v {
			return true
		}
	}
	return false
}
