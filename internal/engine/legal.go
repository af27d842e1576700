package engine

import "github.com/svKyan/Chess/internal/chess"

// filterLegal narrows pseudo-legal candidates to moves that do not leave the
// mover's own king in check. Each candidate is simulated on a disposable copy
// of the game with the checked flag cleared (to avoid recursive filtering);
// the candidate survives iff the resulting position reports no check against
// the mover.
func filterLegal(g *chess.Game, from chess.Square, candidates []chess.Vector) []chess.Vector {
	mover := g.Board.At(from).Colour
	var legal []chess.Vector
	for _, v := range candidates {
		to := from.Offset(v)
		if !to.OnBoard() {
			continue
		}
		probe := *g
		probe.Checked = false
		probe.Board.Set(to, probe.Board.At(from))
		probe.Board.Clear(from)
		if !IsChecked(&probe, mover) {
			legal = append(legal, v)
		}
	}
	return legal
}

// HasAnyLegalMove reports whether any piece of the given colour has at least
// one move. The move count per square follows Moves, so a checked game counts
// only king-safe moves.
func HasAnyLegalMove(g *chess.Game, colour chess.Colour) bool {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Square{File: file, Rank: rank}
			piece := g.Board.At(sq)
			if piece.Empty() || piece.Colour != colour {
				continue
			}
			if len(Moves(g, sq)) > 0 {
				return true
			}
		}
	}
	return false
}
