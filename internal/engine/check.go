package engine

import (
	"fmt"

	"github.com/svKyan/Chess/internal/chess"
)

// probeKinds are the attacker kinds tested by the reverse probe, in probe
// order. Kings are excluded: a king cannot be attacked by the opposing king
// in this design.
var probeKinds = [5]chess.PieceKind{chess.Pawn, chess.Rook, chess.Bishop, chess.Knight, chess.Queen}

// IsChecked reports whether the king of the given colour is under attack.
// On a hit it sets g.Checked = true as a side effect; it never writes false,
// so callers reset the flag before re-querying (Apply does this on every
// completed move).
//
// Detection works by reverse probing: the king's square is temporarily
// overwritten with each probe kind of the king's own colour, that kind's
// pseudo-legal moves are generated from the square, and an attack is reported
// iff some destination holds an opposing piece of the probe kind. This
// exploits the reversibility of rook/bishop/knight/queen patterns (if X
// reaches Y via pattern P, a piece at Y following P reaches X). Pawn patterns
// are directionally asymmetric, so pawn-delivered check detection through
// this probe is a known limitation.
func IsChecked(g *chess.Game, colour chess.Colour) bool {
	kingSq, ok := g.Board.FindKing(colour)
	if !ok {
		panic(fmt.Sprintf("engine: no %s king on the board", colour))
	}
	occupant := g.Board.At(kingSq)
	defer g.Board.Set(kingSq, occupant)

	for _, kind := range probeKinds {
		g.Board.Set(kingSq, chess.Piece{Kind: kind, Colour: colour})
		for _, v := range pseudoMoves(g, kingSq) {
			to := kingSq.Offset(v)
			if !to.OnBoard() {
				continue
			}
			target := g.Board.At(to)
			if !target.Empty() && target.Kind == kind && target.Colour != colour {
				g.Checked = true
				return true
			}
		}
	}
	return false
}
