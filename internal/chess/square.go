package chess

import (
	"fmt"

	"github.com/svKyan/Chess/internal/errors"
)

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Square is a zero-based board coordinate. File 0-7 maps to files a-h and
// Rank 0-7 counts rows from Black's back rank, so White's pieces start on
// ranks 6 and 7. Values outside [0,7] are out of bounds, never valid squares.
type Square struct {
	File int
	Rank int
}

// Vector is a displacement (dx, dy) relative to a square, one per reachable
// destination. Positive DY points toward White's back rank.
type Vector struct {
	DX int
	DY int
}

// OnBoard reports whether the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square displaced by v. The result may be off the board;
// callers index the board only after checking OnBoard.
func (s Square) Offset(v Vector) Square {
	return Square{File: s.File + v.DX, Rank: s.Rank + v.DY}
}

// Sub returns the displacement that moves o to s.
func (s Square) Sub(o Square) Vector {
	return Vector{DX: s.File - o.File, DY: s.Rank - o.Rank}
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", byte('a'+s.File), BoardSize-s.Rank)
}

// ParseSquare converts an algebraic square name ("a1" through "h8") into a
// Square. Malformed or out-of-board input yields ErrInvalidSquare.
func ParseSquare(input string) (Square, error) {
	if len(input) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", input)
	}
	sq := Square{
		File: int(input[0] - 'a'),
		Rank: BoardSize - int(input[1]-'0'),
	}
	if !sq.OnBoard() {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q is outside of the board", input)
	}
	return sq, nil
}
