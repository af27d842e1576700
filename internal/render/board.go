// Package render writes board positions and move overlays to a terminal.
package render

import (
	"fmt"
	"io"

	"github.com/svKyan/Chess/internal/chess"
)

// ANSI escape sequences used by coloured output.
const (
	ansiReset     = "\x1b[0m"
	ansiBlackBold = "\x1b[30;1m"
	ansiWhiteBold = "\x1b[37;1m"
	ansiBlue      = "\x1b[34;1m"
	ansiCyan      = "\x1b[36;1m"
	ansiRed       = "\x1b[31;1m"
)

// Renderer writes boards to w. With colour enabled pieces are bright
// white/black letters; without it Black pieces render lowercase.
type Renderer struct {
	w      io.Writer
	colour bool
}

// New returns a renderer writing to w.
func New(w io.Writer, colour bool) *Renderer {
	return &Renderer{w: w, colour: colour}
}

// paint wraps s in the given ANSI sequence when colour is enabled.
func (r *Renderer) paint(code, s string) string {
	if !r.colour {
		return s
	}
	return code + s + ansiReset
}

// glyph returns the display form of a piece.
func (r *Renderer) glyph(p chess.Piece) string {
	if p.Empty() {
		return " "
	}
	if !r.colour {
		return p.String()
	}
	code := ansiWhiteBold
	if p.Colour == chess.Black {
		code = ansiBlackBold
	}
	return r.paint(code, string(p.Kind.Letter()))
}

// Board writes the position with rank numbers on the left and the file
// legend underneath.
func (r *Renderer) Board(b *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		fmt.Fprintf(r.w, "%d ", chess.BoardSize-rank)
		for file := 0; file < chess.BoardSize; file++ {
			fmt.Fprint(r.w, r.glyph(b.Squares[rank][file]))
		}
		fmt.Fprintln(r.w)
	}
	r.fileLegend()
}

// MovesFrom writes the position with an overlay for the piece on from: the
// piece itself in blue, reachable empty squares as "*", reachable occupied
// squares in cyan, and the tried destination (when not reachable) in red.
// Pass an off-board tried square when there is no tried destination.
func (r *Renderer) MovesFrom(b *chess.Board, from chess.Square, tried chess.Square, moves []chess.Vector) {
	if len(moves) == 0 {
		fmt.Fprintf(r.w, "There are no available moves for %s at %s\n",
			r.glyph(b.At(from)), from)
	}

	reachable := make(map[chess.Square]bool, len(moves))
	for _, v := range moves {
		to := from.Offset(v)
		if to.OnBoard() {
			reachable[to] = true
		}
	}

	for rank := 0; rank < chess.BoardSize; rank++ {
		fmt.Fprintf(r.w, "%d ", chess.BoardSize-rank)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Square{File: file, Rank: rank}
			piece := b.At(sq)
			switch {
			case sq == from:
				fmt.Fprint(r.w, r.paint(ansiBlue, string(piece.Kind.Letter())))
			case reachable[sq] && !piece.Empty():
				fmt.Fprint(r.w, r.paint(ansiCyan, string(piece.Kind.Letter())))
			case reachable[sq]:
				fmt.Fprint(r.w, r.paint(ansiBlue, "*"))
			case sq == tried && !piece.Empty():
				fmt.Fprint(r.w, r.paint(ansiRed, string(piece.Kind.Letter())))
			case sq == tried:
				fmt.Fprint(r.w, r.paint(ansiRed, "x"))
			default:
				fmt.Fprint(r.w, r.glyph(piece))
			}
		}
		fmt.Fprintln(r.w)
	}
	r.fileLegend()
}

// fileLegend writes the a-h file labels.
func (r *Renderer) fileLegend() {
	fmt.Fprint(r.w, "  ")
	for file := 0; file < chess.BoardSize; file++ {
		fmt.Fprintf(r.w, "%c", byte('a'+file))
	}
	fmt.Fprintln(r.w)
}
