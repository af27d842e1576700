package chess

// Game wraps the board with the transient per-position state the rules need:
// the en-passant target square and the checked flag for the side currently
// under evaluation. Game is a value type; the engine probes move legality on
// copies and only the validated move-application step replaces the
// authoritative value.
type Game struct {
	Board Board

	// EnPassant is true when EPSquare holds the destination square of a
	// pawn's double-step advance from the immediately preceding ply. It is
	// cleared on every subsequent move.
	EnPassant bool
	EPSquare  Square

	// Checked marks that the side to move must have its candidate moves
	// filtered for king safety. It is recomputed after every completed move.
	Checked bool
}

// NewGame returns a game at the standard starting position.
func NewGame() Game {
	return Game{Board: InitialBoard()}
}

// EnPassantTarget returns the current en-passant target square, if any.
func (g *Game) EnPassantTarget() (Square, bool) {
	return g.EPSquare, g.EnPassant
}

// SetEnPassant records sq as the en-passant target for the next ply.
func (g *Game) SetEnPassant(sq Square) {
	g.EnPassant = true
	g.EPSquare = sq
}

// ClearEnPassant removes any en-passant target.
func (g *Game) ClearEnPassant() {
	g.EnPassant = false
	g.EPSquare = Square{}
}
