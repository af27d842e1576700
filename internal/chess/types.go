// Package chess provides the core chess data types: colours, pieces, squares,
// the board, and the game state the rules engine operates on. It carries no
// rules logic of its own.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type. A piece never changes kind once
// placed; there is no promotion.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a (kind, colour) value. Pieces are values, not identities: moving
// one copies the value to the destination square and clears the source.
// The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// Empty reports whether the piece value represents an empty square.
func (p Piece) Empty() bool {
	return p.Kind == NoPiece
}

// String returns the piece as a single letter, lowercase for Black.
func (p Piece) String() string {
	if p.Empty() {
		return " "
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}
