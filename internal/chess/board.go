package chess

// Board is a fixed 8x8 grid of optional pieces indexed [rank][file].
// It is a value type: assigning a Board copies all squares, so speculative
// exploration on a copy never touches the original.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// At returns the piece on the given square. The square must be on the board;
// out-of-range coordinates are a caller bug and panic on indexing.
func (b *Board) At(sq Square) Piece {
	return b.Squares[sq.Rank][sq.File]
}

// Set places a piece on the given square.
func (b *Board) Set(sq Square, p Piece) {
	b.Squares[sq.Rank][sq.File] = p
}

// Clear empties the given square.
func (b *Board) Clear(sq Square) {
	b.Squares[sq.Rank][sq.File] = Piece{}
}

// FindKing returns the square of the king of the given colour.
// The second result is false if no such king is on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			p := b.Squares[rank][file]
			if p.Kind == King && p.Colour == colour {
				return Square{File: file, Rank: rank}, true
			}
		}
	}
	return Square{}, false
}

// backRank is the piece order of the back rank in file order.
var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the standard starting position: Black's back rank on
// rank 0, Black pawns on rank 1, White pawns on rank 6, White's back rank on
// rank 7.
func InitialBoard() Board {
	var b Board
	for file := 0; file < BoardSize; file++ {
		b.Squares[0][file] = Piece{Kind: backRank[file], Colour: Black}
		b.Squares[1][file] = Piece{Kind: Pawn, Colour: Black}
		b.Squares[6][file] = Piece{Kind: Pawn, Colour: White}
		b.Squares[7][file] = Piece{Kind: backRank[file], Colour: White}
	}
	return b
}
