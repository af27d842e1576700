package engine

import (
	"strings"
	"unicode"

	"github.com/svKyan/Chess/internal/chess"
	"github.com/svKyan/Chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position. Castling
// availability is "-" because this engine does not model castling.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// fenKinds maps FEN piece characters (uppercase) to piece kinds.
var fenKinds = map[byte]chess.PieceKind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// pieceFromFENChar converts a FEN character to a coloured piece.
// The second result is false for characters that name no piece.
func pieceFromFENChar(c rune) (chess.Piece, bool) {
	kind, ok := fenKinds[byte(unicode.ToUpper(c))]
	if !ok {
		return chess.Piece{}, false
	}
	colour := chess.White
	if unicode.IsLower(c) {
		colour = chess.Black
	}
	return chess.Piece{Kind: kind, Colour: colour}, true
}

// fenLetter returns the FEN letter for a piece, lowercase for Black.
func fenLetter(p chess.Piece) byte {
	letter := p.Kind.Letter()
	if p.Colour == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// GameFromFEN parses a FEN string into a game plus the side to move. Only the
// piece placement, side to move, and en-passant fields are interpreted;
// castling availability and the clock fields are accepted and ignored since
// the engine models neither. The checked flag of the returned game is unset.
func GameFromFEN(fen string) (chess.Game, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Game{}, chess.White, errors.Wrap(errors.ErrInvalidFEN, "empty FEN string")
	}

	var game chess.Game
	if err := parsePiecePlacement(&game.Board, parts[0]); err != nil {
		return chess.Game{}, chess.White, err
	}

	turn := chess.White
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			turn = chess.White
		case "b":
			turn = chess.Black
		default:
			return chess.Game{}, chess.White, errors.Wrapf(errors.ErrInvalidFEN, "invalid side to move %q", parts[1])
		}
	}

	// parts[2] is castling availability: ignored.

	if len(parts) >= 4 && parts[3] != "-" {
		target, err := chess.ParseSquare(parts[3])
		if err != nil {
			return chess.Game{}, chess.White, errors.Wrapf(errors.ErrInvalidFEN, "invalid en-passant square %q", parts[3])
		}
		game.SetEnPassant(target)
	}

	return game, turn, nil
}

// parsePiecePlacement parses the piece placement field of a FEN string.
// FEN lists rank 8 first, which is Black's back rank, i.e. rank 0 here.
func parsePiecePlacement(board *chess.Board, placement string) error {
	rank, file := 0, 0
	for _, c := range placement {
		switch {
		case c == '/':
			rank++
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece, ok := pieceFromFENChar(c)
			if !ok {
				return errors.Wrapf(errors.ErrInvalidFEN, "invalid piece character %q", c)
			}
			if rank >= chess.BoardSize || file >= chess.BoardSize {
				return errors.Wrap(errors.ErrInvalidFEN, "position out of bounds")
			}
			board.Set(chess.Square{File: file, Rank: rank}, piece)
			file++
		}
	}
	return nil
}

// MatchFromFEN parses a FEN string into a match, deriving the status for the
// side to move. Status derivation needs that side's king on the board; when
// it is absent (bare test positions), the status stays awaiting-move.
func MatchFromFEN(fen string) (Match, error) {
	game, turn, err := GameFromFEN(fen)
	if err != nil {
		return Match{}, err
	}
	m := Match{Game: game, Turn: turn, Status: StatusAwaitingMove}

	if _, ok := m.Game.Board.FindKing(turn); !ok {
		return m, nil
	}
	switch {
	case IsChecked(&m.Game, turn):
		if !HasAnyLegalMove(&m.Game, turn) {
			m.Status = StatusCheckmate
			m.Winner = turn.Opposite()
		} else {
			m.Status = StatusInCheck
		}
	case !HasAnyLegalMove(&m.Game, turn):
		m.Status = StatusStalemate
	}
	return m, nil
}

// MatchToFEN serializes a match to a FEN string. Castling availability is
// always "-" and the clock fields are fixed at "0 1"; neither is modeled.
func MatchToFEN(m *Match) string {
	var sb strings.Builder

	for rank := 0; rank < chess.BoardSize; rank++ {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := m.Game.Board.At(chess.Square{File: file, Rank: rank})
			if piece.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(fenLetter(piece))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	if m.Turn == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	sb.WriteString("- ")
	if target, ok := m.Game.EnPassantTarget(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" 0 1")

	return sb.String()
}
