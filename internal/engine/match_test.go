package engine

import (
	stderrors "errors"
	"testing"

	"github.com/svKyan/Chess/internal/chess"
	"github.com/svKyan/Chess/internal/errors"
	"github.com/svKyan/Chess/internal/testutil"
)

// mustApply plays a move and fails the test on a rejection.
func mustApply(t *testing.T, m Match, from, to string) (Match, *Capture) {
	t.Helper()
	next, capture, err := m.Apply(testutil.MustSquare(t, from), testutil.MustSquare(t, to))
	if err != nil {
		t.Fatalf("Apply(%s, %s) error: %v", from, to, err)
	}
	return next, capture
}

func TestOpeningMoves(t *testing.T) {
	m := NewMatch()

	m, capture := mustApply(t, m, "e2", "e4")
	testutil.AssertEqual(t, m.Turn, chess.Black)
	testutil.AssertEqual(t, m.Status, StatusAwaitingMove)
	if capture != nil {
		t.Errorf("e2-e4 captured %v", capture)
	}
	testutil.AssertEqual(t, m.Game.Board.At(testutil.MustSquare(t, "e4")),
		chess.Piece{Kind: chess.Pawn, Colour: chess.White})
	testutil.AssertTrue(t, m.Game.Board.At(testutil.MustSquare(t, "e2")).Empty())

	m, _ = mustApply(t, m, "e7", "e5")
	testutil.AssertEqual(t, m.Turn, chess.White)

	m, _ = mustApply(t, m, "b1", "c3")
	testutil.AssertEqual(t, m.Turn, chess.Black)
	testutil.AssertEqual(t, m.Status, StatusAwaitingMove)
	testutil.AssertFalse(t, m.Game.Checked)
}

func TestMovedPawnIsQueryableAtDestination(t *testing.T) {
	m := NewMatch()
	m, _ = mustApply(t, m, "e2", "e4")

	moves := Moves(&m.Game, testutil.MustSquare(t, "e4"))

	testutil.AssertEqual(t, moves, testutil.Vectors(0, -1))
}

func TestEnPassantLifetime(t *testing.T) {
	m := NewMatch()
	m, _ = mustApply(t, m, "e2", "e4")

	// The double step arms the target on the pawn's destination square.
	target, ok := m.Game.EnPassantTarget()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, target, testutil.MustSquare(t, "e4"))

	m, _ = mustApply(t, m, "d7", "d5")
	target, ok = m.Game.EnPassantTarget()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, target, testutil.MustSquare(t, "d5"))

	// While armed, the e4 pawn's whole move set is the diagonal onto d5.
	moves := Moves(&m.Game, testutil.MustSquare(t, "e4"))
	testutil.AssertEqual(t, moves, testutil.Vectors(-1, -1))

	// Any other move disarms it.
	m, _ = mustApply(t, m, "g1", "f3")
	_, ok = m.Game.EnPassantTarget()
	testutil.AssertFalse(t, ok)
	moves = Moves(&m.Game, testutil.MustSquare(t, "e4"))
	testutil.AssertEqual(t, moves, testutil.Vectors(0, -1))
}

func TestEnPassantCapture(t *testing.T) {
	m := NewMatch()
	m, _ = mustApply(t, m, "e2", "e4")
	m, _ = mustApply(t, m, "d7", "d5")

	m, capture := mustApply(t, m, "e4", "d5")

	if capture == nil {
		t.Fatal("e4xd5 reported no capture")
	}
	testutil.AssertEqual(t, capture.Piece, chess.Piece{Kind: chess.Pawn, Colour: chess.Black})
	testutil.AssertEqual(t, capture.Square, testutil.MustSquare(t, "d5"))
	testutil.AssertEqual(t, m.Game.Board.At(testutil.MustSquare(t, "d5")),
		chess.Piece{Kind: chess.Pawn, Colour: chess.White})
	// A diagonal step arms no new target.
	_, ok := m.Game.EnPassantTarget()
	testutil.AssertFalse(t, ok)
}

func TestSingleStepArmsNoTarget(t *testing.T) {
	m := NewMatch()
	m, _ = mustApply(t, m, "e2", "e3")

	_, ok := m.Game.EnPassantTarget()
	testutil.AssertFalse(t, ok)
}

func TestApplyIsPure(t *testing.T) {
	m := NewMatch()
	before := m

	_, _, err := m.Apply(testutil.MustSquare(t, "e2"), testutil.MustSquare(t, "e4"))

	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m, before)
}

func TestApplyRejections(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		sentinel error
	}{
		{name: "empty source square", from: "e4", to: "e5", sentinel: errors.ErrNoPiece},
		{name: "opponent's piece", from: "e7", to: "e5", sentinel: errors.ErrWrongTurn},
		{name: "destination held by own piece", from: "a1", to: "a2", sentinel: errors.ErrOccupiedBySameColour},
		{name: "move outside the piece's set", from: "e2", to: "e5", sentinel: errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewMatch()

			next, capture, err := m.Apply(testutil.MustSquare(t, tt.from), testutil.MustSquare(t, tt.to))

			testutil.AssertErrorIs(t, err, tt.sentinel)
			var moveErr *errors.MoveError
			if !stderrors.As(err, &moveErr) {
				t.Errorf("error %v is not a *MoveError", err)
			}
			if capture != nil {
				t.Errorf("rejected move reported capture %v", capture)
			}
			testutil.AssertEqual(t, next, m)
		})
	}
}

func TestValidateMoveSweepOverStart(t *testing.T) {
	m := NewMatch()

	valid := 0
	for fromRank := 0; fromRank < chess.BoardSize; fromRank++ {
		for fromFile := 0; fromFile < chess.BoardSize; fromFile++ {
			for toRank := 0; toRank < chess.BoardSize; toRank++ {
				for toFile := 0; toFile < chess.BoardSize; toFile++ {
					from := chess.Square{File: fromFile, Rank: fromRank}
					to := chess.Square{File: toFile, Rank: toRank}

					err := ValidateMove(&m.Game, m.Turn, from, to)
					if err == nil {
						valid++
						continue
					}
					var moveErr *errors.MoveError
					if !stderrors.As(err, &moveErr) {
						t.Fatalf("ValidateMove(%s, %s) = %v, not a *MoveError", from, to, err)
					}
					switch {
					case stderrors.Is(err, errors.ErrNoPiece),
						stderrors.Is(err, errors.ErrWrongTurn),
						stderrors.Is(err, errors.ErrOccupiedBySameColour),
						stderrors.Is(err, errors.ErrIllegalMove):
					default:
						t.Fatalf("ValidateMove(%s, %s) wraps no known sentinel: %v", from, to, err)
					}
				}
			}
		}
	}

	// 16 pawn moves plus 4 knight moves.
	testutil.AssertEqual(t, valid, 20)
}

func TestKingCaptureWinsImmediately(t *testing.T) {
	m, err := MatchFromFEN("4k3/8/8/8/8/8/8/4R2K w - - 0 1")
	testutil.AssertNoError(t, err)

	m, capture := mustApply(t, m, "e1", "e8")

	testutil.AssertEqual(t, m.Status, StatusWon)
	testutil.AssertEqual(t, m.Winner, chess.White)
	testutil.AssertTrue(t, m.Status.Terminal())
	if capture == nil || capture.Piece.Kind != chess.King {
		t.Fatalf("capture = %v, want the black king", capture)
	}

	// The match is over; further moves are rejected.
	_, _, err = m.Apply(testutil.MustSquare(t, "e8"), testutil.MustSquare(t, "e7"))
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestBackRankCheckmate(t *testing.T) {
	m, err := MatchFromFEN("7k/6pp/8/8/8/8/8/R6K w - - 0 1")
	testutil.AssertNoError(t, err)

	m, _ = mustApply(t, m, "a1", "a8")

	testutil.AssertEqual(t, m.Status, StatusCheckmate)
	testutil.AssertEqual(t, m.Winner, chess.White)
	testutil.AssertTrue(t, m.Status.Terminal())
}

func TestCheckWithEscapeIsNotMate(t *testing.T) {
	m, err := MatchFromFEN("7k/4r1pp/8/8/8/8/8/R6K w - - 0 1")
	testutil.AssertNoError(t, err)

	m, _ = mustApply(t, m, "a1", "a8")

	testutil.AssertEqual(t, m.Status, StatusInCheck)
	testutil.AssertFalse(t, m.Status.Terminal())
	testutil.AssertTrue(t, m.Game.Checked)

	// The block resolves the check and play continues.
	m, _ = mustApply(t, m, "e7", "e8")
	testutil.AssertEqual(t, m.Status, StatusAwaitingMove)
	testutil.AssertFalse(t, m.Game.Checked)
}

func TestStatusStrings(t *testing.T) {
	tests := []struct {
		status   Status
		want     string
		terminal bool
	}{
		{StatusAwaitingMove, "awaiting move", false},
		{StatusInCheck, "in check", false},
		{StatusCheckmate, "checkmate", true},
		{StatusStalemate, "stalemate", true},
		{StatusWon, "won", true},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.status.String(), tt.want)
		testutil.AssertEqual(t, tt.status.Terminal(), tt.terminal)
	}
}
