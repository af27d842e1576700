// chess is an interactive two-player terminal chess game.
package main

import (
	"bufio"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/svKyan/Chess/internal/chess"
	"github.com/svKyan/Chess/internal/engine"
	"github.com/svKyan/Chess/internal/errors"
	"github.com/svKyan/Chess/internal/render"
)

const programVersion = "0.1.0"

// offBoard is the tried-square sentinel for overlays without a destination.
var offBoard = chess.Square{File: -1, Rank: -1}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	match, err := newMatch(*startFEN)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	run(match, os.Stdin, os.Stdout, !*noColor)
}

// newMatch builds the starting match, from a FEN position when one is given.
func newMatch(fen string) (engine.Match, error) {
	if fen == "" {
		return engine.NewMatch(), nil
	}
	return engine.MatchFromFEN(fen)
}

// run drives the game loop: prompt, read a command, apply it, report, until
// the match reaches a terminal state or input ends. It returns the final
// match so tests can script games through a reader.
func run(m engine.Match, in io.Reader, out io.Writer, colour bool) engine.Match {
	r := render.New(out, colour)
	scanner := bufio.NewScanner(in)

	for !m.Status.Terminal() {
		fmt.Fprintf(out, "%s is playing right now.\n", m.Turn)
		r.Board(&m.Game.Board)

		if !scanner.Scan() {
			return m
		}
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Fprintf(out, "Incorrect input! Supplied: %s\n", line)
			continue
		}

		if fields[0] == "help" {
			showHelp(&m, r, out, fields[1])
			continue
		}

		m = applyCommand(m, r, out, fields[0], fields[1])
	}
	return m
}

// showHelp prints the move overlay for the piece on the named square.
func showHelp(m *engine.Match, r *render.Renderer, out io.Writer, name string) {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if m.Game.Board.At(sq).Empty() {
		fmt.Fprintf(out, "Location %s has no piece on it\n", sq)
		return
	}
	r.MovesFrom(&m.Game.Board, sq, offBoard, engine.Moves(&m.Game, sq))
}

// applyCommand parses and applies one move command, reporting the outcome.
// Rejected moves leave the match unchanged.
func applyCommand(m engine.Match, r *render.Renderer, out io.Writer, fromName, toName string) engine.Match {
	from, err := chess.ParseSquare(fromName)
	if err != nil {
		fmt.Fprintln(out, err)
		return m
	}
	to, err := chess.ParseSquare(toName)
	if err != nil {
		fmt.Fprintln(out, err)
		return m
	}

	mover := m.Game.Board.At(from)
	next, capture, err := m.Apply(from, to)
	if err != nil {
		fmt.Fprintln(out, err)
		if stderrors.Is(err, errors.ErrIllegalMove) {
			r.MovesFrom(&m.Game.Board, from, to, engine.Moves(&m.Game, from))
		}
		return m
	}

	if capture != nil {
		fmt.Fprintf(out, "%s %s has been captured by %s %s at %s\n",
			capture.Piece.Colour, capture.Piece.Kind, mover.Colour, mover.Kind, capture.Square)
	}
	fmt.Fprintf(out, "%s %s was moved from %s to %s\n", mover.Colour, mover.Kind, from, to)

	switch next.Status {
	case engine.StatusWon:
		fmt.Fprintf(out, "%s won\n", next.Winner)
	case engine.StatusCheckmate:
		fmt.Fprintf(out, "Checkmate - %s wins\n", next.Winner)
	case engine.StatusStalemate:
		fmt.Fprintln(out, "Stalemate")
	case engine.StatusInCheck:
		fmt.Fprintf(out, "%s is checked\n", next.Turn)
	}
	return next
}
