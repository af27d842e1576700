package testutil

import (
	"testing"

	"github.com/svKyan/Chess/internal/chess"
)

// MustSquare parses an algebraic square name and aborts the test on failure.
// Use this in test setup where malformed coordinates are a test bug.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("failed to parse square %q: %v", name, err)
	}
	return sq
}

// Vectors builds a vector slice from (dx, dy) pairs, for compact expected
// move sets in table-driven tests. It panics on an odd number of values.
func Vectors(pairs ...int) []chess.Vector {
	if len(pairs)%2 != 0 {
		panic("testutil: Vectors needs an even number of values")
	}
	vs := make([]chess.Vector, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		vs = append(vs, chess.Vector{DX: pairs[i], DY: pairs[i+1]})
	}
	return vs
}
