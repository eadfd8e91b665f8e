package testutil

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MustGameFromFEN builds a game from a FEN fixture, failing the test
// on a malformed string.
func MustGameFromFEN(t *testing.T, fen string) engine.Game {
	t.Helper()
	g, err := engine.GameFromFEN(fen)
	if err != nil {
		t.Fatalf("GameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// MustSquare converts an algebraic square name, failing the test on a
// malformed one.
func MustSquare(t *testing.T, name string) chess.Position {
	t.Helper()
	pos, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return pos
}

// Destinations returns the legal destinations of the piece at from,
// or nil when it has none.
func Destinations(g engine.Game, from chess.Position) []chess.Position {
	for _, set := range g.LegalMoves(g.Turn()) {
		if set.From == from {
			return set.To
		}
	}
	return nil
}

// ContainsSquare reports whether the position list contains the square.
func ContainsSquare(squares []chess.Position, pos chess.Position) bool {
	for _, s := range squares {
		if s == pos {
			return true
		}
	}
	return false
}

// CountMoves returns the total number of legal moves in the move sets.
func CountMoves(sets []engine.MoveSet) int {
	count := 0
	for _, set := range sets {
		count += len(set.To)
	}
	return count
}
