package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// TestFENRoundTrip tests parse-then-emit on representative positions
func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	}
	for _, fen := range tests {
		g, err := GameFromFEN(fen)
		if err != nil {
			t.Errorf("GameFromFEN(%q) error: %v", fen, err)
			continue
		}
		if got := g.FEN(); got != fen {
			t.Errorf("round trip of %q produced %q", fen, got)
		}
	}
}

// TestNewGameFEN tests that the fresh game emits the standard string
func TestNewGameFEN(t *testing.T) {
	if got := NewGame().FEN(); got != InitialFEN {
		t.Errorf("NewGame().FEN() = %q, want %q", got, InitialFEN)
	}
}

// TestFENAfterDoubleAdvance tests that the en passant field names the
// skipped square
func TestFENAfterDoubleAdvance(t *testing.T) {
	g := NewGame().Move(square(t, "e2"), square(t, "e4"))
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := g.FEN(); got != want {
		t.Errorf("FEN after e2-e4 = %q, want %q", got, want)
	}
}

// TestGameFromFEN_Invalid tests rejection of malformed strings
func TestGameFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"bad piece character", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad en passant square", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e9 0 1"},
		{"missing white king", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w KQkq - 0 1"},
		{"two black kings", "rnbqkbnk/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank overflow", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GameFromFEN(tt.fen); !stderrors.Is(err, errors.ErrInvalidFEN) {
				t.Errorf("GameFromFEN(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

// TestFENCastlingFields tests partial and absent castling availability
func TestFENCastlingFields(t *testing.T) {
	tests := []struct {
		fen       string
		colour    chess.Colour
		kingside  bool
		queenside bool
	}{
		{"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1", chess.White, true, false},
		{"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1", chess.Black, false, true},
		{"r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", chess.White, false, false},
		{"r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", chess.Black, false, false},
	}
	for _, tt := range tests {
		g, err := GameFromFEN(tt.fen)
		if err != nil {
			t.Fatalf("GameFromFEN(%q) error: %v", tt.fen, err)
		}
		if got := g.castling.CanCastleKingside(tt.colour); got != tt.kingside {
			t.Errorf("%q: CanCastleKingside(%v) = %v, want %v", tt.fen, tt.colour, got, tt.kingside)
		}
		if got := g.castling.CanCastleQueenside(tt.colour); got != tt.queenside {
			t.Errorf("%q: CanCastleQueenside(%v) = %v, want %v", tt.fen, tt.colour, got, tt.queenside)
		}
	}
}

// TestFENSideToMove tests both side-to-move values
func TestFENSideToMove(t *testing.T) {
	white, err := GameFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("GameFromFEN error: %v", err)
	}
	if white.Turn() != chess.White {
		t.Errorf("Turn() = %v, want White", white.Turn())
	}

	black, err := GameFromFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("GameFromFEN error: %v", err)
	}
	if black.Turn() != chess.Black {
		t.Errorf("Turn() = %v, want Black", black.Turn())
	}
}
