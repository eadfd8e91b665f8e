package chess

import "testing"

// TestPieceEncoding tests that colour and type survive the encoding
func TestPieceEncoding(t *testing.T) {
	types := []PieceType{Pawn, Knight, Bishop, Rook, Queen, King}
	for _, colour := range []Colour{White, Black} {
		for _, pieceType := range types {
			piece := NewPiece(colour, pieceType)
			if piece == NoPiece {
				t.Errorf("NewPiece(%v, %v) = NoPiece", colour, pieceType)
			}
			if piece.Colour() != colour {
				t.Errorf("NewPiece(%v, %v).Colour() = %v", colour, pieceType, piece.Colour())
			}
			if piece.Type() != pieceType {
				t.Errorf("NewPiece(%v, %v).Type() = %v", colour, pieceType, piece.Type())
			}
		}
	}
}

// TestPieceValues tests the relative material values
func TestPieceValues(t *testing.T) {
	tests := []struct {
		pieceType PieceType
		want      int
	}{
		{Pawn, 1},
		{Knight, 3},
		{Bishop, 3},
		{Rook, 5},
		{Queen, 9},
		{King, 0},
	}
	for _, tt := range tests {
		if got := tt.pieceType.Value(); got != tt.want {
			t.Errorf("%v.Value() = %d, want %d", tt.pieceType, got, tt.want)
		}
	}
}

// TestColour tests colour negation and the colour-derived ranks
func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not toggle colours")
	}
	if White.PawnStartRank() != 1 || Black.PawnStartRank() != 6 {
		t.Errorf("pawn start ranks = %d, %d, want 1, 6", White.PawnStartRank(), Black.PawnStartRank())
	}
	if White.BackRank() != 0 || Black.BackRank() != 7 {
		t.Errorf("back ranks = %d, %d, want 0, 7", White.BackRank(), Black.BackRank())
	}
	if White.PromotionRank() != 7 || Black.PromotionRank() != 0 {
		t.Errorf("promotion ranks = %d, %d, want 7, 0", White.PromotionRank(), Black.PromotionRank())
	}
}

// TestOutcome tests winners and draw detection
func TestOutcome(t *testing.T) {
	if winner, ok := Win(White).Winner(); !ok || winner != White {
		t.Errorf("Win(White).Winner() = %v, %v", winner, ok)
	}
	if winner, ok := Win(Black).Winner(); !ok || winner != Black {
		t.Errorf("Win(Black).Winner() = %v, %v", winner, ok)
	}
	if _, ok := DrawOutcome.Winner(); ok {
		t.Error("DrawOutcome.Winner() reported a winner")
	}
	if got := Win(White).String(); got != "White wins" {
		t.Errorf("Win(White).String() = %q", got)
	}
	if got := DrawOutcome.String(); got != "Draw" {
		t.Errorf("DrawOutcome.String() = %q", got)
	}
}

// TestPromotionsOrder tests the fixed promotion expansion order
func TestPromotionsOrder(t *testing.T) {
	want := [4]PieceType{Queen, Rook, Bishop, Knight}
	if Promotions != want {
		t.Errorf("Promotions = %v, want %v", Promotions, want)
	}
}
