// Package chess provides the core value types of the rules engine:
// colours, piece types, encoded pieces, board positions and game outcomes.
package chess

// Colour represents the colour of a piece or player.
type Colour int8

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

// PawnStartRank returns the rank (0-based) on which the colour's pawns start.
func (c Colour) PawnStartRank() int {
	if c == White {
		return 1
	}
	return 6
}

// BackRank returns the rank (0-based) on which the colour's pieces start.
func (c Colour) BackRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PromotionRank returns the rank a pawn of this colour promotes on.
func (c Colour) PromotionRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PieceType represents a kind of chess piece.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Value returns the relative material value of the piece type.
// The king carries no material value; terminal positions are scored
// through outcomes instead.
func (t PieceType) Value() int {
	values := []int{0, 1, 3, 3, 5, 9, 0}
	if int(t) < len(values) {
		return values[t]
	}
	return 0
}

// Promotions lists the piece types a pawn may promote to, in the order
// the search expands promotion candidates.
var Promotions = [4]PieceType{Queen, Rook, Bishop, Knight}

// pieceShift is used for encoding coloured pieces.
const pieceShift = 1

// Piece is a coloured piece encoded in a single byte.
// The zero value is NoPiece, an empty square.
type Piece int8

// NoPiece is the absence of a piece.
const NoPiece Piece = 0

// NewPiece creates a coloured piece value.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	return Piece(int8(pieceType)<<pieceShift | int8(colour))
}

// Colour extracts the colour from a piece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Type extracts the piece type from a piece.
func (p Piece) Type() PieceType {
	return PieceType(p >> pieceShift)
}

// String returns e.g. "White Knight", or "None" for NoPiece.
func (p Piece) String() string {
	if p == NoPiece {
		return "None"
	}
	return p.Colour().String() + " " + p.Type().String()
}

// Outcome is the result of a finished game.
type Outcome int8

const (
	DrawOutcome Outcome = iota
	WhiteWin
	BlackWin
)

// Win returns the winning outcome for the given colour.
func Win(colour Colour) Outcome {
	if colour == White {
		return WhiteWin
	}
	return BlackWin
}

// Winner returns the winning colour, or false for a draw.
func (o Outcome) Winner() (Colour, bool) {
	switch o {
	case WhiteWin:
		return White, true
	case BlackWin:
		return Black, true
	}
	return 0, false
}

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	if colour, ok := o.Winner(); ok {
		return colour.String() + " wins"
	}
	return "Draw"
}
