package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Board maps each square to at most one piece. It is a plain value:
// transformations return a new Board and never touch the receiver, so
// any number of successor positions can be held side by side.
type Board [chess.NumSquares]chess.Piece

// NewBoard returns a board in the standard starting arrangement.
func NewBoard() Board {
	var b Board
	backRank := []chess.PieceType{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for file := 0; file < chess.BoardSize; file++ {
		b[chess.NewPosition(0, file)] = chess.NewPiece(chess.White, backRank[file])
		b[chess.NewPosition(1, file)] = chess.NewPiece(chess.White, chess.Pawn)
		b[chess.NewPosition(6, file)] = chess.NewPiece(chess.Black, chess.Pawn)
		b[chess.NewPosition(7, file)] = chess.NewPiece(chess.Black, backRank[file])
	}
	return b
}

// Get returns the piece at the given position, or false if the square
// is empty.
func (b Board) Get(pos chess.Position) (chess.Piece, bool) {
	piece := b[pos]
	return piece, piece != chess.NoPiece
}

// Vacant reports whether the square at the given position is empty.
func (b Board) Vacant(pos chess.Position) bool {
	return b[pos] == chess.NoPiece
}

// PlacedPiece is a piece together with the square it stands on.
type PlacedPiece struct {
	Pos   chess.Position
	Piece chess.Piece
}

// Pieces returns the pieces of the given colour in ascending square
// order. The ordering is what makes move enumeration deterministic.
func (b Board) Pieces(colour chess.Colour) []PlacedPiece {
	var pieces []PlacedPiece
	for pos := chess.Position(0); pos < chess.NumSquares; pos++ {
		piece := b[pos]
		if piece != chess.NoPiece && piece.Colour() == colour {
			pieces = append(pieces, PlacedPiece{Pos: pos, Piece: piece})
		}
	}
	return pieces
}

// Find returns the square of the first piece equal to the given one,
// scanning in ascending square order.
func (b Board) Find(piece chess.Piece) (chess.Position, bool) {
	for pos := chess.Position(0); pos < chess.NumSquares; pos++ {
		if b[pos] == piece {
			return pos, true
		}
	}
	return 0, false
}

// Move returns a new board with the piece at from relocated to to,
// capturing any occupant. Two special cases are resolved at the board
// layer:
//
//   - en passant: a pawn moving diagonally onto an empty square captures
//     the pawn standing on the departure rank at the destination file;
//   - castling: a king moving two files drags the rook on the matching
//     edge file to the square the king passed over.
//
// Calling Move with no piece at from is a programming error.
func (b Board) Move(from, to chess.Position) Board {
	next := b
	piece := next[from]
	if piece == chess.NoPiece {
		panic(fmt.Sprintf("engine: Board.Move: no piece at %v", from))
	}
	captured := next[to]
	next[from] = chess.NoPiece
	next[to] = piece

	// en passant
	if piece.Type() == chess.Pawn && from.File() != to.File() && captured == chess.NoPiece {
		next[chess.NewPosition(from.Rank(), to.File())] = chess.NoPiece
	}

	// castling
	if piece.Type() == chess.King && abs(from.File()-to.File()) == 2 {
		var rookFrom, rookTo chess.Position
		if to.File() < from.File() {
			// queenside
			rookFrom = chess.NewPosition(to.Rank(), 0)
			rookTo = chess.NewPosition(to.Rank(), to.File()+1)
		} else {
			// kingside
			rookFrom = chess.NewPosition(to.Rank(), chess.BoardSize-1)
			rookTo = chess.NewPosition(to.Rank(), to.File()-1)
		}
		next[rookTo] = next[rookFrom]
		next[rookFrom] = chess.NoPiece
	}

	return next
}

// Promote returns a new board where the pawn at from becomes a piece of
// the given type at to, capturing any occupant. Promoting anything but
// a pawn is a programming error.
func (b Board) Promote(from, to chess.Position, pieceType chess.PieceType) Board {
	next := b
	pawn := next[from]
	if pawn == chess.NoPiece || pawn.Type() != chess.Pawn {
		panic(fmt.Sprintf("engine: Board.Promote: no pawn at %v", from))
	}
	next[from] = chess.NoPiece
	next[to] = chess.NewPiece(pawn.Colour(), pieceType)
	return next
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
