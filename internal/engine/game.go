// Package engine implements the chess rules core: piece placement,
// castling rights, fully legal move generation and game state
// transitions. Every operation reads immutable inputs and returns new
// values, so callers (the search in particular) can hold and compare
// many successor positions without interference.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Game is one immutable game state: whose turn it is, the board, the
// en-passant marker and the castling rights. The zero value is not
// meaningful; use NewGame.
type Game struct {
	turn  chess.Colour
	board Board

	// epSquare is the landing square of a pawn that advanced two ranks
	// on the immediately preceding move, valid only while epValid is
	// set. Any other transition clears it.
	epSquare chess.Position
	epValid  bool

	castling CastlingRights
}

// NewGame returns a game in the standard starting arrangement, White
// to move.
func NewGame() Game {
	return Game{
		turn:     chess.White,
		board:    NewBoard(),
		castling: NewCastlingRights(),
	}
}

// Turn returns the colour to move.
func (g Game) Turn() chess.Colour {
	return g.turn
}

// Board returns the current piece placement.
func (g Game) Board() Board {
	return g.board
}

// PieceAt returns the piece at the given square, or false if the
// square is empty.
func (g Game) PieceAt(pos chess.Position) (chess.Piece, bool) {
	return g.board.Get(pos)
}

// IsPromotion reports whether moving from from to to would be a pawn
// promotion, i.e. a pawn reaching its promotion rank.
func (g Game) IsPromotion(from, to chess.Position) bool {
	piece, ok := g.board.Get(from)
	return ok && piece.Type() == chess.Pawn && to.Rank() == piece.Colour().PromotionRank()
}

// Move applies a non-promotion move and returns the successor game:
// the turn flips, the board updates (including en-passant capture and
// castling rook relocation), the en-passant marker is set only by a
// two-rank pawn advance, and castling rights update when a king or
// corner rook first leaves its starting square. Calling Move on a
// promotion, or with no piece at from, is a programming error.
func (g Game) Move(from, to chess.Position) Game {
	if g.IsPromotion(from, to) {
		panic(fmt.Sprintf("engine: Game.Move called on promotion %v-%v, use Promote", from, to))
	}
	piece, ok := g.board.Get(from)
	if !ok {
		panic(fmt.Sprintf("engine: Game.Move: no piece at %v", from))
	}

	next := Game{
		turn:     g.turn.Opposite(),
		board:    g.board.Move(from, to),
		castling: g.castling,
	}
	if piece.Type() == chess.Pawn && abs(from.Rank()-to.Rank()) == 2 {
		next.epSquare, next.epValid = to, true
	}
	if from.Rank() == piece.Colour().BackRank() {
		switch {
		case piece.Type() == chess.King && from.File() == 4:
			next.castling = next.castling.MoveKing(piece.Colour())
		case piece.Type() == chess.Rook && from.File() == 0:
			next.castling = next.castling.MoveQueensideRook(piece.Colour())
		case piece.Type() == chess.Rook && from.File() == chess.BoardSize-1:
			next.castling = next.castling.MoveKingsideRook(piece.Colour())
		}
	}
	return next
}

// Promote applies a promotion move and returns the successor game.
// Calling Promote on a non-promotion, or with a piece type outside
// chess.Promotions, is a programming error.
func (g Game) Promote(from, to chess.Position, pieceType chess.PieceType) Game {
	if !g.IsPromotion(from, to) {
		panic(fmt.Sprintf("engine: Game.Promote called on non-promotion %v-%v", from, to))
	}
	promotable := false
	for _, t := range chess.Promotions {
		if t == pieceType {
			promotable = true
			break
		}
	}
	if !promotable {
		panic(fmt.Sprintf("engine: Game.Promote: cannot promote to %v", pieceType))
	}
	return Game{
		turn:     g.turn.Opposite(),
		board:    g.board.Promote(from, to, pieceType),
		castling: g.castling,
	}
}

// Status returns the outcome of a finished game, or false while the
// game is in progress. The side to move having no legal moves ends the
// game: in check it is checkmate (the opponent wins), otherwise
// stalemate (a draw).
func (g Game) Status() (chess.Outcome, bool) {
	if g.hasLegalMove(g.turn) {
		return 0, false
	}
	if g.InCheck(g.turn) {
		return chess.Win(g.turn.Opposite()), true
	}
	return chess.DrawOutcome, true
}

// hasLegalMove reports whether the colour has at least one legal move.
func (g Game) hasLegalMove(colour chess.Colour) bool {
	for _, set := range g.LegalMoves(colour) {
		if len(set.To) > 0 {
			return true
		}
	}
	return false
}
