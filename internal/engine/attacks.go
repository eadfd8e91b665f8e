package engine

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// InCheck reports whether the given colour's king is attacked.
func (g Game) InCheck(colour chess.Colour) bool {
	kingPos, ok := g.board.Find(chess.NewPiece(colour, chess.King))
	if !ok {
		panic(fmt.Sprintf("engine: no %v king on the board", colour))
	}
	return g.attacks(colour.Opposite(), kingPos)
}

// attacks reports whether any piece of the given colour covers the
// target square. It derives raw movement shapes directly — pawn
// capture squares, knight jumps, sliding rays blocked by the first
// occupied square, king adjacency — scanning outward from the target.
// It is deliberately independent of LegalMoves: check detection must
// not depend on already-filtered moves, or the two would recurse
// without end.
func (g Game) attacks(colour chess.Colour, target chess.Position) bool {
	// A pawn attacks diagonally forward, so an attacking pawn stands
	// one backward step and one file over from the target.
	pawn := chess.NewPiece(colour, chess.Pawn)
	if back, ok := target.Step(chess.PawnAdvance(colour.Opposite())); ok {
		for _, side := range [2]chess.Direction{chess.Left, chess.Right} {
			if from, ok := back.Step(side); ok && g.board[from] == pawn {
				return true
			}
		}
	}

	knight := chess.NewPiece(colour, chess.Knight)
	for _, d := range chess.KnightJumps {
		if from, ok := target.Step(d); ok && g.board[from] == knight {
			return true
		}
	}

	king := chess.NewPiece(colour, chess.King)
	for _, d := range chess.KingSteps {
		if from, ok := target.Step(d); ok && g.board[from] == king {
			return true
		}
	}

	bishop := chess.NewPiece(colour, chess.Bishop)
	rook := chess.NewPiece(colour, chess.Rook)
	queen := chess.NewPiece(colour, chess.Queen)

	for _, d := range chess.DiagonalDirections {
		for pos, ok := target.Step(d); ok; pos, ok = pos.Step(d) {
			if piece := g.board[pos]; piece != chess.NoPiece {
				if piece == bishop || piece == queen {
					return true
				}
				break // blocked
			}
		}
	}
	for _, d := range chess.StraightDirections {
		for pos, ok := target.Step(d); ok; pos, ok = pos.Step(d) {
			if piece := g.board[pos]; piece != chess.NoPiece {
				if piece == rook || piece == queen {
					return true
				}
				break // blocked
			}
		}
	}

	return false
}
