// Package search selects moves for an automated player by minimax
// search with alpha-beta pruning over the rules engine's immutable
// game values.
package search

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Move is one choosable action: a plain move, or a promotion when
// Promotion is set.
type Move struct {
	From, To  chess.Position
	Promotion chess.PieceType // NoPieceType for a plain move
}

// IsPromotion reports whether the move is a promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != chess.NoPieceType
}

// String returns e.g. "e2e4", or "e7e8=Queen" for a promotion.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += "=" + m.Promotion.String()
	}
	return s
}

// Apply returns the successor game after playing the move.
func Apply(g engine.Game, m Move) engine.Game {
	if m.IsPromotion() {
		return g.Promote(m.From, m.To, m.Promotion)
	}
	return g.Move(m.From, m.To)
}

// Moves enumerates the legal moves of the side to move in the fixed
// search order — piece squares ascending, destinations in generation
// order — expanding each promotion into one candidate per promotable
// piece type (Queen, Rook, Bishop, Knight).
func Moves(g engine.Game) []Move {
	var out []Move
	for _, set := range g.LegalMoves(g.Turn()) {
		for _, to := range set.To {
			if g.IsPromotion(set.From, to) {
				for _, pieceType := range chess.Promotions {
					out = append(out, Move{From: set.From, To: to, Promotion: pieceType})
				}
			} else {
				out = append(out, Move{From: set.From, To: to})
			}
		}
	}
	return out
}

// The initial search window: nothing orders below a black win or
// above a white win.
var (
	blackWins = Terminal(chess.BlackWin)
	whiteWins = Terminal(chess.WhiteWin)
)

// Choose returns the best move for the side to move, searching the
// given number of plies beyond the immediate replies. Calling Choose
// on a position with no legal moves is a programming error.
func Choose(g engine.Game, depth int) Move {
	move, _ := alphabeta(g, depth, blackWins, whiteWins)
	return move
}

// alphabeta evaluates every legal move one ply at a time, White
// maximizing and Black minimizing. alpha and beta carry the inherited
// lower and upper bounds; a child whose value falls outside the bound
// for the side to move cuts off the remaining siblings. Ties keep the
// first move found in enumeration order.
func alphabeta(g engine.Game, depth int, alpha, beta Evaluation) (Move, Evaluation) {
	maximizing := g.Turn() == chess.White
	var best Evaluation
	var bestMove Move
	found := false
	for _, m := range Moves(g) {
		value := evaluate(Apply(g, m), depth, alpha, beta)
		if !found || betterThan(value, best, maximizing) {
			best, bestMove, found = value, m, true
		}
		if maximizing {
			if value.Compare(beta) > 0 {
				break
			}
			if best.Compare(alpha) > 0 {
				alpha = best
			}
		} else {
			if value.Compare(alpha) < 0 {
				break
			}
			if best.Compare(beta) < 0 {
				beta = best
			}
		}
	}
	if !found {
		panic("search: no legal moves")
	}
	return bestMove, best
}

// evaluate values a position reached during search: a decided outcome
// scores as itself, an undecided position at exhausted depth by
// material, and anything else by searching one ply deeper.
func evaluate(g engine.Game, depth int, alpha, beta Evaluation) Evaluation {
	if outcome, over := g.Status(); over {
		return Terminal(outcome)
	}
	if depth == 0 {
		return Estimate(MaterialEstimate(g))
	}
	_, value := alphabeta(g, depth-1, alpha, beta)
	return value
}

// betterThan reports whether value improves on best for the given side.
func betterThan(value, best Evaluation, maximizing bool) bool {
	if maximizing {
		return value.Compare(best) > 0
	}
	return value.Compare(best) < 0
}
