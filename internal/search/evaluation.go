package search

import (
	"strconv"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Evaluation is the value of a position: either a decided outcome or a
// material estimate. Evaluations form a total order — Win(White) above
// everything, Win(Black) below everything, a draw level with a
// material estimate of zero, and estimates ordered numerically.
type Evaluation struct {
	terminal bool
	outcome  chess.Outcome
	estimate int
}

// Terminal returns the evaluation of a decided outcome.
func Terminal(outcome chess.Outcome) Evaluation {
	return Evaluation{terminal: true, outcome: outcome}
}

// Estimate returns the evaluation of an undecided position scored by
// material.
func Estimate(estimate int) Evaluation {
	return Evaluation{estimate: estimate}
}

// isWin reports whether the evaluation is a decided win for the colour.
func (e Evaluation) isWin(colour chess.Colour) bool {
	if !e.terminal {
		return false
	}
	winner, ok := e.outcome.Winner()
	return ok && winner == colour
}

// score maps the non-win evaluations onto the numeric scale: a draw
// counts as zero, an estimate as itself.
func (e Evaluation) score() int {
	if e.terminal {
		return 0
	}
	return e.estimate
}

// Compare returns -1, 0 or +1 as e orders below, equal to or above
// other.
func (e Evaluation) Compare(other Evaluation) int {
	switch {
	case e.isWin(chess.White):
		if other.isWin(chess.White) {
			return 0
		}
		return 1
	case other.isWin(chess.White):
		return -1
	case e.isWin(chess.Black):
		if other.isWin(chess.Black) {
			return 0
		}
		return -1
	case other.isWin(chess.Black):
		return 1
	default:
		a, b := e.score(), other.score()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// String returns the outcome name or a signed material estimate.
func (e Evaluation) String() string {
	if e.terminal {
		return e.outcome.String()
	}
	if e.estimate > 0 {
		return "+" + strconv.Itoa(e.estimate)
	}
	return strconv.Itoa(e.estimate)
}

// MaterialEstimate scores a position as the sum of White's piece
// values minus the sum of Black's.
func MaterialEstimate(g engine.Game) int {
	board := g.Board()
	total := 0
	for _, pp := range board.Pieces(chess.White) {
		total += pp.Piece.Type().Value()
	}
	for _, pp := range board.Pieces(chess.Black) {
		total -= pp.Piece.Type().Value()
	}
	return total
}
