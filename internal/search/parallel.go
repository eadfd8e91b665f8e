package search

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// ChooseParallel is Choose with the root moves fanned out across a
// pool of workers. Each worker searches one root subtree with the full
// window; game values alias nothing, so the subtrees are independent
// and the fan-out needs no locking. The chosen move and its value are
// the same as Choose's, including first-in-enumeration-order tie
// breaking. Calling it on a position with no legal moves is a
// programming error.
func ChooseParallel(g engine.Game, depth, workers int) Move {
	rootMoves := Moves(g)
	if len(rootMoves) == 0 {
		panic("search: no legal moves")
	}
	if workers <= 1 || len(rootMoves) == 1 {
		return Choose(g, depth)
	}

	pool := worker.NewPool(
		func(item worker.WorkItem) worker.ProcessResult {
			value := evaluate(item.Game, depth, blackWins, whiteWins)
			return worker.ProcessResult{Index: item.Index, Value: value}
		},
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(rootMoves)),
	)
	pool.Start()
	for i, m := range rootMoves {
		pool.Submit(worker.WorkItem{Game: Apply(g, m), Index: i})
	}
	pool.Close()

	values := make([]Evaluation, len(rootMoves))
	for result := range pool.Results() {
		values[result.Index] = result.Value.(Evaluation)
	}

	maximizing := g.Turn() == chess.White
	best := 0
	for i := 1; i < len(values); i++ {
		if betterThan(values[i], values[best], maximizing) {
			best = i
		}
	}
	return rootMoves[best]
}
