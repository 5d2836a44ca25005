package engine

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kbolino/draughts/internal/board"
	"github.com/kbolino/draughts/internal/eval"
)

// ParallelSearch is the optional root-split variant: it forks the root
// move list across up to workers goroutines using errgroup, sharing
// only the TT and a mutex-guarded best/alpha pair. Each worker runs a
// fully independent alpha-beta search below the root; no alpha-beta
// window is shared beyond that one pair, per the reference design's
// caution against sharing windows across workers without a protocol.
func ParallelSearch(ctx context.Context, task *EvaluationTask, depth uint8, workers int) (eval.Eval, board.Move) {
	pos := task.Position
	moves := task.AllowedMoves
	if moves == nil {
		moves = board.GenerateMoves(pos).Slice()
	}
	if len(moves) == 0 {
		return eval.LOSS, board.NoMove
	}
	if workers < 1 {
		workers = 1
	}
	if depth < 1 {
		depth = 1
	}

	var mu sync.Mutex
	bestEval := eval.NullMin
	bestMove := board.NoMove
	alpha := eval.NullMin
	beta := eval.NullMax
	turn := pos.Turn

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, m := range moves {
		m := m
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return nil
			default:
			}

			mu.Lock()
			if alpha >= beta {
				mu.Unlock()
				return nil
			}
			a, b := alpha, beta
			mu.Unlock()

			child := pos.ApplyMove(m)
			var childEval eval.Eval
			if child.Turn == turn {
				v, _ := negamax(depth-1, a, b, child, nil, task)
				childEval = v.Increment()
			} else {
				v, _ := negamax(depth-1, b.Neg(), a.Neg(), child, nil, task)
				childEval = v.Neg().Increment()
			}

			mu.Lock()
			if childEval > bestEval {
				bestEval = childEval
				bestMove = m
			}
			if bestEval > alpha {
				alpha = bestEval
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return bestEval, bestMove
}
