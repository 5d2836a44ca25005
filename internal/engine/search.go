package engine

import (
	"fmt"
	"time"

	"github.com/kbolino/draughts/internal/board"
	"github.com/kbolino/draughts/internal/eval"
)

// negamax searches b to depth plies with alpha-beta pruning and a TT
// probe/store, returning the best evaluation from the side-to-move's
// perspective and its move (NoMove at a leaf, on a TT hit, or on an
// empty move set).
//
// Unlike some revisions of the reference engine, a fail-soft beta
// cutoff still falls through to the TT insert below (it breaks the
// move loop rather than returning directly): the cutoff position is
// just as worth caching as any other.
func negamax(depth uint8, alpha, beta eval.Eval, b board.Board, allowed []board.Move, task *EvaluationTask) (eval.Eval, board.Move) {
	task.nodesExplored.Add(1)

	if depth == 0 {
		e := eval.Position(b)
		if b.Turn == board.Light {
			e = e.Neg()
		}
		return e, board.NoMove
	}

	if hit, ok := task.TT.Get(b, depth); ok {
		return hit, board.NoMove
	}

	turn := b.Turn
	bestEval := eval.NullMin
	bestMove := board.NoMove

	var moves []board.Move
	if allowed != nil {
		moves = allowed
	} else {
		moves = board.GenerateMoves(b).Slice()
	}

	sorter := NewLazySort(moves, func(m board.Move) eval.Eval {
		if v, ok := task.TT.GetAnyDepth(b.ApplyMove(m)); ok {
			return v
		}
		return eval.DRAW
	})

	if sorter.IsEmpty() {
		return eval.LOSS, board.NoMove
	}

	for i := 0; ; i++ {
		m, ok := sorter.Get(i)
		if !ok {
			break
		}
		if task.cancelFlag.Load() {
			return bestEval, bestMove
		}

		child := b.ApplyMove(m)
		var childEval eval.Eval
		if child.Turn == turn {
			v, _ := negamax(depth-1, alpha, beta, child, nil, task)
			childEval = v.Increment()
		} else {
			v, _ := negamax(depth-1, beta.Neg(), alpha.Neg(), child, nil, task)
			childEval = v.Neg().Increment()
		}

		if childEval > bestEval {
			bestEval = childEval
			bestMove = m
		}
		if bestEval > alpha {
			alpha = bestEval
		}
		if alpha >= beta {
			break
		}
	}

	task.TT.Insert(b, bestEval, depth)
	return bestEval, bestMove
}

// search drives iterative deepening with aspiration windows over task,
// reporting the final best move through fe and pondering afterward if
// requested. Each completed iteration is also reported through
// fe.Debug (depth, eval, nodes), satisfying the diagnostic stream
// spec.md §7 assigns to the frontend. It returns the last fully
// completed iteration's evaluation.
func search(task *EvaluationTask, fe Frontend) (eval.Eval, board.Move) {
	b := task.Position

	alpha := eval.NullMin
	beta := eval.NullMax
	var depth uint8
	ev := eval.DRAW
	bestMove := board.NoMove

	var deadline time.Time
	hasDeadline := task.Limits.Time != nil
	if hasDeadline {
		deadline = task.startTime.Add(*task.Limits.Time / 2)
	}

	for {
		if task.Limits.Depth != nil && depth > *task.Limits.Depth {
			break
		}
		if hasDeadline && time.Now().After(deadline) {
			break
		}
		if task.Limits.Nodes != nil && task.nodesExplored.Load() > *task.Limits.Nodes {
			break
		}

		e, m := negamax(depth, alpha, beta, b, task.AllowedMoves, task)
		if task.cancelFlag.Load() {
			break
		}
		ev, bestMove = e, m

		for ev <= alpha || ev >= beta {
			e, m := negamax(depth, alpha, beta, b, task.AllowedMoves, task)
			if task.cancelFlag.Load() {
				break
			}
			ev, bestMove = e, m
			if ev <= alpha {
				alpha = eval.NullMin
			} else if ev >= beta {
				beta = eval.NullMax
			}
		}

		if task.cancelFlag.Load() {
			break
		}

		fe.Debug(fmt.Sprintf("depth=%d eval=%v nodes=%d", depth, ev, task.NodesExplored()))

		if alpha.IsForceLoss() {
			alpha = eval.NullMin
		} else {
			alpha = ev.Add(-0.125)
		}
		if beta.IsForceWin() {
			beta = eval.NullMax
		} else {
			beta = ev.Add(0.125)
		}

		depth++
	}

	if bestMove != board.NoMove {
		fe.ReportBestMove(bestMove)

		if task.Ponder {
			pb := b.ApplyMove(bestMove)
			var pd uint8
			for !task.endPonderFlag.Load() {
				negamax(pd, eval.NullMin, eval.NullMax, pb, nil, task)
				pd++
			}
		}
	}

	return ev, bestMove
}
