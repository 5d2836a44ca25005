package engine

import (
	"github.com/kbolino/draughts/internal/board"
	"github.com/kbolino/draughts/internal/eval"
)

// RankedMove is one entry of an EvaluateTopN result.
type RankedMove struct {
	Move board.Move
	Eval eval.Eval
}

// EvaluateTopN runs up to n synchronous evaluations, excluding each
// previously found best move from the root on the next pass, to
// produce a ranked list of distinct root moves. This is additive: a
// GUI "show alternatives" feature can use it, but nothing in the core
// searcher depends on it.
func (e *Engine) EvaluateTopN(settings EvaluationSettings, n int) []RankedMove {
	all := board.GenerateMoves(e.CurrentPosition()).Slice()

	excluded := make(map[board.Move]bool, n)
	results := make([]RankedMove, 0, n)

	for i := 0; i < n && len(excluded) < len(all); i++ {
		remaining := make([]board.Move, 0, len(all)-len(excluded))
		for _, m := range all {
			if !excluded[m] {
				remaining = append(remaining, m)
			}
		}

		s := settings
		s.RestrictMoves = remaining
		ev, m := e.Evaluate(nil, s)
		if m == board.NoMove {
			break
		}
		results = append(results, RankedMove{Move: m, Eval: ev})
		excluded[m] = true
	}

	return results
}
