package engine

import "errors"

// ErrIllegalMove is returned by ApplyMove when the move is not a
// member of the current position's PossibleMoves.
var ErrIllegalMove = errors.New("engine: illegal move")

// ErrNoActiveEvaluation is returned by StopEvaluation when no worker
// is running.
var ErrNoActiveEvaluation = errors.New("engine: no active evaluation")
