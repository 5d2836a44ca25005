package engine

import (
	"sync/atomic"
	"time"

	"github.com/kbolino/draughts/internal/board"
)

// ActualLimit is the resolved set of limits a search obeys; a nil
// field means that limit is absent. Non-positive values supplied by a
// caller are normalized to absent at construction time, not treated
// as errors.
type ActualLimit struct {
	Nodes *uint64
	Depth *uint8
	Time  *time.Duration
}

// ClockKind selects which time-control shape a Clock describes.
type ClockKind int

const (
	ClockUnlimited ClockKind = iota
	ClockPerMove
	ClockStandard
)

// Clock mirrors a PDN/UCI-style time control.
type Clock struct {
	Kind ClockKind

	PerMove time.Duration

	WhiteTime, BlackTime time.Duration
	WhiteInc, BlackInc   time.Duration
	// MovesToGo is the number of moves left before the next time
	// control; zero means unspecified and defaults to 50.
	MovesToGo int
}

// RecommendedTime computes how long the side to move (color) should
// spend on its next decision.
func (c Clock) RecommendedTime(color board.Color) time.Duration {
	switch c.Kind {
	case ClockPerMove:
		return c.PerMove
	case ClockStandard:
		myTime, myInc := c.BlackTime, c.BlackInc
		if color == board.Light {
			myTime, myInc = c.WhiteTime, c.WhiteInc
		}
		movesToGo := c.MovesToGo
		if movesToGo <= 0 {
			movesToGo = 50
		}
		base := myTime/time.Duration(movesToGo) + myInc
		return time.Duration(float64(base) / 1.25)
	default:
		return 5 * time.Minute
	}
}

// SearchLimitKind selects how EvaluationSettings.SearchUntil resolves
// into an ActualLimit.
type SearchLimitKind int

const (
	SearchAuto SearchLimitKind = iota
	SearchInfinite
	SearchLimited
)

// SearchLimit is Auto (depth 30 plus the clock's recommended time),
// Infinite (no limits at all), or an explicit Limited ActualLimit.
type SearchLimit struct {
	Kind  SearchLimitKind
	Limit ActualLimit
}

// EvaluationSettings parameterizes one call to Evaluate or
// StartEvaluation.
type EvaluationSettings struct {
	// RestrictMoves, if non-nil, limits the root node to these moves.
	RestrictMoves []board.Move
	Ponder        bool
	Clock         Clock
	SearchUntil   SearchLimit
}

func normalizeLimit(l ActualLimit) ActualLimit {
	if l.Nodes != nil && *l.Nodes == 0 {
		l.Nodes = nil
	}
	if l.Depth != nil && *l.Depth == 0 {
		l.Depth = nil
	}
	if l.Time != nil && *l.Time <= 0 {
		l.Time = nil
	}
	return l
}

func (s EvaluationSettings) resolveLimits(color board.Color) ActualLimit {
	switch s.SearchUntil.Kind {
	case SearchInfinite:
		return ActualLimit{}
	case SearchLimited:
		return normalizeLimit(s.SearchUntil.Limit)
	default:
		depth := uint8(30)
		t := s.Clock.RecommendedTime(color)
		return ActualLimit{Depth: &depth, Time: &t}
	}
}

// EvaluationTask is the immutable-parameters-plus-atomics record
// shared between the façade and a search worker. All fields besides
// the embedded atomics are read-only after construction.
type EvaluationTask struct {
	Position      board.Board
	TT            *TranspositionTable
	AllowedMoves  []board.Move
	Limits        ActualLimit
	Ponder        bool
	startTime     time.Time
	cancelFlag    atomic.Bool
	endPonderFlag atomic.Bool
	nodesExplored atomic.Uint64
}

func newTask(pos board.Board, tt *TranspositionTable, settings EvaluationSettings) *EvaluationTask {
	return &EvaluationTask{
		Position:     pos,
		TT:           tt,
		AllowedMoves: settings.RestrictMoves,
		Limits:       settings.resolveLimits(pos.Turn),
		Ponder:       settings.Ponder,
		startTime:    time.Now(),
	}
}

// Cancel requests early termination; the worker observes this with
// Acquire semantics and returns whatever partial result it has.
func (t *EvaluationTask) Cancel() {
	t.cancelFlag.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (t *EvaluationTask) Cancelled() bool {
	return t.cancelFlag.Load()
}

// EndPonder signals a pondering worker to stop.
func (t *EvaluationTask) EndPonder() {
	t.endPonderFlag.Store(true)
}

// NodesExplored returns the number of nodes visited so far; may be
// stale relative to a concurrently running worker, but monotone.
func (t *EvaluationTask) NodesExplored() uint64 {
	return t.nodesExplored.Load()
}
