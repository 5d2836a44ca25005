// Package engine implements the transposition table, lazy move
// ordering, negamax searcher, and the Engine façade that owns a
// position and drives evaluation workers.
package engine

import (
	"log"
	"sync"

	"github.com/kbolino/draughts/internal/board"
	"github.com/kbolino/draughts/internal/eval"
)

// Logger receives search-lifecycle lines (start/stop, TT snapshot
// load) and backs LoggingFrontend's Debug passthrough. It is settable
// so a host application can redirect or silence it; it defaults to the
// standard library's default logger, matching the teacher's own
// package-level log.Printf usage.
var Logger = log.Default()

// Engine is the façade: it owns the current position, the
// transposition table, and at most one in-flight evaluation worker
// plus an optional pondering worker.
type Engine struct {
	frontend Frontend

	posMu    sync.Mutex
	position board.Board

	tt *TranspositionTable

	taskMu        sync.Mutex
	currentTask   *EvaluationTask
	ponderingTask *EvaluationTask

	wg sync.WaitGroup
}

// NewEngine allocates a TT of the given total capacity and wires fe as
// the searcher's reporting/debug sink; a nil fe discards everything.
func NewEngine(ttSize int, fe Frontend) *Engine {
	if fe == nil {
		fe = NopFrontend{}
	}
	return &Engine{
		frontend: fe,
		position: board.NewStartingBoard(),
		tt:       NewTranspositionTable(ttSize),
	}
}

// SetPosition replaces the current position.
func (e *Engine) SetPosition(b board.Board) {
	e.posMu.Lock()
	e.position = b
	e.posMu.Unlock()
}

// ResetPosition restores the standard starting position.
func (e *Engine) ResetPosition() {
	e.SetPosition(board.NewStartingBoard())
}

// CurrentPosition returns a snapshot of the current position.
func (e *Engine) CurrentPosition() board.Board {
	e.posMu.Lock()
	defer e.posMu.Unlock()
	return e.position
}

// IsLegalMove reports whether m is a member of the current position's
// legal-move set.
func (e *Engine) IsLegalMove(m board.Move) bool {
	return board.GenerateMoves(e.CurrentPosition()).Contains(m)
}

// ApplyMove validates m against the current position and, if legal,
// updates it; the position is left unchanged on failure.
func (e *Engine) ApplyMove(m board.Move) error {
	e.posMu.Lock()
	defer e.posMu.Unlock()
	if !board.GenerateMoves(e.position).Contains(m) {
		return ErrIllegalMove
	}
	e.position = e.position.ApplyMove(m)
	return nil
}

// Evaluate runs a synchronous search of the current position to
// completion (or until settings' limits / stop fire) and returns the
// result directly on the caller's goroutine. stop may be nil.
func (e *Engine) Evaluate(stop <-chan struct{}, settings EvaluationSettings) (eval.Eval, board.Move) {
	task := newTask(e.CurrentPosition(), e.tt, settings)

	if stop != nil {
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-stop:
				task.Cancel()
			case <-done:
			}
		}()
	}

	return search(task, e.frontend)
}

// StartEvaluation spawns an asynchronous worker for settings. If a
// pondering task was active, its end-ponder flag is signalled first so
// it winds down without fighting the new task for the TT.
func (e *Engine) StartEvaluation(settings EvaluationSettings) {
	e.taskMu.Lock()
	if e.ponderingTask != nil {
		e.ponderingTask.EndPonder()
		e.ponderingTask = nil
	}

	task := newTask(e.CurrentPosition(), e.tt, settings)
	e.currentTask = task
	e.taskMu.Unlock()

	Logger.Printf("[Engine] search start: turn=%v ponder=%v", task.Position.Turn, task.Ponder)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		if task.Ponder {
			e.taskMu.Lock()
			e.ponderingTask = task
			e.taskMu.Unlock()
		}

		ev, m := search(task, e.frontend)
		Logger.Printf("[Engine] search stop: move=%v eval=%v nodes=%d", m, ev, task.NodesExplored())

		e.taskMu.Lock()
		if e.currentTask == task {
			e.currentTask = nil
		}
		if e.ponderingTask == task {
			e.ponderingTask = nil
		}
		e.taskMu.Unlock()
	}()
}

// StopEvaluation cancels the active task and joins its worker. It
// returns ErrNoActiveEvaluation if nothing is running.
func (e *Engine) StopEvaluation() error {
	e.taskMu.Lock()
	task := e.currentTask
	e.taskMu.Unlock()

	if task == nil {
		return ErrNoActiveEvaluation
	}
	Logger.Printf("[Engine] search cancel requested")
	task.Cancel()
	e.wg.Wait()
	return nil
}

// IsPondering reports whether a pondering worker is currently active.
func (e *Engine) IsPondering() bool {
	e.taskMu.Lock()
	defer e.taskMu.Unlock()
	return e.ponderingTask != nil
}
