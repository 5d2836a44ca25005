package engine

import "github.com/kbolino/draughts/internal/board"

// Frontend is the searcher's only outward-facing capability; the UI,
// CLI, and protocol adapters that consume it live outside this
// package and are reached only through this interface.
type Frontend interface {
	// ReportBestMove delivers the final best move for an evaluation.
	ReportBestMove(m board.Move)
	// Debug carries diagnostic text; implementations may no-op.
	Debug(msg string)
}

// NopFrontend discards everything; useful for tests and for
// synchronous Evaluate calls that don't need reporting.
type NopFrontend struct{}

func (NopFrontend) ReportBestMove(board.Move) {}
func (NopFrontend) Debug(string)              {}

// LoggingFrontend passes Debug text and best-move reports through to
// Logger, for a caller with no protocol adapter of its own to pass to
// NewEngine. NewEngine does not pick it by default: a nil Frontend
// becomes NopFrontend.
type LoggingFrontend struct{}

func (LoggingFrontend) ReportBestMove(m board.Move) {
	Logger.Printf("[Search] bestmove %v", m)
}

func (LoggingFrontend) Debug(msg string) {
	Logger.Printf("[Search] %s", msg)
}
