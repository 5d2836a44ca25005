package engine

import (
	"testing"

	"github.com/kbolino/draughts/internal/board"
	"github.com/kbolino/draughts/internal/eval"
)

func TestTranspositionDepthPreferredReplacement(t *testing.T) {
	tt := NewTranspositionTable(1024)
	b := board.NewStartingBoard()

	tt.Insert(b, eval.New(0.5), 5)
	tt.Insert(b, eval.New(-0.5), 3)

	if got, ok := tt.Get(b, 5); !ok || got != eval.New(0.5) {
		t.Fatalf("Get(b, 5) = (%d, %v), want (%d, true) from the depth table", got, ok, eval.New(0.5))
	}
	if got, ok := tt.Get(b, 3); !ok || got != eval.New(-0.5) {
		t.Fatalf("Get(b, 3) = (%d, %v), want (%d, true) from the replace table", got, ok, eval.New(-0.5))
	}
}

func TestTranspositionMissOnDeeperQuery(t *testing.T) {
	tt := NewTranspositionTable(1024)
	b := board.NewStartingBoard()
	tt.Insert(b, eval.DRAW, 2)

	if _, ok := tt.Get(b, 4); ok {
		t.Fatal("a shallower stored depth must miss a deeper query")
	}
}

func TestTranspositionGetAnyDepthIgnoresDepth(t *testing.T) {
	tt := NewTranspositionTable(1024)
	b := board.NewStartingBoard()
	tt.Insert(b, eval.New(0.25), 1)

	got, ok := tt.GetAnyDepth(b)
	if !ok || got != eval.New(0.25) {
		t.Fatalf("GetAnyDepth = (%d, %v), want (%d, true)", got, ok, eval.New(0.25))
	}
}

func TestTranspositionDistinctBoardsDontCollideOnEquality(t *testing.T) {
	tt := NewTranspositionTable(1024)
	a := board.NewStartingBoard()
	bb := a
	bb.Turn = board.Light // different board, same Pieces hash input

	tt.Insert(a, eval.New(0.1), 4)
	if _, ok := tt.Get(bb, 4); ok {
		t.Fatal("a differently-turned board must not match a's entry")
	}
}
