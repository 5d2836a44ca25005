package board

import "testing"

func TestStartingBoardEquality(t *testing.T) {
	a := NewStartingBoard()
	b := NewStartingBoard()
	if !a.Equal(b) {
		t.Fatal("starting boards should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Fatal("equal boards must hash equal")
	}
}

func TestForwardLeftSlidePromotes(t *testing.T) {
	b := Board{Pieces: 0b10000, Colors: 0b10000, Kings: 0, Turn: Dark}
	m := NewMove(4, ForwardLeft, false)
	out := b.ApplyMove(m)

	if out.Pieces&(1<<4) != 0 {
		t.Fatal("source square should be cleared")
	}
	if out.Pieces&(1<<11) == 0 {
		t.Fatal("destination square should be occupied")
	}
	if out.Kings&(1<<11) == 0 {
		t.Fatal("piece reaching the far rank must promote")
	}
	if out.Turn != Light {
		t.Fatal("turn should flip after a non-continuing slide")
	}
}

func TestForwardLeftJumpCaptures(t *testing.T) {
	b := Board{Pieces: 0b10000001, Colors: 1, Kings: 0, Turn: Dark}
	m := NewMove(0, ForwardLeft, true)
	out := b.ApplyMove(m)

	if bitSet(out.Pieces, 0) || bitSet(out.Pieces, 7) {
		t.Fatal("start and captured squares must be cleared")
	}
	if !bitSet(out.Pieces, 14) {
		t.Fatal("landing square must be occupied")
	}
	if !bitSet(out.Colors, 14) {
		t.Fatal("landed piece should remain Dark")
	}
	if bitSet(out.Kings, 14) {
		t.Fatal("landed piece should not be a king")
	}
	if out.Turn != Light {
		t.Fatal("single jump with no follow-up capture should flip turn")
	}
}

func TestMultiJumpContinuationKeepsTurn(t *testing.T) {
	// Dark man at 0, Light men at 7 and 15; jumping 0->14 leaves a
	// further ForwardRight capture available from 14 over 15.
	b := Board{
		Pieces: 1<<0 | 1<<7 | 1<<15,
		Colors: 1 << 0,
		Kings:  0,
		Turn:   Dark,
	}
	out := b.ApplyMove(NewMove(0, ForwardLeft, true))

	if out.Turn != Dark {
		t.Fatalf("turn should not flip mid multi-jump, got %v", out.Turn)
	}
	if !bitSet(out.Pieces, 14) {
		t.Fatal("piece should have landed on 14")
	}
}

func TestKingNeverChainsJumps(t *testing.T) {
	// Same geometry as above but the mover is already a king; per the
	// engine's rule only men chain captures in one turn.
	b := Board{
		Pieces: 1<<0 | 1<<7 | 1<<15,
		Colors: 1 << 0,
		Kings:  1 << 0,
		Turn:   Dark,
	}
	out := b.ApplyMove(NewMove(0, ForwardLeft, true))
	if out.Turn != Light {
		t.Fatal("a king jump always ends the turn")
	}
}

func TestHasJumpsMatchesMoveSet(t *testing.T) {
	b := Board{
		Pieces: 1<<0 | 1<<7 | 1<<15,
		Colors: 1 << 0,
		Kings:  0,
		Turn:   Dark,
	}
	pm := GenerateMoves(b)
	if HasJumps(b) != pm.CanJump {
		t.Fatal("HasJumps must agree with GenerateMoves.CanJump when jumps exist")
	}
	if !pm.CanJump {
		t.Fatal("expected forced capture in this position")
	}
}
