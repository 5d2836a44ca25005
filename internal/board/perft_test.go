package board

import "testing"

func TestPerftStartingPosition(t *testing.T) {
	start := NewStartingBoard()

	tests := []struct {
		depth int
		want  uint64
	}{
		{1, 7},
		{2, 49},
	}
	for _, tt := range tests {
		if got := Perft(start, tt.depth); got != tt.want {
			t.Errorf("Perft(start, %d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

func TestMoveGenNeverMixesSlidesAndJumps(t *testing.T) {
	start := NewStartingBoard()
	pm := GenerateMoves(start)
	if pm.CanJump {
		t.Fatal("starting position has no captures available")
	}
	count := 0
	pm.ForEach(func(Move) { count++ })
	if count != 7 {
		t.Fatalf("expected 7 opening slides, got %d", count)
	}
}
