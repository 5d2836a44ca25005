package eval

import (
	"math/bits"

	"github.com/kbolino/draughts/internal/board"
)

// KingWorth is the material weight of a king relative to a man (1).
const KingWorth = 2

// Position returns the static, side-to-move-agnostic evaluation of b:
// positive favors Dark. Callers in the searcher apply the negamax
// perspective flip themselves.
func Position(b board.Board) Eval {
	dark := b.Pieces & b.Colors
	light := b.Pieces &^ b.Colors

	darkKings := dark & b.Kings
	lightKings := light & b.Kings
	darkMen := dark &^ b.Kings
	lightMen := light &^ b.Kings

	d := bits.OnesCount32(darkMen) + KingWorth*bits.OnesCount32(darkKings)
	l := bits.OnesCount32(lightMen) + KingWorth*bits.OnesCount32(lightKings)

	if d+l == 0 {
		return DRAW
	}
	return New(float32(d-l) / float32(d+l))
}
