// Package eval implements the Evaluation scalar: a signed 16-bit value
// with a heuristic middle band and two "force" bands reserved for
// provable wins and losses, the distance to mate encoded in how far
// into the band the value sits.
package eval

import "math"

// Eval is a totally ordered score, compared with native integer
// ordering. Positive favors Dark; the searcher's negamax wrapper
// handles whose perspective a given Eval is from.
type Eval int16

const (
	// WIN/LOSS are the outermost force values, reserved for a mate
	// delivered at the current node.
	WIN  Eval = math.MaxInt16 - 1
	LOSS Eval = math.MinInt16 + 2
	DRAW Eval = 0

	// NullMax/NullMin seed alpha-beta windows wider than any real
	// evaluation, including the widest force value.
	NullMax Eval = math.MaxInt16
	NullMin Eval = math.MinInt16 + 1

	// ForceThreshold is the boundary of the heuristic band: values
	// with |e| > ForceThreshold are force-win/force-loss distances,
	// not material scores.
	ForceThreshold Eval = 16384
)

// New maps a heuristic score in roughly [-1, 1] to an Eval, clamping to
// WIN/LOSS outside that range.
func New(f float32) Eval {
	if f >= 1.0 {
		return WIN
	}
	if f <= -1.0 {
		return LOSS
	}
	return Eval(math.Round(float64(f) * float64(ForceThreshold)))
}

// ToF32 is New's inverse; undefined (but does not panic) for values in
// a force band.
func (e Eval) ToF32() float32 {
	return float32(e) / float32(ForceThreshold)
}

// IsForceWin reports whether e encodes a provable win.
func (e Eval) IsForceWin() bool {
	return e > ForceThreshold
}

// IsForceLoss reports whether e encodes a provable loss.
func (e Eval) IsForceLoss() bool {
	return e < -ForceThreshold
}

// Neg flips perspective: WIN and LOSS map onto each other, and the
// heuristic band reflects across DRAW.
func (e Eval) Neg() Eval {
	return -e
}

// Increment moves a force value one step toward the neutral band,
// lengthening the encoded mate distance by one ply as the value is
// propagated up the search tree. Heuristic and draw values are
// unaffected.
func (e Eval) Increment() Eval {
	switch {
	case e.IsForceWin():
		if e-1 > ForceThreshold {
			return e - 1
		}
		return ForceThreshold + 1
	case e.IsForceLoss():
		if e+1 < -ForceThreshold {
			return e + 1
		}
		return -ForceThreshold - 1
	default:
		return e
	}
}

// Add translates a heuristic value by f; force values are fixpoints,
// since a mate distance is not a material delta.
func (e Eval) Add(f float32) Eval {
	if e.IsForceWin() || e.IsForceLoss() {
		return e
	}
	return New(e.ToF32() + f)
}
