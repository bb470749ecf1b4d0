package eval

import "math"

// Score is a signed integer position or move score from the perspective of
// one side. Heuristic scores stay far below CheckmateBase; scores at or
// above it encode forced mates, with earlier mates scoring higher.
type Score int32

const (
	Inf    Score = math.MaxInt32
	NegInf Score = -Inf

	// CheckmateBase leaves headroom above it so that a mate found with more
	// remaining depth -- an earlier mate -- scores strictly higher.
	CheckmateBase Score = Inf - 50
)

// IsCheckmate returns true iff the score encodes a forced mate for either
// side.
func (s Score) IsCheckmate() bool {
	return s >= CheckmateBase || s <= -CheckmateBase
}
