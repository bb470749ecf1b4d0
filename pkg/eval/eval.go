// Package eval contains position evaluation logic and utilities.
package eval

import (
	"context"

	"github.com/herohde/quince/pkg/board"
)

// Evaluator is a static position evaluator. Implementations must be pure
// functions of the position so that their results are cacheable by hash.
type Evaluator interface {
	// Evaluate returns the position score from the perspective of the
	// given side.
	Evaluate(ctx context.Context, pos *board.Position, perspective board.Color) Score
}

// Weights are the relative weights of the heuristic terms.
type Weights struct {
	OwnMaterial      Score // per point of own material
	OpponentMaterial Score // per point of opponent material; negative
	Guarded          Score // per point of own material defended by own pieces
	Attackable       Score // per point of opponent material under attack
	PawnAdvance      Score // per rank advanced by own odd-file pawns
}

// DefaultWeights are the standard heuristic weights. The own/opponent
// material asymmetry (+25/-20) trades a little material aggression for
// defensive solidity and is part of the engine's playing character.
var DefaultWeights = Weights{
	OwnMaterial:      25,
	OpponentMaterial: -20,
	Guarded:          5,
	Attackable:       3,
	PawnAdvance:      2,
}

// Heuristic scores material balance, mutual defence, capture threats and
// pawn advancement. Guard and threat detection use attack inspection rather
// than move enumeration, which keeps a single evaluation cheap.
type Heuristic struct {
	Weights Weights
}

func NewHeuristic() Heuristic {
	return Heuristic{Weights: DefaultWeights}
}

func (h Heuristic) Evaluate(ctx context.Context, pos *board.Position, perspective board.Color) Score {
	w := h.Weights
	opponent := perspective.Opponent()

	var score Score
	for _, e := range pos.Pieces(perspective) {
		v := NominalValue(e.Piece)
		score += w.OwnMaterial * v
		if pos.IsAttacked(e.Square, perspective) {
			score += w.Guarded * v
		}
		if e.Piece == board.Pawn && e.Square.File%2 == 1 {
			score += w.PawnAdvance * Score(pawnAdvance(perspective, e.Square))
		}
	}
	for _, e := range pos.Pieces(opponent) {
		v := NominalValue(e.Piece)
		score += w.OpponentMaterial * v
		if pos.IsAttacked(e.Square, perspective) {
			score += w.Attackable * v
		}
	}
	return score
}

// NominalValue returns the nominal value of a piece in pawns. The king has
// no material value: it cannot be taken.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 1
	case board.Bishop, board.Knight:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	default:
		return 0
	}
}

// pawnAdvance returns how many ranks the pawn has advanced from its
// starting rank.
func pawnAdvance(c board.Color, sq board.Square) int {
	if c == board.White {
		return sq.Rank - 1
	}
	return 6 - sq.Rank
}
