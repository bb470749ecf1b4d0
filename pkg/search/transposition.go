package search

import (
	"fmt"

	"github.com/herohde/quince/pkg/board"
	"github.com/herohde/quince/pkg/eval"
)

// Transposition is a transposition table caching heuristic evaluations by
// position hash, so that positions reached by different move orders are
// evaluated once. The hash covers material and geometry only, which is
// exactly what the heuristic depends on; storing search bounds here would
// be unsound without re-keying on side-to-move, castling and en passant.
//
// The table has no aging, no eviction and no collision check: Zobrist
// collisions are vanishingly rare at the depths reached within one turn.
// It lives for the whole game.
type Transposition struct {
	scores map[board.ZobristHash]eval.Score
}

func NewTranspositionTable() *Transposition {
	return &Transposition{
		scores: map[board.ZobristHash]eval.Score{},
	}
}

// Read returns the cached score for the given position hash, if present.
func (t *Transposition) Read(hash board.ZobristHash) (eval.Score, bool) {
	score, ok := t.scores[hash]
	return score, ok
}

// Write stores the score for the given position hash.
func (t *Transposition) Write(hash board.ZobristHash, score eval.Score) {
	t.scores[hash] = score
}

// Size returns the number of cached positions.
func (t *Transposition) Size() int {
	return len(t.scores)
}

func (t *Transposition) String() string {
	return fmt.Sprintf("tt[%v]", len(t.scores))
}
