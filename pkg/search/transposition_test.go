package search_test

import (
	"context"
	"testing"

	"github.com/herohde/quince/pkg/board"
	"github.com/herohde/quince/pkg/board/fen"
	"github.com/herohde/quince/pkg/eval"
	"github.com/herohde/quince/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspositionReadWrite(t *testing.T) {
	tt := search.NewTranspositionTable()

	_, ok := tt.Read(42)
	assert.False(t, ok)

	tt.Write(42, 100)
	score, ok := tt.Read(42)
	assert.True(t, ok)
	assert.Equal(t, eval.Score(100), score)
	assert.Equal(t, 1, tt.Size())

	tt.Write(42, 200)
	score, _ = tt.Read(42)
	assert.Equal(t, eval.Score(200), score)
	assert.Equal(t, 1, tt.Size())
}

func TestTransposition(t *testing.T) {
	// Two move orders reaching the same piece placement share a hash and
	// retrieve the same cached evaluation.
	apply := func(moves ...string) *board.Position {
		pos, err := fen.Decode(fen.Initial)
		require.NoError(t, err)
		for _, str := range moves {
			m, err := board.ParseMove(str)
			require.NoError(t, err)
			found := false
			for _, legal := range pos.LegalMoves(pos.Turn()) {
				if m.Equals(legal) {
					pos = pos.Apply(legal)
					found = true
					break
				}
			}
			require.Truef(t, found, "move %v not legal", str)
		}
		return pos
	}

	a := apply("g1f3", "g8f6", "d2d4", "d7d5")
	b := apply("d2d4", "d7d5", "g1f3", "g8f6")
	require.Equal(t, a.Hash(), b.Hash())

	tt := search.NewTranspositionTable()
	h := eval.NewHeuristic()

	score := h.Evaluate(context.Background(), a, board.White)
	tt.Write(a.Hash(), score)

	cached, ok := tt.Read(b.Hash())
	assert.True(t, ok)
	assert.Equal(t, score, cached)
}
