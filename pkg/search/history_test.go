package search_test

import (
	"testing"

	"github.com/herohde/quince/pkg/board"
	"github.com/herohde/quince/pkg/board/fen"
	"github.com/herohde/quince/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryUpdate(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := pos.LegalMoves(board.White)
	require.NotEmpty(t, moves)

	h := search.NewHistory()
	assert.Equal(t, uint32(0), h.Count(board.White, moves[0]))

	h.Update(board.White, moves[0])
	h.Update(board.White, moves[0])
	h.Update(board.White, moves[1])

	assert.Equal(t, uint32(2), h.Count(board.White, moves[0]))
	assert.Equal(t, uint32(1), h.Count(board.White, moves[1]))
	assert.Equal(t, uint32(0), h.Count(board.White, moves[2]))
	assert.Equal(t, 2, h.Size())
}

func TestHistorySort(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := pos.LegalMoves(board.White)
	require.True(t, len(moves) >= 3)

	h := search.NewHistory()
	favorite := moves[len(moves)-1]
	second := moves[len(moves)-2]
	for i := 0; i < 3; i++ {
		h.Update(board.White, favorite)
	}
	h.Update(board.White, second)

	h.Sort(board.White, moves)
	assert.True(t, favorite.Equals(moves[0]), "highest count not first: %v", moves[0])
	assert.True(t, second.Equals(moves[1]), "second count not second: %v", moves[1])

	// Unseen moves keep their generation order: the sort is stable.
	rest := pos.LegalMoves(board.White)
	i := 0
	for _, m := range rest {
		if m.Equals(favorite) || m.Equals(second) {
			continue
		}
		assert.True(t, m.Equals(moves[i+2]), "unseen move order changed at %v", i)
		i++
	}
}
