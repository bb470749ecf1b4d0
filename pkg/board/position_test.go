package board_test

import (
	"testing"

	"github.com/herohde/quince/pkg/board"
	"github.com/herohde/quince/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifyConsistency asserts that the grid and the piece lists describe the
// same pieces.
func verifyConsistency(t *testing.T, pos *board.Position) {
	t.Helper()

	entries := 0
	for _, c := range []board.Color{board.White, board.Black} {
		for _, e := range pos.Pieces(c) {
			color, piece, ok := pos.PieceAt(e.Square)
			require.True(t, ok, "piece list entry %v not on grid", e)
			assert.Equal(t, c, color)
			assert.Equal(t, e.Piece, piece)
			entries++
		}
	}

	occupied := 0
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if _, _, ok := pos.PieceAt(board.NewSquare(rank, file)); ok {
				occupied++
			}
		}
	}
	assert.Equal(t, occupied, entries)
}

func TestLegalMovesInitial(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := pos.LegalMoves(board.White)
	assert.Len(t, moves, 20) // 16 pawn moves + 4 knight moves

	pawns, knights := 0, 0
	for _, m := range moves {
		switch m.Piece {
		case board.Pawn:
			pawns++
		case board.Knight:
			knights++
		default:
			t.Errorf("unexpected move in initial position: %v", m)
		}
	}
	assert.Equal(t, 16, pawns)
	assert.Equal(t, 4, knights)
}

func TestApply(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	for _, str := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5"} {
		m := findMove(t, pos, str)
		next := pos.Apply(m)
		verifyConsistency(t, next)

		assert.Equal(t, pos.Turn().Opponent(), next.Turn())
		last, ok := next.LastMove()
		assert.True(t, ok)
		assert.Equal(t, m.To, last)

		pos = next
	}

	assert.Equal(t, "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R", pos.String())
}

func TestApplyIsPure(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	m := findMove(t, pos, "e2e4")
	a := pos.Apply(m)
	b := pos.Apply(m)

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", pos.String())
}

func TestEnPassant(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	for _, str := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		pos = pos.Apply(findMove(t, pos, str))
	}

	ep, ok := pos.EnPassant()
	require.True(t, ok)
	assert.Equal(t, "d6", ep.String())

	m := findMove(t, pos, "e5d6")
	assert.Equal(t, byte('p'), m.Capture)
	assert.Equal(t, board.Pawn, m.Piece)

	next := pos.Apply(m)
	verifyConsistency(t, next)

	_, _, ok = next.PieceAt(board.NewSquare(4, 3)) // d5
	assert.False(t, ok, "captured pawn still on d5")

	pawns := 0
	for _, e := range next.Pieces(board.Black) {
		if e.Piece == board.Pawn {
			pawns++
		}
	}
	assert.Equal(t, 7, pawns)
}

func TestPromotion(t *testing.T) {
	pos, err := fen.Decode("7k/P7/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)

	var promotions []board.Piece
	for _, m := range pos.LegalMoves(board.White) {
		if m.To.String() == "a8" {
			assert.Equal(t, board.Pawn, m.Piece)
			promotions = append(promotions, m.Promotion)
		}
	}
	assert.ElementsMatch(t, []board.Piece{board.Queen, board.Rook, board.Bishop, board.Knight}, promotions)

	m := findMove(t, pos, "a7a8q")
	next := pos.Apply(m)
	verifyConsistency(t, next)

	color, piece, ok := next.PieceAt(board.NewSquare(7, 0))
	require.True(t, ok)
	assert.Equal(t, board.White, color)
	assert.Equal(t, board.Queen, piece)
}

func TestCastling(t *testing.T) {
	t.Run("kingside", func(t *testing.T) {
		pos, err := fen.Decode("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
		require.NoError(t, err)

		m := findMove(t, pos, "e1g1")
		assert.Equal(t, board.CastleKingside, m.Castle)

		next := pos.Apply(m)
		verifyConsistency(t, next)

		_, piece, ok := next.PieceAt(board.NewSquare(0, 6))
		require.True(t, ok)
		assert.Equal(t, board.King, piece)

		_, piece, ok = next.PieceAt(board.NewSquare(0, 5))
		require.True(t, ok)
		assert.Equal(t, board.Rook, piece)

		assert.Equal(t, board.CastleNone, next.Castling(board.White))
	})

	t.Run("queenside", func(t *testing.T) {
		pos, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
		require.NoError(t, err)

		next := pos.Apply(findMove(t, pos, "e1c1"))
		verifyConsistency(t, next)

		_, piece, ok := next.PieceAt(board.NewSquare(0, 2))
		require.True(t, ok)
		assert.Equal(t, board.King, piece)

		_, piece, ok = next.PieceAt(board.NewSquare(0, 3))
		require.True(t, ok)
		assert.Equal(t, board.Rook, piece)
	})

	t.Run("blocked", func(t *testing.T) {
		pos, err := fen.Decode("4k3/8/8/8/8/8/8/4KB1R w K - 0 1")
		require.NoError(t, err)

		assertNoMove(t, pos, board.White, "e1g1")
	})

	t.Run("transit", func(t *testing.T) {
		// The b5 bishop attacks f1, the square the king slides through.
		// Legality re-tests check only at the destination, so the castling
		// move is still offered.
		pos, err := fen.Decode("4k3/8/8/1b6/8/8/8/4K2R w K - 0 1")
		require.NoError(t, err)

		findMove(t, pos, "e1g1")
	})

	t.Run("incheck", func(t *testing.T) {
		// Black rook checks the king: castling out of check is not allowed.
		pos, err := fen.Decode("4k3/8/8/8/8/8/4r3/4K2R w K - 0 1")
		require.NoError(t, err)

		assertNoMove(t, pos, board.White, "e1g1")
	})

	t.Run("rights", func(t *testing.T) {
		pos, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		require.NoError(t, err)

		next := pos.Apply(findMove(t, pos, "h1h2"))
		assert.Equal(t, board.CastleQueenside, next.Castling(board.White))
		assert.Equal(t, board.CastleBoth, next.Castling(board.Black))

		next = next.Apply(findMove(t, next, "e8d8"))
		assert.Equal(t, board.CastleNone, next.Castling(board.Black))
	})
}

func TestLegalMovesFilterChecks(t *testing.T) {
	// The d2 rook is pinned to the king: moving it off the file is illegal.
	pos, err := fen.Decode("3rk3/8/8/8/8/8/3R4/3K4 w - - 0 1")
	require.NoError(t, err)

	assertNoMove(t, pos, board.White, "d2e2")
	findMove(t, pos, "d2d5")

	for _, m := range pos.LegalMoves(board.White) {
		next := pos.Apply(m)
		assert.False(t, next.IsChecked(board.White), "move %v leaves king in check", m)
	}
}

func TestPseudoLegalTargets(t *testing.T) {
	pos, err := fen.Decode("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	for _, c := range []board.Color{board.White, board.Black} {
		for _, m := range pos.PseudoLegalMoves(c) {
			if m.IsCastle() {
				want := 6
				if m.Castle == board.CastleQueenside {
					want = 2
				}
				assert.Equal(t, want, m.To.File)
				continue
			}
			owner, _, ok := pos.PieceAt(m.To)
			if ok {
				assert.Equal(t, c.Opponent(), owner, "move %v targets own piece", m)
			}
		}
	}
}

func findMove(t *testing.T, pos *board.Position, str string) board.Move {
	t.Helper()

	candidate, err := board.ParseMove(str)
	require.NoError(t, err)

	for _, m := range pos.LegalMoves(pos.Turn()) {
		if candidate.Equals(m) {
			return m
		}
	}
	t.Fatalf("move %v not legal in %v", str, pos)
	return board.Move{}
}

func assertNoMove(t *testing.T, pos *board.Position, c board.Color, str string) {
	t.Helper()

	candidate, err := board.ParseMove(str)
	require.NoError(t, err)

	for _, m := range pos.LegalMoves(c) {
		assert.False(t, candidate.Equals(m), "move %v unexpectedly legal", str)
	}
}
