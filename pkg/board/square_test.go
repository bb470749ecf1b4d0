package board_test

import (
	"testing"

	"github.com/herohde/quince/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestParseSquareStr(t *testing.T) {
	tests := []struct {
		str      string
		expected board.Square
		ok       bool
	}{
		{"a1", board.NewSquare(0, 0), true},
		{"h8", board.NewSquare(7, 7), true},
		{"e3", board.NewSquare(2, 4), true},
		{"i1", board.Square{}, false},
		{"a9", board.Square{}, false},
		{"", board.Square{}, false},
		{"e33", board.Square{}, false},
	}

	for _, tt := range tests {
		actual, err := board.ParseSquareStr(tt.str)
		if !tt.ok {
			assert.Errorf(t, err, "expected failure: '%v'", tt.str)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, actual)
		assert.Equal(t, tt.str, actual.String())
	}
}

func TestSquareOffBoard(t *testing.T) {
	assert.False(t, board.NoSquare.IsValid())
	assert.False(t, board.NewSquare(-1, 4).IsValid())
	assert.False(t, board.NewSquare(8, 4).IsValid())
	assert.False(t, board.NewSquare(4, -1).IsValid())
	assert.False(t, board.NewSquare(4, 8).IsValid())
	assert.True(t, board.NewSquare(0, 0).IsValid())
	assert.True(t, board.NewSquare(7, 7).IsValid())
}

func TestSquarePlus(t *testing.T) {
	sq := board.NewSquare(0, 0).Plus(board.NewSquare(2, 1))
	assert.Equal(t, board.NewSquare(2, 1), sq)

	off := board.NewSquare(0, 0).Plus(board.NewSquare(-1, -1))
	assert.False(t, off.IsValid())
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		str      string
		expected board.Move
		ok       bool
	}{
		{"e2e4", board.Move{From: board.NewSquare(1, 4), To: board.NewSquare(3, 4)}, true},
		{"a7a8q", board.Move{From: board.NewSquare(6, 0), To: board.NewSquare(7, 0), Promotion: board.Queen}, true},
		{"a7a8n", board.Move{From: board.NewSquare(6, 0), To: board.NewSquare(7, 0), Promotion: board.Knight}, true},
		{"a7a8k", board.Move{}, false},
		{"e2", board.Move{}, false},
		{"e2e4e5", board.Move{}, false},
	}

	for _, tt := range tests {
		actual, err := board.ParseMove(tt.str)
		if !tt.ok {
			assert.Errorf(t, err, "expected failure: '%v'", tt.str)
			continue
		}
		assert.NoError(t, err)
		assert.True(t, tt.expected.Equals(actual), "parsed %v != %v", actual, tt.expected)
	}
}
