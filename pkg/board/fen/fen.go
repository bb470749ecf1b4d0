// Package fen contains utilities for reading and writing positions in FEN
// notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/herohde/quince/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode returns a new position from a FEN description.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (*board.Position, error) {
	// A FEN record contains six fields, separated by spaces.

	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of sections in FEN: '%v'", fen)
	}

	// (1) Piece placement, rank 8 first, file a through h within each rank.
	// Digits count blank squares; letters are SAN piece codes, uppercase
	// for White and lowercase for Black.

	var pieces []board.Placement

	rank, file := 7, 0
	for _, r := range []rune(parts[0]) {
		switch {
		case r == '/':
			if file != 8 {
				return nil, fmt.Errorf("invalid rank length in FEN: '%v'", fen)
			}
			rank, file = rank-1, 0

		case unicode.IsDigit(r):
			file += int(r - '0')

		case unicode.IsLetter(r):
			color, piece, ok := board.DecodeCode(byte(r))
			if !ok {
				return nil, fmt.Errorf("invalid piece '%v' in FEN: '%v'", r, fen)
			}
			pieces = append(pieces, board.Placement{
				Square: board.NewSquare(rank, file),
				Color:  color,
				Piece:  piece,
			})
			file++

		default:
			return nil, fmt.Errorf("invalid character in FEN: '%v'", fen)
		}
	}
	if rank != 0 || file != 8 {
		return nil, fmt.Errorf("invalid number of squares in FEN: '%v'", fen)
	}

	// (2)-(4) Active color, castling availability, en passant target.

	turn, castling, enPassant, err := Metadata(fen)
	if err != nil {
		return nil, err
	}

	// (5)-(6) Halfmove clock and fullmove number. Validated but not
	// otherwise used: draw clocks are outside this engine's model.

	if np, err := strconv.Atoi(parts[4]); err != nil || np < 0 {
		return nil, fmt.Errorf("invalid halfmove in FEN: '%v'", fen)
	}
	if fm, err := strconv.Atoi(parts[5]); err != nil || fm < 0 {
		return nil, fmt.Errorf("invalid full moves in FEN: '%v'", fen)
	}

	return board.NewPosition(pieces, castling, enPassant, turn)
}

// Metadata returns the active color, castling rights and en passant target
// fields of a FEN record. Used for game snapshots, where piece placement
// arrives separately and only the FEN metadata is authoritative.
func Metadata(fen string) (board.Color, [2]board.Castling, board.Square, error) {
	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) < 4 {
		return 0, [2]board.Castling{}, board.NoSquare, fmt.Errorf("invalid number of sections in FEN: '%v'", fen)
	}

	var turn board.Color
	switch parts[1] {
	case "w", "W":
		turn = board.White
	case "b", "B":
		turn = board.Black
	default:
		return 0, [2]board.Castling{}, board.NoSquare, fmt.Errorf("invalid active color in FEN: '%v'", fen)
	}

	castling, ok := board.ParseCastlingFEN(parts[2])
	if !ok {
		return 0, [2]board.Castling{}, board.NoSquare, fmt.Errorf("invalid castling in FEN: '%v'", fen)
	}

	enPassant := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return 0, [2]board.Castling{}, board.NoSquare, fmt.Errorf("invalid en passant in FEN: '%v'", fen)
		}
		enPassant = sq
	}

	return turn, castling, enPassant, nil
}

// Encode encodes the position in FEN notation. The halfmove clock and
// fullmove number are not tracked by positions and print as "0 1".
func Encode(pos *board.Position) string {
	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	castling := board.PrintCastlingFEN([2]board.Castling{
		pos.Castling(board.White),
		pos.Castling(board.Black),
	})

	return fmt.Sprintf("%v %v %v %v 0 1", pos, pos.Turn(), castling, ep)
}
