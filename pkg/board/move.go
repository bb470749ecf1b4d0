package board

import (
	"fmt"
	"strings"
)

// Move represents a fully-described action: the origin and destination
// squares, the kind of the moved piece, the grid code of the captured piece
// (zero if none), the promotion kind (NoPiece if none), the castle marker
// (CastleNone if not a castling move) and the hash of the position the move
// was generated from. Moves are immutable once constructed.
type Move struct {
	From, To   Square
	Piece      Piece
	Capture    byte
	Promotion  Piece
	Castle     Castling
	ParentHash ZobristHash
}

// ParseMove parses a move in pure algebraic coordinate notation, such as
// "e2e4" or "a7a8q". The parsed move carries no contextual information.
func ParseMove(str string) (Move, error) {
	runes := []rune(strings.ToLower(strings.TrimSpace(str)))
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquareStr(string(runes[0:2]))
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	to, err := ParseSquareStr(string(runes[2:4]))
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: '%v': %v", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}
	return Move{From: from, To: to}, nil
}

// Equals returns true iff the moves describe the same action, ignoring
// generation context.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) IsCapture() bool {
	return m.Capture != 0
}

func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

func (m Move) IsCastle() bool {
	return m.Castle != CastleNone
}

// Hash returns the move hash for the given moving color: the parent position
// hash XOR the key of the moved kind on the destination square. It identifies
// "this move in this position" and keys the history table.
func (m Move) Hash(c Color) ZobristHash {
	return m.ParentHash ^ PieceKey(c, m.Piece, m.To)
}

func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
