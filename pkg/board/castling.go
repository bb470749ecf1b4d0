package board

import "strings"

// Castling represents one side's castling rights. It doubles as the castle
// marker on a move, where CastleKingside or CastleQueenside identify the
// compound king-and-rook move being made.
type Castling uint8

const (
	CastleNone Castling = iota
	CastleKingside
	CastleQueenside
	CastleBoth
)

// ParseCastlingFEN parses the castling field of a FEN record ("KQkq" or "-")
// into per-side rights, indexed by Color.
func ParseCastlingFEN(str string) ([2]Castling, bool) {
	var ret [2]Castling
	if str == "-" {
		return ret, true
	}
	for _, r := range []rune(str) {
		switch r {
		case 'K':
			ret[White] = ret[White].WithKingside()
		case 'Q':
			ret[White] = ret[White].WithQueenside()
		case 'k':
			ret[Black] = ret[Black].WithKingside()
		case 'q':
			ret[Black] = ret[Black].WithQueenside()
		default:
			return ret, false
		}
	}
	return ret, true
}

// Kingside returns true iff kingside castling is allowed.
func (c Castling) Kingside() bool {
	return c == CastleKingside || c == CastleBoth
}

// Queenside returns true iff queenside castling is allowed.
func (c Castling) Queenside() bool {
	return c == CastleQueenside || c == CastleBoth
}

func (c Castling) WithKingside() Castling {
	if c == CastleQueenside || c == CastleBoth {
		return CastleBoth
	}
	return CastleKingside
}

func (c Castling) WithQueenside() Castling {
	if c == CastleKingside || c == CastleBoth {
		return CastleBoth
	}
	return CastleQueenside
}

// WithoutKingside retracts the kingside right, if present.
func (c Castling) WithoutKingside() Castling {
	switch c {
	case CastleBoth:
		return CastleQueenside
	case CastleKingside:
		return CastleNone
	default:
		return c
	}
}

// WithoutQueenside retracts the queenside right, if present.
func (c Castling) WithoutQueenside() Castling {
	switch c {
	case CastleBoth:
		return CastleKingside
	case CastleQueenside:
		return CastleNone
	default:
		return c
	}
}

// PrintCastlingFEN prints per-side rights as a FEN castling field.
func PrintCastlingFEN(rights [2]Castling) string {
	var sb strings.Builder
	if rights[White].Kingside() {
		sb.WriteString("K")
	}
	if rights[White].Queenside() {
		sb.WriteString("Q")
	}
	if rights[Black].Kingside() {
		sb.WriteString("k")
	}
	if rights[Black].Queenside() {
		sb.WriteString("q")
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func (c Castling) String() string {
	switch c {
	case CastleNone:
		return "-"
	case CastleKingside:
		return "O-O"
	case CastleQueenside:
		return "O-O-O"
	case CastleBoth:
		return "O-O/O-O-O"
	default:
		return "?"
	}
}
