package board

// promotionKinds are the kinds a pawn may promote to.
var promotionKinds = []Piece{Queen, Rook, Bishop, Knight}

// pawnStartRank, indexed by Color, is the rank pawns double-push from.
var pawnStartRank = [2]int{1, 6}

// LegalMoves returns the legal moves for the given side: the pseudo-legal
// moves whose successor position does not leave the side's own king
// attacked. Castling moves (the king slides two files) additionally require
// that the side is not currently in check; the transit square itself is not
// re-tested.
func (p *Position) LegalMoves(c Color) []Move {
	candidates := p.PseudoLegalMoves(c)
	ret := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		if m.Piece == King && abs(m.To.File-m.From.File) > 1 {
			if p.IsChecked(c) {
				continue
			}
		}
		if !p.Apply(m).IsChecked(c) {
			ret = append(ret, m)
		}
	}
	return ret
}

// PseudoLegalMoves returns all moves allowed by the piece movement rules for
// the given side, including moves that would leave the king in check.
func (p *Position) PseudoLegalMoves(c Color) []Move {
	moves := make([]Move, 0, 40)

	forward := Square{1, 0}
	backward := Square{-1, 0}
	if c == Black {
		forward, backward = backward, forward
	}

	for _, e := range p.pieces[c] {
		switch e.Piece {
		case Pawn:
			ahead := e.Square.Plus(forward)
			promotes := ahead.Rank == 7 || ahead.Rank == 0

			if p.isClear(ahead) {
				if promotes {
					for _, kind := range promotionKinds {
						moves = append(moves, p.newMove(e, ahead, 0, kind, CastleNone))
					}
				} else {
					moves = append(moves, p.newMove(e, ahead, 0, NoPiece, CastleNone))
					if e.Square.Rank == pawnStartRank[c] && p.isClear(ahead.Plus(forward)) {
						moves = append(moves, p.newMove(e, ahead.Plus(forward), 0, NoPiece, CastleNone))
					}
				}
			}

			for _, df := range []int{-1, 1} {
				atk := ahead.Plus(Square{0, df})
				enPassant := atk == p.enPassant && p.hasOpponentPiece(p.enPassant.Plus(backward), c)
				if !p.hasOpponentPiece(atk, c) && !enPassant {
					continue
				}
				target := p.pieceAt(atk)
				if atk == p.enPassant {
					target = 'p'
				}
				if promotes {
					for _, kind := range promotionKinds {
						moves = append(moves, p.newMove(e, atk, target, kind, CastleNone))
					}
				} else {
					moves = append(moves, p.newMove(e, atk, target, NoPiece, CastleNone))
				}
			}

		case Knight:
			for _, o := range knightOffsets {
				to := e.Square.Plus(o)
				if p.isClear(to) || p.hasOpponentPiece(to, c) {
					moves = append(moves, p.newMove(e, to, p.pieceAt(to), NoPiece, CastleNone))
				}
			}

		case Bishop:
			moves = p.straightLineMoves(e, bishopDirections, c, moves)

		case Rook:
			moves = p.straightLineMoves(e, rookDirections, c, moves)

		case Queen:
			moves = p.straightLineMoves(e, royalDirections, c, moves)

		case King:
			for _, d := range royalDirections {
				to := e.Square.Plus(d)
				if p.isClear(to) || p.hasOpponentPiece(to, c) {
					moves = append(moves, p.newMove(e, to, p.pieceAt(to), NoPiece, CastleNone))
				}
			}

			if p.castling[c] != CastleNone {
				rank := homeRank(c)
				rook := Rook.Code(c)
				if p.castling[c].Queenside() {
					clear := p.isClear(Square{rank, 1}) && p.isClear(Square{rank, 2}) && p.isClear(Square{rank, 3})
					if clear && p.grid[rank][0] == rook {
						moves = append(moves, p.newMove(e, Square{rank, 2}, 0, NoPiece, CastleQueenside))
					}
				}
				if p.castling[c].Kingside() {
					clear := p.isClear(Square{rank, 5}) && p.isClear(Square{rank, 6})
					if clear && p.grid[rank][7] == rook {
						moves = append(moves, p.newMove(e, Square{rank, 6}, 0, NoPiece, CastleKingside))
					}
				}
			}
		}
	}
	return moves
}

func (p *Position) straightLineMoves(e PieceEntry, directions []Square, c Color, moves []Move) []Move {
	for _, d := range directions {
		for to := e.Square.Plus(d); ; to = to.Plus(d) {
			if p.isClear(to) || p.hasOpponentPiece(to, c) {
				moves = append(moves, p.newMove(e, to, p.pieceAt(to), NoPiece, CastleNone))
			}
			if !p.isClear(to) {
				break
			}
		}
	}
	return moves
}

func (p *Position) newMove(e PieceEntry, to Square, capture byte, promotion Piece, castle Castling) Move {
	return Move{
		From:       e.Square,
		To:         to,
		Piece:      e.Piece,
		Capture:    capture,
		Promotion:  promotion,
		Castle:     castle,
		ParentHash: p.hash,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
