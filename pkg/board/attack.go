package board

// Piece move offsets. Bishops, rooks and queens move in every multiple of
// their directions; knights and kings a single offset.
var (
	knightOffsets = []Square{
		{2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-1, -2}, {-2, -1}, {1, -2}, {2, -1},
	}
	bishopDirections = []Square{
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
	rookDirections = []Square{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}
	royalDirections = []Square{
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}
)

// pawnAttackOffsets, indexed by attacker color, are the offsets from an
// attacked square to the squares an attacking pawn would capture from.
var pawnAttackOffsets = [2][2]Square{
	{{-1, 1}, {-1, -1}}, // White pawns capture from one rank below
	{{1, 1}, {1, -1}},   // Black pawns capture from one rank above
}

// IsAttacked returns true iff the given square is attacked by any piece of
// the attacking side. It inspects the board directly instead of enumerating
// moves, which is cheaper and avoids recursion through move generation.
func (p *Position) IsAttacked(sq Square, attacker Color) bool {
	knight := Knight.Code(attacker)
	pawn := Pawn.Code(attacker)
	bishop := Bishop.Code(attacker)
	rook := Rook.Code(attacker)
	queen := Queen.Code(attacker)
	king := King.Code(attacker)

	for _, o := range knightOffsets {
		if p.pieceAt(sq.Plus(o)) == knight {
			return true
		}
	}

	for _, o := range pawnAttackOffsets[attacker] {
		if p.pieceAt(sq.Plus(o)) == pawn {
			return true
		}
	}

	// Sliding attacks: the first piece along a ray decides. A king attacks
	// at distance one only.

	for _, d := range bishopDirections {
		if code := p.pieceAt(sq.Plus(d)); code != 0 {
			if code == bishop || code == queen || code == king {
				return true
			}
			continue // blocked
		}
		for next := sq.Plus(d).Plus(d); next.IsValid(); next = next.Plus(d) {
			code := p.pieceAt(next)
			if code == bishop || code == queen {
				return true
			}
			if code != 0 {
				break
			}
		}
	}

	for _, d := range rookDirections {
		if code := p.pieceAt(sq.Plus(d)); code != 0 {
			if code == rook || code == queen || code == king {
				return true
			}
			continue
		}
		for next := sq.Plus(d).Plus(d); next.IsValid(); next = next.Plus(d) {
			code := p.pieceAt(next)
			if code == rook || code == queen {
				return true
			}
			if code != 0 {
				break
			}
		}
	}

	return false
}

// IsChecked returns true iff the given side's king is attacked.
func (p *Position) IsChecked(c Color) bool {
	king, ok := p.KingSquare(c)
	if !ok {
		return false
	}
	return p.IsAttacked(king, c.Opponent())
}

// IsNonQuiescent returns true iff the piece that just moved is attacked by
// the side now to move: the position is tactically unstable and search
// should extend past its nominal horizon.
func (p *Position) IsNonQuiescent() bool {
	if !p.lastMove.IsValid() {
		return false
	}
	return p.IsAttacked(p.lastMove, p.turn)
}
