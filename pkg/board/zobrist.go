package board

import (
	"math/rand"
	"sync"
)

// ZobristHash is a position hash formed by XOR-combining per-(square, piece)
// random keys. It covers material and geometry only: castling rights, the
// en passant target and the side to move are deliberately not mixed in, so
// the hash is only suitable for keying caches whose values depend on the
// piece placement alone.
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristHash uint64

// zobristKeys is the process-wide 8x8x12 key table: one key per square per
// (kind, color) combination. Initialized exactly once, from a deterministic
// seed so that hashes are reproducible in tests.
type zobristKeys struct {
	keys [8][8][12]ZobristHash
}

var (
	zobristOnce sync.Once
	zobrist     *zobristKeys
	zobristSeed int64
)

// InitZobrist seeds the process-wide Zobrist key table. It must be called
// before any position is constructed; later calls have no effect.
func InitZobrist(seed int64) {
	zobristSeed = seed
	_ = hashKeys()
}

func hashKeys() *zobristKeys {
	zobristOnce.Do(func() {
		r := rand.New(rand.NewSource(zobristSeed))
		zt := &zobristKeys{}
		for rank := 0; rank < 8; rank++ {
			for file := 0; file < 8; file++ {
				for i := 0; i < 12; i++ {
					zt.keys[rank][file][i] = ZobristHash(r.Uint64())
				}
			}
		}
		zobrist = zt
	})
	return zobrist
}

// pieceKeyIndex maps a (color, kind) pair to its key-table index: White
// pieces occupy 0-5 in the order P,R,N,B,Q,K and Black pieces 6-11.
func pieceKeyIndex(c Color, p Piece) int {
	var i int
	switch p {
	case Pawn:
		i = 0
	case Rook:
		i = 1
	case Knight:
		i = 2
	case Bishop:
		i = 3
	case Queen:
		i = 4
	case King:
		i = 5
	default:
		return -1
	}
	if c == Black {
		i += 6
	}
	return i
}

// PieceKey returns the key for the given piece on the given square.
func PieceKey(c Color, p Piece, sq Square) ZobristHash {
	return hashKeys().keys[sq.Rank][sq.File][pieceKeyIndex(c, p)]
}

// hashGrid computes the hash of a grid from scratch: the XOR of the keys at
// every occupied square.
func hashGrid(grid *[8][8]byte) ZobristHash {
	var hash ZobristHash
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if c, p, ok := DecodeCode(grid[rank][file]); ok {
				hash ^= PieceKey(c, p, Square{Rank: rank, File: file})
			}
		}
	}
	return hash
}
