// Package search contains the engine's search: alpha-beta pruned minimax
// with quiescence extension, history-table move ordering and a
// transposition table of cached evaluations, driven by iterative deepening
// under a wall-clock budget.
package search

import (
	"fmt"
	"sort"

	"github.com/herohde/quince/pkg/board"
)

// History is the history table: a count of how often each move has been
// selected as best or caused a cutoff. High counts make good candidates for
// early exploration, which maximizes alpha-beta cutoffs. The table is keyed
// by move hash, grows monotonically and lives for the whole game.
type History struct {
	counts map[board.ZobristHash]uint32
}

func NewHistory() *History {
	return &History{
		counts: map[board.ZobristHash]uint32{},
	}
}

// Update increments the count for the given move by the given side.
func (h *History) Update(c board.Color, m board.Move) {
	h.counts[m.Hash(c)]++
}

// Count returns the count for the given move by the given side. Unseen
// moves count zero.
func (h *History) Count(c board.Color, m board.Move) uint32 {
	return h.counts[m.Hash(c)]
}

// Sort orders the moves by descending count, in place. The sort is stable:
// equal counts keep their generation order, so ordering is deterministic.
func (h *History) Sort(c board.Color, moves []board.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return h.Count(c, moves[i]) > h.Count(c, moves[j])
	})
}

// Size returns the number of distinct moves seen.
func (h *History) Size() int {
	return len(h.counts)
}

func (h *History) String() string {
	return fmt.Sprintf("history[%v]", len(h.counts))
}
