package search

import (
	"context"
	"fmt"
	"time"

	"github.com/herohde/quince/pkg/board"
	"github.com/herohde/quince/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// DefaultBudget is the default wall-clock computation budget per turn.
const DefaultBudget = time.Second

// Result is the outcome of a timed search.
type Result struct {
	Move  board.Move    // best move found
	Score eval.Score    // score of the best move at the deepest depth
	Depth int           // deepest fully completed depth
	Nodes uint64        // nodes searched across all depths
	Time  time.Duration // total time taken
}

func (r Result) String() string {
	return fmt.Sprintf("move=%v score=%v depth=%v nodes=%v time=%v", r.Move, r.Score, r.Depth, r.Nodes, r.Time)
}

// Iterative is a synchronous iterative-deepening harness. Each depth runs to
// full completion and the budget is checked only between depths: the result
// of the last completed depth is always used and a deep iteration may
// overshoot the budget. There is no mid-search cancellation.
type Iterative struct {
	// Root is the fixed-depth search.
	Root AlphaBeta
	// Budget is the wall-clock computation budget. Defaults to
	// DefaultBudget if unset.
	Budget time.Duration
	// DepthLimit, if set, stops deepening at the given depth.
	DepthLimit lang.Optional[uint]
}

// Search returns the best move for the side to move in the given position.
func (i Iterative) Search(ctx context.Context, pos *board.Position) (Result, error) {
	budget := i.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}

	var ret Result
	start := time.Now()
	for depth := 1; ; depth++ {
		m, score, nodes, err := i.Root.Search(ctx, pos, depth)
		if err != nil {
			return Result{}, err
		}
		ret = Result{
			Move:  m,
			Score: score,
			Depth: depth,
			Nodes: ret.Nodes + nodes,
			Time:  time.Since(start),
		}
		logw.Debugf(ctx, "Searched %v: depth=%v move=%v score=%v nodes=%v time=%v", pos, depth, m, score, nodes, ret.Time)

		if limit, ok := i.DepthLimit.V(); ok && uint(depth) >= limit {
			break
		}
		if time.Since(start) >= budget {
			break
		}
	}
	return ret, nil
}
