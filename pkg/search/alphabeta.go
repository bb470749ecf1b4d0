package search

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/herohde/quince/pkg/board"
	"github.com/herohde/quince/pkg/eval"
)

// DefaultQuiescence is the default quiescence budget in extra plies.
const DefaultQuiescence = 2

// AlphaBeta implements depth-limited minimax with alpha-beta pruning and
// quiescence extension. Moves are explored in history-table order. When the
// depth limit is reached on a tactically unstable position, the search
// continues by spending the quiescence budget instead of depth until the
// position settles or the budget runs out.
//
// Terminal positions -- no legal moves -- score as mate for the side that
// delivered it. A mate by the maximizing side scores higher the earlier it
// comes; being mated scores NegInf at any distance. Stalemate is not
// distinguished from mate: a known defect, kept for compatibility.
type AlphaBeta struct {
	// Eval is the leaf evaluator.
	Eval eval.Evaluator
	// Quiescence is the quiescence budget in extra plies.
	Quiescence int
	// History is the move-ordering table, shared across searches.
	History *History
	// TT caches leaf evaluations, shared across searches.
	TT *Transposition
	// Rand breaks score ties: equal-scoring moves replace the incumbent
	// with probability 1/2. Statistically this favors later-generated
	// moves slightly; accepted.
	Rand *rand.Rand
}

// Search returns the best move for the side to move, searched to the given
// depth. It fails if the position has no legal moves: the caller is expected
// to detect game over before searching.
func (s AlphaBeta) Search(ctx context.Context, pos *board.Position, depth int) (board.Move, eval.Score, uint64, error) {
	run := &runAlphaBeta{
		eval:    s.Eval,
		history: s.History,
		tt:      s.TT,
		rng:     s.Rand,
		maxSide: pos.Turn(),
	}
	if run.rng == nil {
		run.rng = rand.New(rand.NewSource(0))
	}

	turn := pos.Turn()
	actions := pos.LegalMoves(turn)
	if len(actions) == 0 {
		return board.Move{}, 0, 0, fmt.Errorf("no legal moves for %v in %v", turn, pos)
	}
	run.history.Sort(turn, actions)

	// The root is a maximizing node with an open window: alpha tightens as
	// siblings complete, so later root moves benefit from earlier ones, but
	// beta stays infinite and the root never cuts off.

	alpha, beta := eval.NegInf, eval.Inf
	scores := make([]eval.Score, len(actions))
	for i, a := range actions {
		scores[i] = run.minValue(ctx, pos.Apply(a), depth-1, s.Quiescence, alpha, beta)
		if scores[i] > alpha {
			alpha = scores[i]
		}
	}

	best, index := eval.NegInf, 0
	for i, score := range scores {
		if score > best || (score == best && run.rng.Intn(2) == 0) {
			best, index = score, i
		}
	}
	run.history.Update(turn, actions[index])

	return actions[index], scores[index], run.nodes, nil
}

type runAlphaBeta struct {
	eval    eval.Evaluator
	history *History
	tt      *Transposition
	rng     *rand.Rand
	maxSide board.Color
	nodes   uint64
}

// minValue returns the score of the move the minimizing opponent would pick.
func (r *runAlphaBeta) minValue(ctx context.Context, pos *board.Position, depth, quiescence int, alpha, beta eval.Score) eval.Score {
	if pos.Turn() == r.maxSide {
		panic("minValue called on the maximizing side's turn")
	}
	r.nodes++

	quiescent := false
	if depth <= 0 {
		if quiescence > 0 && pos.IsNonQuiescent() {
			quiescent = true
		} else {
			return r.leaf(ctx, pos)
		}
	}

	turn := pos.Turn()
	actions := pos.LegalMoves(turn)
	if len(actions) == 0 {
		// Checkmate: the maximizing side wins. More remaining depth means
		// an earlier mate, which scores higher.
		return eval.CheckmateBase + eval.Score(depth+quiescence)
	}
	r.history.Sort(turn, actions)

	best, index := eval.Inf, 0
	for i, a := range actions {
		var score eval.Score
		if quiescent {
			score = r.maxValue(ctx, pos.Apply(a), depth, quiescence-1, alpha, beta)
		} else {
			score = r.maxValue(ctx, pos.Apply(a), depth-1, quiescence, alpha, beta)
		}

		if score <= alpha {
			r.history.Update(turn, a)
			return score // fail-low cutoff
		}
		if score < beta {
			beta = score
		}
		if score < best || (score == best && r.rng.Intn(2) == 0) {
			best, index = score, i
		}
	}
	r.history.Update(turn, actions[index])
	return best
}

// maxValue returns the score of the move the maximizing side would pick.
func (r *runAlphaBeta) maxValue(ctx context.Context, pos *board.Position, depth, quiescence int, alpha, beta eval.Score) eval.Score {
	if pos.Turn() != r.maxSide {
		panic("maxValue called on the minimizing side's turn")
	}
	r.nodes++

	quiescent := false
	if depth <= 0 {
		if quiescence > 0 && pos.IsNonQuiescent() {
			quiescent = true
		} else {
			return r.leaf(ctx, pos)
		}
	}

	turn := pos.Turn()
	actions := pos.LegalMoves(turn)
	if len(actions) == 0 {
		return eval.NegInf // checkmated: loss
	}
	r.history.Sort(turn, actions)

	best, index := eval.NegInf, 0
	for i, a := range actions {
		var score eval.Score
		if quiescent {
			score = r.minValue(ctx, pos.Apply(a), depth, quiescence-1, alpha, beta)
		} else {
			score = r.minValue(ctx, pos.Apply(a), depth-1, quiescence, alpha, beta)
		}

		if score >= beta {
			r.history.Update(turn, a)
			return score // fail-high cutoff
		}
		if score > alpha {
			alpha = score
		}
		if score > best || (score == best && r.rng.Intn(2) == 0) {
			best, index = score, i
		}
	}
	r.history.Update(turn, actions[index])
	return best
}

// leaf returns the transposition-cached heuristic evaluation.
func (r *runAlphaBeta) leaf(ctx context.Context, pos *board.Position) eval.Score {
	if score, ok := r.tt.Read(pos.Hash()); ok {
		return score
	}
	score := r.eval.Evaluate(ctx, pos, r.maxSide)
	r.tt.Write(pos.Hash(), score)
	return score
}
