// Package engine encapsulates game-playing logic: snapshot intake, per-turn
// search and move submission to the game client.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/herohde/quince/pkg/board"
	"github.com/herohde/quince/pkg/board/fen"
	"github.com/herohde/quince/pkg/eval"
	"github.com/herohde/quince/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 9, 0)

// Client is the engine's connection to the game server. It resolves the
// piece on the given origin square and submits its move using a file letter,
// a 1-indexed rank and the promotion kind name ("Queen", "Rook", "Bishop",
// "Knight", or empty if none). It is the only surface that touches the
// outside world during a turn.
type Client interface {
	MovePiece(ctx context.Context, origin board.Square, file string, rank int, promotion string) error
}

// PieceSnapshot describes one piece in a game snapshot.
type PieceSnapshot struct {
	Owner string // player id: "0" (White) or "1" (Black)
	Kind  string // "Pawn", "Rook", "Knight", "Bishop", "Queen" or "King"
	File  string // file letter, "a" through "h"
	Rank  int    // 1-indexed rank
}

// Snapshot is the game state as delivered by the game server at the start
// of a turn. The FEN record's active color, castling and en passant fields
// are authoritative; piece placement comes from the piece list. The last
// move and remaining clock are informational only.
type Snapshot struct {
	Pieces []PieceSnapshot
	FEN    string

	LastMove      string        // opponent's last move, if any
	TimeRemaining time.Duration // remaining clock time, zero if unknown
}

// Options are engine creation options.
type Options struct {
	// Budget is the wall-clock computation budget per turn.
	Budget time.Duration
	// Quiescence is the quiescence budget in extra plies.
	Quiescence int
	// Depth, if set, limits the search depth.
	Depth lang.Optional[uint]
	// Seed seeds the Zobrist tables and the tie-breaking randomness. The
	// default of zero makes play deterministic and reproducible.
	Seed int64
	// Weights are the heuristic term weights.
	Weights eval.Weights
}

func (o Options) String() string {
	return fmt.Sprintf("{budget=%v, quiescence=%v, depth=%v, seed=%v}", o.Budget, o.Quiescence, o.Depth, o.Seed)
}

// Option is an engine creation option.
type Option func(*Options)

// WithOptions replaces all runtime options.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// WithBudget sets the per-turn computation budget.
func WithBudget(d time.Duration) Option {
	return func(o *Options) {
		o.Budget = d
	}
}

// WithDepthLimit limits the search depth.
func WithDepthLimit(depth uint) Option {
	return func(o *Options) {
		o.Depth = lang.Some(depth)
	}
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// Engine runs the per-turn search over a current position. The history and
// transposition tables persist across turns for the process lifetime: the
// history table carries move-ordering information game-long and the
// transposition table stays sound because the heuristic is a pure function
// of the piece placement.
type Engine struct {
	name, author string
	opts         Options

	history *search.History
	tt      *search.Transposition
	rng     *rand.Rand

	pos *board.Position
	mu  sync.Mutex
}

// New returns a new engine starting from the initial position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	options := Options{
		Budget:     search.DefaultBudget,
		Quiescence: search.DefaultQuiescence,
		Weights:    eval.DefaultWeights,
	}
	for _, fn := range opts {
		fn(&options)
	}

	board.InitZobrist(options.Seed)

	e := &Engine{
		name:    name,
		author:  author,
		opts:    options,
		history: search.NewHistory(),
		tt:      search.NewTranspositionTable(),
		rng:     rand.New(rand.NewSource(options.Seed)),
	}

	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Position returns the current position.
func (e *Engine) Position() *board.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos
}

// Reset resets the engine to a new position in FEN notation. The history
// and transposition tables are kept.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.pos = pos

	logw.Infof(ctx, "Reset: %v", fen.Encode(pos))
	return nil
}

// Load replaces the current position with a game snapshot. Pieces of
// unknown kind are logged and skipped; the engine then plays as if they
// were absent.
func (e *Engine) Load(ctx context.Context, snap Snapshot) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	turn, castling, enPassant, err := fen.Metadata(snap.FEN)
	if err != nil {
		return fmt.Errorf("invalid snapshot metadata: %w", err)
	}

	var placements []board.Placement
	for _, p := range snap.Pieces {
		owner, ok := board.ParsePlayerID(p.Owner)
		if !ok {
			return fmt.Errorf("invalid piece owner: '%v'", p.Owner)
		}
		kind, ok := board.ParseKind(p.Kind)
		if !ok {
			logw.Warningf(ctx, "Unknown piece kind '%v' at %v%v. Ignoring", p.Kind, p.File, p.Rank)
			continue
		}
		sq, err := board.ParseSquareStr(fmt.Sprintf("%v%v", p.File, p.Rank))
		if err != nil {
			return fmt.Errorf("invalid piece square: %w", err)
		}
		placements = append(placements, board.Placement{Square: sq, Color: owner, Piece: kind})
	}

	pos, err := board.NewPosition(placements, castling, enPassant, turn)
	if err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}
	e.pos = pos

	if snap.LastMove != "" {
		logw.Infof(ctx, "Opponent's last move: '%v'", snap.LastMove)
	}
	if snap.TimeRemaining > 0 {
		logw.Infof(ctx, "Time remaining: %v", snap.TimeRemaining)
	}
	logw.Infof(ctx, "Loaded snapshot: %v", fen.Encode(pos))
	return nil
}

// Move applies a move, usually an opponent move, given in algebraic
// coordinate notation such as "e2e4" or "a7a8q".
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	for _, m := range e.pos.LegalMoves(e.pos.Turn()) {
		if !candidate.Equals(m) {
			continue
		}
		e.pos = e.pos.Apply(m)

		logw.Infof(ctx, "Move %v: %v", m, fen.Encode(e.pos))
		return nil
	}
	return fmt.Errorf("illegal move: %v", candidate)
}

// Turn searches the current position under the time budget, applies the
// chosen move and returns it.
func (e *Engine) Turn(ctx context.Context) (search.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	it := search.Iterative{
		Root: search.AlphaBeta{
			Eval:       eval.Heuristic{Weights: e.opts.Weights},
			Quiescence: e.opts.Quiescence,
			History:    e.history,
			TT:         e.tt,
			Rand:       e.rng,
		},
		Budget:     e.opts.Budget,
		DepthLimit: e.opts.Depth,
	}

	result, err := it.Search(ctx, e.pos)
	if err != nil {
		return search.Result{}, err
	}
	e.pos = e.pos.Apply(result.Move)

	logw.Infof(ctx, "Turn: %v", result)
	return result, nil
}

// Play runs a turn and submits the chosen move to the game client.
func (e *Engine) Play(ctx context.Context, client Client) (board.Move, error) {
	result, err := e.Turn(ctx)
	if err != nil {
		return board.Move{}, err
	}

	m := result.Move
	if err := client.MovePiece(ctx, m.From, m.To.FileLetter(), m.To.Rank+1, m.Promotion.Kind()); err != nil {
		return board.Move{}, fmt.Errorf("move %v rejected by client: %w", m, err)
	}
	return m, nil
}
