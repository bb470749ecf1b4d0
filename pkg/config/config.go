// Package config reads engine settings from an optional TOML file.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/herohde/quince/pkg/eval"
)

// Settings hold the engine tunables. Load starts from Default, so fields a
// settings file leaves out keep their default values.
type Settings struct {
	Search SearchSettings `toml:"search"`
	Eval   EvalSettings   `toml:"eval"`
}

// SearchSettings hold the search tunables.
type SearchSettings struct {
	// BudgetSeconds is the wall-clock computation budget per turn.
	BudgetSeconds float64 `toml:"budget_seconds"`
	// QuiescenceLimit is the quiescence budget in extra plies.
	QuiescenceLimit int `toml:"quiescence_limit"`
	// DepthLimit, if nonzero, limits the search depth.
	DepthLimit uint `toml:"depth_limit"`
	// Seed seeds the Zobrist tables and tie-breaking randomness.
	Seed int64 `toml:"seed"`
}

// EvalSettings hold the heuristic term weights.
type EvalSettings struct {
	OwnMaterial      int32 `toml:"own_material"`
	OpponentMaterial int32 `toml:"opponent_material"`
	Guarded          int32 `toml:"guarded"`
	Attackable       int32 `toml:"attackable"`
	PawnAdvance      int32 `toml:"pawn_advance"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Search: SearchSettings{
			BudgetSeconds:   1.0,
			QuiescenceLimit: 2,
		},
		Eval: EvalSettings{
			OwnMaterial:      int32(eval.DefaultWeights.OwnMaterial),
			OpponentMaterial: int32(eval.DefaultWeights.OpponentMaterial),
			Guarded:          int32(eval.DefaultWeights.Guarded),
			Attackable:       int32(eval.DefaultWeights.Attackable),
			PawnAdvance:      int32(eval.DefaultWeights.PawnAdvance),
		},
	}
}

// Load returns the settings from the given TOML file, layered over the
// defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("invalid config file %v: %w", path, err)
	}
	return s, nil
}

// Budget returns the per-turn computation budget.
func (s Settings) Budget() time.Duration {
	return time.Duration(float64(time.Second) * s.Search.BudgetSeconds)
}

// Weights returns the heuristic weights.
func (s Settings) Weights() eval.Weights {
	return eval.Weights{
		OwnMaterial:      eval.Score(s.Eval.OwnMaterial),
		OpponentMaterial: eval.Score(s.Eval.OpponentMaterial),
		Guarded:          eval.Score(s.Eval.Guarded),
		Attackable:       eval.Score(s.Eval.Attackable),
		PawnAdvance:      eval.Score(s.Eval.PawnAdvance),
	}
}
