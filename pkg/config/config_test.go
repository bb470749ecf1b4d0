package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/herohde/quince/pkg/config"
	"github.com/herohde/quince/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := config.Default()

	assert.Equal(t, time.Second, s.Budget())
	assert.Equal(t, 2, s.Search.QuiescenceLimit)
	assert.Equal(t, uint(0), s.Search.DepthLimit)
	assert.Equal(t, int64(0), s.Search.Seed)
	assert.Equal(t, eval.DefaultWeights, s.Weights())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quince.toml")
	data := `
[search]
budget_seconds = 0.5
depth_limit = 4
seed = 7

[eval]
own_material = 30
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	s, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, s.Budget())
	assert.Equal(t, uint(4), s.Search.DepthLimit)
	assert.Equal(t, int64(7), s.Search.Seed)

	// Unset fields keep their defaults.
	assert.Equal(t, 2, s.Search.QuiescenceLimit)
	assert.Equal(t, eval.Score(30), s.Weights().OwnMaterial)
	assert.Equal(t, eval.DefaultWeights.Guarded, s.Weights().Guarded)
}

func TestLoadMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
