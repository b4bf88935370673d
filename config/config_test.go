package config

import (
	"os"
	"path/filepath"
	"testing"

	"pursuit/game"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("empty file keeps defaults", func(t *testing.T) {
		cfg, err := Parse(nil)
		require.NoError(t, err, "Empty config is valid")
		require.Equal(t, game.DefaultConfig(), cfg, "Defaults should be kept")
	})

	t.Run("full file", func(t *testing.T) {
		cfg, err := Parse([]byte(`
board_size: 16
police_count: 6
thief_count: 2
thief_mode: manual
thief_policy: escape
police_policy: minimax
max_turns: 120
seed: 42
display:
  show_animations: false
  cell_size: large
  color_scheme: dark
`))
		require.NoError(t, err, "Config should parse")
		require.Equal(t, game.LargeBoard, cfg.BoardSize, "Board size")
		require.Equal(t, 6, cfg.PoliceCount, "Police count")
		require.Equal(t, 2, cfg.ThiefCount, "Thief count")
		require.Equal(t, game.ThiefManual, cfg.ThiefMode, "Thief mode")
		require.Equal(t, game.ThiefEscape, cfg.ThiefPolicy, "Thief policy")
		require.Equal(t, game.PoliceMinimax, cfg.PolicePolicy, "Police policy")
		require.Equal(t, 120, cfg.Rules.MaxTurns, "Turn limit")
		require.Equal(t, uint64(42), cfg.Seed, "Seed")
		require.False(t, cfg.ShowAnimations, "Animations")
		require.Equal(t, "large", cfg.CellSize, "Cell size")
		require.Equal(t, "dark", cfg.ColorScheme, "Color scheme")
	})

	t.Run("partial file", func(t *testing.T) {
		cfg, err := Parse([]byte("police_count: 2\n"))
		require.NoError(t, err, "Config should parse")
		require.Equal(t, 2, cfg.PoliceCount, "Given key")
		require.Equal(t, game.SmallBoard, cfg.BoardSize, "Missing key keeps the default")
	})

	t.Run("counts clamped", func(t *testing.T) {
		cfg, err := Parse([]byte("police_count: 30\n"))
		require.NoError(t, err, "Large counts are clamped, not rejected")
		require.Equal(t, 4, cfg.PoliceCount, "Police should fit on the home row")
	})

	t.Run("rejects bad values", func(t *testing.T) {
		for _, data := range []string{
			"board_size: 10\n",
			"max_turns: 0\n",
			"thief_mode: remote\n",
			"thief_policy: smart\n",
			"police_policy: psychic\n",
			"board: 8\n",
			"police_count: [1\n",
		} {
			_, err := Parse([]byte(data))
			require.Error(t, err, "Should reject %q", data)
		}
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thief_policy: escape\n"), 0644), "Fixture should be written")

	cfg, err := Load(path)
	require.NoError(t, err, "Config should load")
	require.Equal(t, game.ThiefEscape, cfg.ThiefPolicy, "Loaded value")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "Missing file should fail")
}
