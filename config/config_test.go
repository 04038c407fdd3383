package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig
	require.NoError(t, config.Validate())
	require.Equal(t, 600*time.Millisecond, config.ThinkDelay())
	require.Equal(t, zerolog.InfoLevel, config.Level())
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"empty address":      func(c *Config) { c.Server.Addr = "" },
		"negative delay":     func(c *Config) { c.Server.ThinkDelayMs = -1 },
		"no pieces":          func(c *Config) { c.Game.HandCount = 0 },
		"too many pieces":    func(c *Config) { c.Game.HandCount = MaxHandCount + 1 },
		"zero depth":         func(c *Config) { c.Game.Depth = 0 },
		"deep search":        func(c *Config) { c.Game.Depth = 99 },
		"unknown difficulty": func(c *Config) { c.Game.Difficulty = "brutal" },
		"unknown log level":  func(c *Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig
			mutate(&config)
			var invalid *InvalidConfig
			require.True(t, errors.As(config.Validate(), &invalid))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("overlays the defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"game": {"difficulty": "hard", "depth": 4}, "log_level": "debug"}`), 0644))

		config, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "hard", config.Game.Difficulty)
		require.Equal(t, 4, config.Game.Depth)
		require.Equal(t, 1, config.Game.HandCount, "Fields missing from the file keep their default")
		require.Equal(t, DefaultConfig.Server, config.Server)
		require.Equal(t, zerolog.DebugLevel, config.Level())
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"game": {"hand_count": 9}}`), 0644))

		_, err := Load(path)
		var invalid *InvalidConfig
		require.True(t, errors.As(err, &invalid))
	})

	t.Run("rejects broken json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"game":`), 0644))

		_, err := Load(path)
		var invalid *InvalidConfig
		require.True(t, errors.As(err, &invalid))
	})

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(dir, "saved.json")
		config := DefaultConfig
		config.Server.Addr = ":8080"
		require.NoError(t, saveCfgFile(path, &config, 0644))

		loaded, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, config, *loaded)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
