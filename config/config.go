package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"tictacchess/searcher"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "tictacchess/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ServerConfig struct {
	Addr         string `json:"addr"`
	ThinkDelayMs int    `json:"think_delay_ms"` // Pause before Hard answers
}

type GameConfig struct {
	HandCount  int    `json:"hand_count"` // Pieces of each kind per player
	Difficulty string `json:"difficulty"`
	Depth      int    `json:"depth"`
	Seed       uint64 `json:"seed"` // Zero seeds from the clock
}

type ExperimentConfig struct {
	OutputDir string `json:"output_dir"`
}

type Config struct {
	Server      ServerConfig     `json:"server"`
	Game        GameConfig       `json:"game"`
	LogLevel    string           `json:"log_level"`
	Experiments ExperimentConfig `json:"experiments"`
}

// InitConfig returns the defaults overlaid with the user's config file, if there is one.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return Load(absPath)
}

// Load reads the config file at path over the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &InvalidConfig{"server address is empty"}
	}
	if c.Server.ThinkDelayMs < 0 {
		return &InvalidConfig{"think delay cannot be negative"}
	}
	if c.Game.HandCount < 1 || c.Game.HandCount > MaxHandCount {
		return &InvalidConfig{fmt.Sprintf("hand count must be between 1 and %d", MaxHandCount)}
	}
	if c.Game.Depth < 1 || c.Game.Depth > searcher.MaxDepth {
		return &InvalidConfig{fmt.Sprintf("depth must be between 1 and %d", searcher.MaxDepth)}
	}
	if _, err := searcher.ParseDifficulty(c.Game.Difficulty); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

func (c *Config) ThinkDelay() time.Duration {
	return time.Duration(c.Server.ThinkDelayMs) * time.Millisecond
}

// Level is the parsed log level; call Validate first.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Save writes the config to the user's config directory and returns the path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a any, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a any) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
