package config

import (
	"errors"
	"fmt"
	"os"

	"checkers/game"
	"checkers/meta"

	"gopkg.in/yaml.v3"
)

// ErrInvalidMaxRounds is returned when the round limit is negative.
var ErrInvalidMaxRounds = errors.New("max_rounds must not be negative")

type Board struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

type Coins struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Config mirrors the YAML configuration file. Zero values fall back to the
// defaults in meta.
type Config struct {
	Board           Board  `yaml:"board"`
	Coins           Coins  `yaml:"coins"`
	BlackPieces     int    `yaml:"black_pieces"`
	StrictPlacement *bool  `yaml:"strict_placement"`
	Seed            uint64 `yaml:"seed"` // 0 lets the caller pick one
	MaxRounds       int    `yaml:"max_rounds"`
}

func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// Load reads and validates the configuration at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Board.Columns == 0 {
		c.Board.Columns = meta.NUMBER_OF_COLUMNS
	}
	if c.Board.Rows == 0 {
		c.Board.Rows = meta.NUMBER_OF_ROWS
	}
	if c.Coins.Min == 0 && c.Coins.Max == 0 {
		c.Coins = Coins{Min: meta.MIN_NUMBER_OF_COINS, Max: meta.MAX_NUMBER_OF_COINS}
	}
	if c.BlackPieces == 0 {
		c.BlackPieces = meta.BLACK_PIECES
	}
	if c.StrictPlacement == nil {
		strict := true
		c.StrictPlacement = &strict
	}
	if c.MaxRounds == 0 {
		c.MaxRounds = meta.MAX_ROUNDS
	}
}

func (c Config) Rules() game.Rules {
	return game.Rules{
		Columns:         c.Board.Columns,
		Rows:            c.Board.Rows,
		MinCoins:        c.Coins.Min,
		MaxCoins:        c.Coins.Max,
		BlackPieces:     c.BlackPieces,
		StrictPlacement: c.StrictPlacement == nil || *c.StrictPlacement,
	}
}

func (c Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("invalid config: %w", ErrInvalidMaxRounds)
	}
	return nil
}
