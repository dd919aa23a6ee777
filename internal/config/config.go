package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

const (
	ModeHumanVsHuman = "human-vs-human"
	ModeHumanVsAI    = "human-vs-ai"
	ModeAIVsHuman    = "ai-vs-human"
	ModeAIVsAI       = "ai-vs-ai"

	AlgorithmMinimax   = "minimax"
	AlgorithmAlphaBeta = "alpha-beta"
)

var (
	ErrUnknownMode      = errors.New("unknown game mode")
	ErrUnknownAlgorithm = errors.New("unknown search algorithm")
	ErrUnknownLogLevel  = errors.New("unknown log level")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
	Search   Search `yaml:"search"`
}

// Game says which seats the computer plays, first player named first.
type Game struct {
	Mode string `yaml:"mode" env:"GAME_MODE" env-default:"human-vs-ai"`
}

type Search struct {
	Algorithm string `yaml:"algorithm" env:"SEARCH_ALGORITHM" env-default:"alpha-beta"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the file at path, then applies environment overrides. An empty
// path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	if _, err := that.Game.AIPlayers(); err != nil {
		return err
	}

	if _, err := that.Search.Pruning(); err != nil {
		return err
	}

	return nil
}

// AIPlayers - lists the seats the computer plays.
func (that *Game) AIPlayers() ([]entity.PlayerID, error) {
	switch that.Mode {
	case ModeHumanVsHuman:
		return nil, nil
	case ModeHumanVsAI:
		return []entity.PlayerID{entity.Second}, nil
	case ModeAIVsHuman:
		return []entity.PlayerID{entity.First}, nil
	case ModeAIVsAI:
		return []entity.PlayerID{entity.First, entity.Second}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}
}

// Pruning - reports whether the search uses alpha-beta pruning.
func (that *Search) Pruning() (bool, error) {
	switch that.Algorithm {
	case AlgorithmMinimax:
		return false, nil
	case AlgorithmAlphaBeta:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, that.Algorithm)
	}
}
