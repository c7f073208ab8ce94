package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rahulraj/boardcore/internal/board"
	"github.com/rahulraj/boardcore/internal/evaluator"
)

const (
	FileName   = "config.yml"
	appDirName = "boardcore"

	// HumanPlayer names a player whose moves are read from input.
	HumanPlayer = "human"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"BOARDCORE_LOG_LEVEL" env-default:"info"`
	Game      string    `yaml:"game"      env:"BOARDCORE_GAME"      env-default:"tictactoe"`
	Players   Players   `yaml:"players"`
	Evaluator Evaluator `yaml:"evaluator"`
	Redis     Redis     `yaml:"redis"`
}

type Players struct {
	Dark  string `yaml:"dark"  env:"BOARDCORE_PLAYERS_DARK"  env-default:"search"`
	Light string `yaml:"light" env:"BOARDCORE_PLAYERS_LIGHT" env-default:"search"`
	Seed  int64  `yaml:"seed"  env:"BOARDCORE_PLAYERS_SEED"  env-default:"1"`
}

type Evaluator struct {
	GoodMoveWeight float64 `yaml:"good-move-weight" env:"BOARDCORE_EVALUATOR_GOOD_MOVE_WEIGHT" env-default:"0.9"`
	MaxDepth       int     `yaml:"max-depth"        env:"BOARDCORE_EVALUATOR_MAX_DEPTH"        env-default:"0"`
	Parallel       bool    `yaml:"parallel"         env:"BOARDCORE_EVALUATOR_PARALLEL"         env-default:"false"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"BOARDCORE_REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host"    env:"BOARDCORE_REDIS_HOST"    env-default:"localhost"`
	Port    string        `yaml:"port"    env:"BOARDCORE_REDIS_PORT"    env-default:"6379"`
	TTL     time.Duration `yaml:"ttl"     env:"BOARDCORE_REDIS_TTL"     env-default:"24h"`
}

// MustLoad - load all configurations, panicking on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads path and then the environment. An empty path reads the
// environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultPath finds config.yml in the working directory or in the XDG config
// directories. It returns an empty path when there is none.
func DefaultPath() string {
	if baseDir, err := os.Getwd(); err == nil {
		local := filepath.Join(baseDir, FileName)
		if _, err = os.Stat(local); err == nil {
			return local
		}
	}

	if found, err := xdg.SearchConfigFile(filepath.Join(appDirName, FileName)); err == nil {
		return found
	}

	return ""
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, that.LogLevel)
	}

	if _, err := board.ParseRules(that.Game); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for _, name := range []string{that.Players.Dark, that.Players.Light} {
		switch name {
		case evaluator.StrategySearch, evaluator.StrategyRandom, evaluator.StrategyGreedy, HumanPlayer:
		default:
			return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, evaluator.ErrUnknownStrategy, name)
		}
	}

	if that.Evaluator.GoodMoveWeight < 0 || that.Evaluator.GoodMoveWeight > 1 {
		return fmt.Errorf("%w: good-move-weight %v is outside [0, 1]", ErrInvalidConfig, that.Evaluator.GoodMoveWeight)
	}

	if that.Evaluator.MaxDepth < 0 {
		return fmt.Errorf("%w: max-depth %d is negative", ErrInvalidConfig, that.Evaluator.MaxDepth)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
