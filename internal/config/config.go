package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. MUSCLEQUIZ_QUIZ_SEED.
const EnvPrefix = "MUSCLEQUIZ"

var ErrInvalidQuestionLimit = errors.New("quiz.question_limit must be at least 1")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env  string `mapstructure:"env"`  // current application environment (local, production)
	Quiz Quiz   `mapstructure:"quiz"` // quiz session settings
	Log  Log    `mapstructure:"log"`  // logging settings
}

// Quiz contains session parameters.
type Quiz struct {
	QuestionLimit int   `mapstructure:"question_limit"` // answered questions before the session ends
	Seed          int64 `mapstructure:"seed"`           // random seed, 0 means time-seeded
}

// Log contains logging parameters.
type Log struct {
	File  string `mapstructure:"file"`  // log file path; "-" disables logging
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Load reads configuration from an optional .env file, an optional config
// file and environment variables. An empty path searches ./config.yaml and
// $XDG_CONFIG_HOME/musclequiz/config.yaml.
func Load(path string) (*Config, error) {
	// .env is optional; values already in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "musclequiz"))
		}
	}

	v.SetDefault("env", "local")
	v.SetDefault("quiz.question_limit", 10)
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("log.file", DefaultLogPath())
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Quiz.QuestionLimit < 1 {
		return ErrInvalidQuestionLimit
	}
	return nil
}

// DefaultLogPath resolves the log file path in priority order:
// 1. $XDG_STATE_HOME/musclequiz/musclequiz.log
// 2. ~/.local/state/musclequiz/musclequiz.log
// Falls back to "-" (disabled) if no home directory is available.
func DefaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "-"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "musclequiz", "musclequiz.log")
}
