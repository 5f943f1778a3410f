package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/api-sage/account-policies/src/internal/logger"
)

const defaultEnvFile = ".env"

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"error"`
	EnvFile  string `env:"ENV_FILE" envDefault:".env"`
}

// Load reads an optional dotenv file into the process environment, then parses the
// environment. Variables already set win over the file.
func Load() (Config, error) {
	envFile := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if envFile == "" {
		envFile = defaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Level() logger.Level {
	lvl, _ := logger.ParseLevel(c.LogLevel)
	return lvl
}
