package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable name.
const Prefix = "GOBRACE_"

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Storage  Storage
	Defaults Defaults
}

type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:","`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	AsJSON bool   `env:"LOG_JSON" envDefault:"false"`
}

type Storage struct {
	CatalogFile string `env:"CATALOG_FILE"` // extra catalog entries (YAML)
	ResultDB    string `env:"RESULT_DB"`    // SQLite file for the last result
}

type Defaults struct {
	GussetLgMm float64 `env:"GUSSET_LG_MM" envDefault:"300"`
}

// Load reads an optional .env file, then the environment. Variables
// already set in the environment win over the file.
func Load(path ...string) (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: load .env: %w", op, err)
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.Defaults.GussetLgMm <= 0 {
		return nil, fmt.Errorf("%s: %sGUSSET_LG_MM must be positive, got %g", op, Prefix, cfg.Defaults.GussetLgMm)
	}
	return &cfg, nil
}
