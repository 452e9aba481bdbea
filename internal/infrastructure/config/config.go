package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session tokens. The default exists only so a fresh
	// checkout runs; set a real secret in any deployed environment.
	JWTSecret string        `env:"JWT_SECRET, default=supersecretkey"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=1h"`

	// DataDir holds the flat-file collections (documents.json, users.json).
	DataDir string `env:"DATA_DIR, default=data"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
