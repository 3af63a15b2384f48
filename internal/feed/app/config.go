package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries every runtime knob the service reads. All values come from
// the environment so the binary itself stays secret-free.
type Config struct {
	Issuer     string        `env:"FEED_ISSUER" envDefault:"microfeed"`
	SessionTTL time.Duration `env:"FEED_SESSION_TTL" envDefault:"1h"`

	// TokenSecret wins over TokenSecretFile when both are set. When neither
	// yields a secret, one is generated and written to TokenSecretFile.
	TokenSecret     string `env:"FEED_TOKEN_SECRET"`
	TokenSecretFile string `env:"FEED_TOKEN_SECRET_FILE" envDefault:"secret"`

	StoreDriver  string `env:"FEED_STORE_DRIVER" envDefault:"jsonfile"`
	DataDir      string `env:"FEED_DATA_DIR" envDefault:"data"`
	DatabaseFile string `env:"FEED_DATABASE_FILE" envDefault:"feed.db"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Port                int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	switch cfg.StoreDriver {
	case "jsonfile", "sqlite":
	default:
		return Config{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	return cfg, nil
}
