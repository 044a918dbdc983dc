package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Referral  ReferralConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         string        `env:"PORT,required,notEmpty"`
	Env          string        `env:"APP_ENV" envDefault:"development"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	// PublicDir, when set, is served as the SPA root (index.html plus assets).
	PublicDir string `env:"PUBLIC_DIR"`
}

type JWTConfig struct {
	// Secret is required: there is deliberately no development fallback.
	Secret string        `env:"JWT_SECRET,required,notEmpty"`
	Expiry time.Duration `env:"JWT_EXPIRY" envDefault:"168h"`
	Issuer string        `env:"JWT_ISSUER" envDefault:"refearn"`
}

const (
	StorageDriverJSON  = "json"
	StorageDriverMySQL = "mysql"
)

type StorageConfig struct {
	Driver  string `env:"STORAGE_DRIVER" envDefault:"json"`
	DataDir string `env:"DATA_DIR" envDefault:"db"`

	MySQLDSN        string        `env:"MYSQL_DSN"`
	MaxIdleConns    int           `env:"MYSQL_MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns    int           `env:"MYSQL_MAX_OPEN_CONNS" envDefault:"100"`
	ConnMaxLifetime time.Duration `env:"MYSQL_CONN_MAX_LIFETIME" envDefault:"1h"`
}

type ReferralConfig struct {
	// Bonus is the fixed amount credited to a referrer per referred signup.
	Bonus float64 `env:"REFERRAL_BONUS" envDefault:"10"`
}

type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"100"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`
}

// Load reads configuration from the environment, with a .env file as a
// development convenience.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Storage.Driver {
	case StorageDriverJSON:
	case StorageDriverMySQL:
		if cfg.Storage.MySQLDSN == "" {
			return nil, fmt.Errorf("MYSQL_DSN is required when STORAGE_DRIVER=mysql")
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return cfg, nil
}
