package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string        `mapstructure:"SERVER_PORT"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	DBUser          string        `mapstructure:"DB_USER"`
	DBPassword      string        `mapstructure:"DB_PASSWORD"`
	DBHost          string        `mapstructure:"DB_HOST"`
	DBPort          string        `mapstructure:"DB_PORT"`
	DBName          string        `mapstructure:"DB_NAME"`
	DBMaxConns      int32         `mapstructure:"DB_MAX_CONNS"`
	ClientOrigin    string        `mapstructure:"CLIENT_ORIGIN"`
	StaticDir       string        `mapstructure:"STATIC_DIR"`
	LogMode         string        `mapstructure:"LOG_MODE"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var keys = []string{
	"SERVER_PORT", "DATABASE_URL",
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_MAX_CONNS",
	"CLIENT_ORIGIN", "STATIC_DIR", "LOG_MODE", "SHUTDOWN_TIMEOUT",
}

// LoadConfig reads <path>/.env when present and overlays the process environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.SetDefault("SERVER_PORT", "3000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("CLIENT_ORIGIN", "*")
	v.SetDefault("LOG_MODE", "development")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.AutomaticEnv()
	// Unmarshal only sees keys viper already knows about.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.LoadConfig: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = cfg.composeDatabaseURL()
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("config.LoadConfig: DATABASE_URL or DB_USER/DB_NAME must be set")
	}
	return &cfg, nil
}

func (c *Config) composeDatabaseURL() string {
	if c.DBUser == "" || c.DBName == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
