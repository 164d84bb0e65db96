// Package config loads server settings from the environment, an optional
// .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"taskmaster/logging"
	"taskmaster/store"
)

// Config represents the complete server configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Seed      SeedConfig      `mapstructure:"seed"`
	Lifecycle LifecycleConfig `mapstructure:"lifecycle"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// AppURL is advertised as the server url in /api/docs
	AppURL string `mapstructure:"app_url"`
	// GinMode is one of "release", "debug", "test"
	GinMode          string        `mapstructure:"gin_mode"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
	CORSAllowOrigins []string      `mapstructure:"cors_allow_origins"`
}

// DatabaseConfig selects the backend. An empty URL uses the SQLite file.
type DatabaseConfig struct {
	URL        string `mapstructure:"url"`
	SQLitePath string `mapstructure:"sqlite_path"`
	// Vercel moves the default SQLite file to the writable /tmp
	Vercel bool `mapstructure:"vercel"`
	// InitOnRequest re-runs the schema initializer from API requests until
	// it has succeeded once
	InitOnRequest bool `mapstructure:"init_on_request"`
	MaxOpenConns  int  `mapstructure:"max_open_conns"`
	MaxIdleConns  int  `mapstructure:"max_idle_conns"`
}

// AuthConfig holds the shared secret checked by the API key gate
type AuthConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// SeedConfig is the master account created on first start
type SeedConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// LifecycleConfig toggles server-side enforcement of task and time log
// transitions
type LifecycleConfig struct {
	Strict bool `mapstructure:"strict"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// envBindings maps config keys to the environment variable names the
// deployment already uses.
var envBindings = map[string]string{
	"server.host":               "HOST",
	"server.port":               "PORT",
	"server.app_url":            "APP_URL",
	"server.gin_mode":           "GIN_MODE",
	"server.shutdown_timeout":   "SHUTDOWN_TIMEOUT",
	"server.cors_allow_origins": "CORS_ALLOW_ORIGINS",
	"database.url":              "DATABASE_URL",
	"database.sqlite_path":      "SQLITE_PATH",
	"database.vercel":           "VERCEL",
	"database.init_on_request":  "INIT_ON_REQUEST",
	"database.max_open_conns":   "DB_MAX_OPEN_CONNS",
	"database.max_idle_conns":   "DB_MAX_IDLE_CONNS",
	"auth.api_key":              "AI_API_KEY",
	"seed.username":             "SEED_USERNAME",
	"seed.password":             "SEED_PASSWORD",
	"seed.name":                 "SEED_NAME",
	"lifecycle.strict":          "STRICT_LIFECYCLE",
	"logging.level":             "LOG_LEVEL",
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             3000,
			GinMode:          "release",
			ShutdownTimeout:  10 * time.Second,
			CORSAllowOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			InitOnRequest: true,
			MaxOpenConns:  10,
			MaxIdleConns:  5,
		},
		Seed: SeedConfig{
			Username: store.DefaultSeed.Username,
			Password: store.DefaultSeed.Password,
			Name:     store.DefaultSeed.Name,
		},
		Logging: LoggingConfig{Level: logging.LevelInfo},
	}
}

// SetDefaults registers every default on v so environment overrides and
// config files layer on top of them.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.app_url", d.Server.AppURL)
	v.SetDefault("server.gin_mode", d.Server.GinMode)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.cors_allow_origins", d.Server.CORSAllowOrigins)

	v.SetDefault("database.url", d.Database.URL)
	v.SetDefault("database.sqlite_path", d.Database.SQLitePath)
	v.SetDefault("database.vercel", d.Database.Vercel)
	v.SetDefault("database.init_on_request", d.Database.InitOnRequest)
	v.SetDefault("database.max_open_conns", d.Database.MaxOpenConns)
	v.SetDefault("database.max_idle_conns", d.Database.MaxIdleConns)

	v.SetDefault("auth.api_key", d.Auth.APIKey)

	v.SetDefault("seed.username", d.Seed.Username)
	v.SetDefault("seed.password", d.Seed.Password)
	v.SetDefault("seed.name", d.Seed.Name)

	v.SetDefault("lifecycle.strict", d.Lifecycle.Strict)

	v.SetDefault("logging.level", d.Logging.Level)
}

// Load reads .env (if present), the optional config file and the
// environment, in increasing order of precedence.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()
	SetDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "tasks.db"
		if c.Database.Vercel {
			c.Database.SQLitePath = "/tmp/tasks.db"
		}
	}
	if c.Server.AppURL == "" {
		c.Server.AppURL = fmt.Sprintf("http://localhost:%d", c.Server.Port)
	}

	var origins []string
	for _, o := range c.Server.CORSAllowOrigins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				origins = append(origins, part)
			}
		}
	}
	c.Server.CORSAllowOrigins = origins
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	switch c.Server.GinMode {
	case "release", "debug", "test":
	default:
		errs = append(errs, fmt.Errorf("server.gin_mode must be release, debug or test, got %q", c.Server.GinMode))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	if _, err := store.DialectFromURL(c.Database.URL); err != nil {
		errs = append(errs, err)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level %q is not one of DEBUG, INFO, WARN, ERROR", c.Logging.Level))
	}
	if c.Seed.Username == "" || c.Seed.Password == "" {
		errs = append(errs, errors.New("seed.username and seed.password are required"))
	}

	return errors.Join(errs...)
}

// StoreOptions converts the database section for store.Open.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		URL:          c.Database.URL,
		SQLitePath:   c.Database.SQLitePath,
		MaxOpenConns: c.Database.MaxOpenConns,
		MaxIdleConns: c.Database.MaxIdleConns,
	}
}

// StoreSeed converts the seed section for store.NewInitializer.
func (c *Config) StoreSeed() store.Seed {
	return store.Seed{Username: c.Seed.Username, Password: c.Seed.Password, Name: c.Seed.Name}
}
