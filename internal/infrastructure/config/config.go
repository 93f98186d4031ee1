// Package config provides 12-factor configuration for the desktop shell.
//
// Configuration is loaded from environment variables with sensible defaults.
// A dotenv file can seed the environment, an optional YAML file overrides
// it, and CLI flags override both.
//
// Configuration Sections:
//   - Server: HTTP command surface (port, host, allowed origins)
//   - Middleware: gRPC middleware address and call timeouts
//   - Hub: model hub metadata endpoint
//   - Events: UI event fan-out
//   - Logging: log level and output format
//   - RateLimit: per-IP rate limiting
//
// Environment Variables:
//   - PORT, HOST, CORS_ORIGINS
//   - MIDDLEWARE_ADDR, MIDDLEWARE_CONNECT_TIMEOUT, MIDDLEWARE_RPC_TIMEOUT,
//     MIDDLEWARE_STOP_TIMEOUT, MIDDLEWARE_AUTOCONNECT
//   - HF_ENDPOINT, HF_TIMEOUT, HF_RPS, HF_RETRIES
//   - EVENTS_BUFFER, EVENTS_WRITE_TIMEOUT
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Middleware MiddlewareConfig `yaml:"middleware"`
	Hub        HubConfig        `yaml:"hub"`
	Events     EventsConfig     `yaml:"events"`
	Logging    LogConfig        `yaml:"logging"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string   `envconfig:"PORT" default:"8000" yaml:"port"`
	Host           string   `envconfig:"HOST" default:"127.0.0.1" yaml:"host"`
	AllowedOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:1420,tauri://localhost" yaml:"allowed_origins"`
}

// MiddlewareConfig holds the gRPC middleware connection settings.
type MiddlewareConfig struct {
	Address        string        `envconfig:"MIDDLEWARE_ADDR" default:"127.0.0.1:5006" yaml:"address"`
	ConnectTimeout time.Duration `envconfig:"MIDDLEWARE_CONNECT_TIMEOUT" default:"5s" yaml:"connect_timeout"`
	RPCTimeout     time.Duration `envconfig:"MIDDLEWARE_RPC_TIMEOUT" default:"0s" yaml:"rpc_timeout"`
	StopTimeout    time.Duration `envconfig:"MIDDLEWARE_STOP_TIMEOUT" default:"5s" yaml:"stop_timeout"`
	AutoConnect    bool          `envconfig:"MIDDLEWARE_AUTOCONNECT" default:"false" yaml:"auto_connect"`
}

// HubConfig holds model hub client settings.
type HubConfig struct {
	Endpoint          string        `envconfig:"HF_ENDPOINT" default:"https://huggingface.co" yaml:"endpoint"`
	Timeout           time.Duration `envconfig:"HF_TIMEOUT" default:"15s" yaml:"timeout"`
	RequestsPerSecond float64       `envconfig:"HF_RPS" default:"5" yaml:"requests_per_second"`
	Retries           int           `envconfig:"HF_RETRIES" default:"3" yaml:"retries"`
}

// EventsConfig holds UI event fan-out settings.
type EventsConfig struct {
	BufferSize   int           `envconfig:"EVENTS_BUFFER" default:"256" yaml:"buffer_size"`
	WriteTimeout time.Duration `envconfig:"EVENTS_WRITE_TIMEOUT" default:"10s" yaml:"write_timeout"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" yaml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" yaml:"development"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100" yaml:"requests_per_second"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200" yaml:"burst"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true" yaml:"enabled"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadFile loads the environment, then applies the YAML file at path on
// top. Keys missing from the file keep their environment or default value.
func LoadFile(path string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnvFile exports the variables of a dotenv file. Variables already
// set in the process environment win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8000",
			Host:           "127.0.0.1",
			AllowedOrigins: []string{"http://localhost:1420", "tauri://localhost"},
		},
		Middleware: MiddlewareConfig{
			Address:        "127.0.0.1:5006",
			ConnectTimeout: 5 * time.Second,
			RPCTimeout:     0,
			StopTimeout:    5 * time.Second,
			AutoConnect:    false,
		},
		Hub: HubConfig{
			Endpoint:          "https://huggingface.co",
			Timeout:           15 * time.Second,
			RequestsPerSecond: 5,
			Retries:           3,
		},
		Events: EventsConfig{
			BufferSize:   256,
			WriteTimeout: 10 * time.Second,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
