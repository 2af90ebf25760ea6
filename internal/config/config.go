package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
)

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Transport TransportConfig `koanf:"transport"`
	Logger    LoggerConfig    `koanf:"logger"`
	Ebanx     EbanxConfig     `koanf:"ebanx"`
	Mundipagg MundipaggConfig `koanf:"mundipagg"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`

	// RequestTimeout bounds a whole API call, provider round trips included.
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

type TransportConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

// EbanxConfig holds the Ebanx Checkout credentials. Test selects the sandbox.
type EbanxConfig struct {
	IntegrationKey string `koanf:"integration_key"`
	Test           bool   `koanf:"test"`
	TestURL        string `koanf:"test_url" validate:"required,url"`
	LiveURL        string `koanf:"live_url" validate:"required,url"`
}

type MundipaggConfig struct {
	APIKey  string `koanf:"api_key"`
	Test    bool   `koanf:"test"`
	TestURL string `koanf:"test_url" validate:"required,url"`
	LiveURL string `koanf:"live_url" validate:"required,url"`
}

const envPrefix = "GATEWAY_"

// Default is the configuration used for every key the environment leaves unset.
func Default() Config {
	return Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:           "8080",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    60 * time.Second,
			RequestTimeout: 25 * time.Second,
		},
		Transport: TransportConfig{Timeout: 20 * time.Second},
		Logger:    LoggerConfig{Level: "info"},
		Ebanx: EbanxConfig{
			Test:    true,
			TestURL: "https://sandbox.ebanx.com/ws",
			LiveURL: "https://api.ebanx.com/ws",
		},
		Mundipagg: MundipaggConfig{
			Test:    true,
			TestURL: "https://api.mundipagg.com/core/v1/",
			LiveURL: "https://api.mundipagg.com/core/v1/",
		},
	}
}

// LoadConfig layers GATEWAY_* environment variables (and a .env file) over
// Default. GATEWAY_MUNDIPAGG__API_KEY sets mundipagg.api_key.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
}

// NewLogger builds the process logger. Unknown levels fall back to info.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
