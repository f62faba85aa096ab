package config

import (
	"fmt"
	"os"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint       = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultRetryPeriod    = 600 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID string // Numeric chat id or @channelusername
	Endpoint       string
	RetryPeriod    time.Duration
	RequestTimeout time.Duration
	LogLevel       string
	Environment    string
}

// Load reads configuration from an optional YAML file (CONFIG_FILE), the
// environment and a .env file (if present). Environment values win.
func Load() (*AppConfig, error) {
	// Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Endpoint:       DefaultEndpoint,
		RetryPeriod:    DefaultRetryPeriod,
		RequestTimeout: DefaultRequestTimeout,
		LogLevel:       "info",
		Environment:    "development",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fc, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if err := fc.apply(cfg); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	var err error

	if cfg.PracticumToken, err = requireEnv("PRACTICUM_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.TelegramToken, err = requireEnv("TELEGRAM_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.TelegramChatID, err = requireEnv("TELEGRAM_CHAT_ID"); err != nil {
		return nil, err
	}
	cfg.TelegramChatID = strings.TrimSpace(cfg.TelegramChatID)

	if v := os.Getenv("PRACTICUM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("RETRY_PERIOD"); v != "" {
		if cfg.RetryPeriod, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid RETRY_PERIOD: %w", err)
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if cfg.RequestTimeout, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Environment = v
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Environment = strings.ToLower(cfg.Environment)

	if cfg.RetryPeriod <= 0 {
		return nil, fmt.Errorf("RETRY_PERIOD must be positive, got %s", cfg.RetryPeriod)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	return cfg, nil
}

func requireEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("%s is not set", key)
	}
	if strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%s is empty", key)
	}
	return v, nil
}
