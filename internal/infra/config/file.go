package config

import (
	"fmt"
	"os"
	"time"

	yaml "go.yaml.in/yaml/v3"
)

// fileConfig is the optional YAML config. Credentials are env-only.
type fileConfig struct {
	Endpoint       string `yaml:"endpoint"`
	RetryPeriod    string `yaml:"retry_period"`
	RequestTimeout string `yaml:"request_timeout"`
	LogLevel       string `yaml:"log_level"`
	Environment    string `yaml:"environment"`
}

func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return &fc, nil
}

func (fc *fileConfig) apply(cfg *AppConfig) error {
	if fc.Endpoint != "" {
		cfg.Endpoint = fc.Endpoint
	}
	if fc.RetryPeriod != "" {
		d, err := time.ParseDuration(fc.RetryPeriod)
		if err != nil {
			return fmt.Errorf("invalid retry_period: %w", err)
		}
		cfg.RetryPeriod = d
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.Environment != "" {
		cfg.Environment = fc.Environment
	}
	return nil
}
