package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	MalformedSkip = "skip"
	MalformedFail = "fail"
)

type AppConfig struct {
	ServiceName     string `yaml:"service_name"`
	LogLevel        string `yaml:"log_level"`
	OnMalformedLine string `yaml:"on_malformed_line"`
	PricePlaces     int32  `yaml:"price_places"`
}

// Default returns the configuration used when no file is given.
func Default() *AppConfig {
	return &AppConfig{
		ServiceName:     "singlestock",
		LogLevel:        "info",
		OnMalformedLine: MalformedSkip,
		PricePlaces:     2,
	}
}

// Load load config from file and environment variables.
// An empty path falls back to CONFIG_FILE, then to defaults.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	cfg := Default()
	if len(filePath) == 0 {
		return cfg, nil
	}

	fields := []interface{}{
		"func",
		"config.readFromFile",
		"filePath",
		filePath,
	}

	sugar := zap.S().With(fields...)

	sugar.Debug("Load config...")

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}

func (c *AppConfig) Validate() error {
	switch c.OnMalformedLine {
	case MalformedSkip, MalformedFail:
	default:
		return fmt.Errorf("on_malformed_line must be %q or %q, got %q", MalformedSkip, MalformedFail, c.OnMalformedLine)
	}
	if c.PricePlaces < 0 {
		return fmt.Errorf("price_places must not be negative, got %d", c.PricePlaces)
	}
	return nil
}
