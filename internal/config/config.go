package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DeviceConfig describes the dongle's serial port and an optional default
// peer. A zero read timeout means reads block until bytes arrive.
type DeviceConfig struct {
	Port          string `toml:"port"`
	Baud          int    `toml:"baud"`
	ReadTimeoutMS int    `toml:"read_timeout_ms"`
	Address       string `toml:"address"`
}

func DefaultDeviceConfig() DeviceConfig {
	return DeviceConfig{
		Port: "/dev/ttyACM0",
		Baud: 115200,
	}
}

func LoadDeviceConfig(path string) (DeviceConfig, error) {
	var cfg DeviceConfig
	if err := loadToml(path, &cfg); err != nil {
		return DeviceConfig{}, err
	}
	if cfg.Port == "" {
		cfg.Port = DefaultDeviceConfig().Port
	}
	if cfg.Baud == 0 {
		cfg.Baud = DefaultDeviceConfig().Baud
	}
	if err := ValidateDeviceConfig(cfg); err != nil {
		return DeviceConfig{}, err
	}
	return cfg, nil
}

func ValidateDeviceConfig(cfg DeviceConfig) error {
	if cfg.Port == "" {
		return fmt.Errorf("config: port must not be empty")
	}
	if cfg.Baud <= 0 {
		return fmt.Errorf("config: baud must be positive, got %d", cfg.Baud)
	}
	if cfg.ReadTimeoutMS < 0 {
		return fmt.Errorf("config: read_timeout_ms must not be negative, got %d", cfg.ReadTimeoutMS)
	}
	return nil
}

// ReadTimeout converts the configured millisecond timeout.
func (cfg DeviceConfig) ReadTimeout() time.Duration {
	return time.Duration(cfg.ReadTimeoutMS) * time.Millisecond
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}
