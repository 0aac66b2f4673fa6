// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Device DeviceConfig `yaml:"device"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	// Mode is "tcp" or "rtu". Empty means tcp.
	Mode string `yaml:"mode"`

	// Endpoint is host:port for tcp, a serial device path for rtu.
	Endpoint string `yaml:"endpoint"`

	UnitID    uint8 `yaml:"unit_id"`
	TimeoutMs int   `yaml:"timeout_ms"`

	// Serial line settings, rtu only.
	Serial SerialConfig `yaml:"serial"`
}

// ---- SERIAL ----

type SerialConfig struct {
	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"`
	StopBits int    `yaml:"stop_bits"`
}

// Load reads and decodes a config file. Validation is separate; call
// Validate before using the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
