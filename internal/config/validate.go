// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	d := cfg.Device

	switch d.Mode {
	case "", "tcp", "rtu":
	default:
		return fmt.Errorf("config: mode must be tcp or rtu, got %q", d.Mode)
	}

	if d.Endpoint == "" {
		return fmt.Errorf("config: endpoint is required")
	}

	if d.TimeoutMs < 0 {
		return fmt.Errorf("config: timeout_ms must be >= 0, got %d", d.TimeoutMs)
	}

	if d.Mode == "rtu" {
		switch d.Serial.Parity {
		case "", "N", "E", "O":
		default:
			return fmt.Errorf("config: serial parity must be N, E or O, got %q", d.Serial.Parity)
		}
		if d.Serial.BaudRate < 0 {
			return fmt.Errorf("config: serial baud_rate must be >= 0, got %d", d.Serial.BaudRate)
		}
		switch d.Serial.DataBits {
		case 0, 7, 8:
		default:
			return fmt.Errorf("config: serial data_bits must be 7 or 8, got %d", d.Serial.DataBits)
		}
		switch d.Serial.StopBits {
		case 0, 1, 2:
		default:
			return fmt.Errorf("config: serial stop_bits must be 1 or 2, got %d", d.Serial.StopBits)
		}
	}

	return nil
}
