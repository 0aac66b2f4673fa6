// internal/device/modbus/client.go

// Package modbus adapts goburrow/modbus to the device.Transport contract.
// One client is one connection to one transmitter; requests are serialized
// on a mutex because the underlying handler is not safe for concurrent use.
package modbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// Client implements device.Transport over Modbus TCP or RTU.
type Client struct {
	mu     sync.Mutex
	closer interface{ Close() error }
	client modbus.Client
}

// Config is the minimal transport config.
type Config struct {
	// Mode selects the framing: "tcp" (default) or "rtu".
	Mode string

	// Endpoint is host:port for TCP, the serial device path for RTU.
	Endpoint string

	UnitID  uint8
	Timeout time.Duration

	// Serial line settings, RTU only. Zero values fall back to 9600 8N1.
	BaudRate int
	DataBits int
	Parity   string
	StopBits int
}

// New dials the transmitter and returns a connected client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus client: endpoint required")
	}

	switch cfg.Mode {
	case "", "tcp":
		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID

		if err := h.Connect(); err != nil {
			return nil, err
		}
		return &Client{closer: h, client: modbus.NewClient(h)}, nil

	case "rtu":
		h := modbus.NewRTUClientHandler(cfg.Endpoint)
		h.Timeout = cfg.Timeout
		h.SlaveId = cfg.UnitID
		h.BaudRate = cfg.BaudRate
		h.DataBits = cfg.DataBits
		h.Parity = cfg.Parity
		h.StopBits = cfg.StopBits
		if h.BaudRate == 0 {
			h.BaudRate = 9600
		}
		if h.DataBits == 0 {
			h.DataBits = 8
		}
		if h.Parity == "" {
			h.Parity = "N"
		}
		if h.StopBits == 0 {
			h.StopBits = 1
		}

		if err := h.Connect(); err != nil {
			return nil, err
		}
		return &Client{closer: h, client: modbus.NewClient(h)}, nil

	default:
		return nil, fmt.Errorf("modbus client: unsupported mode %q", cfg.Mode)
	}
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// ---- device.Transport ----

// ReadWords reads count holding registers starting at addr.
func (c *Client) ReadWords(addr, count uint16) ([]uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload, err := c.client.ReadHoldingRegisters(addr, count)
	if err != nil {
		return nil, err
	}
	if len(payload) != int(count)*2 {
		return nil, fmt.Errorf(
			"modbus client: read %d registers at %d: payload is %d bytes, want %d",
			count, addr, len(payload), int(count)*2,
		)
	}
	return unpackRegisters(payload), nil
}

// WriteWord writes one holding register.
func (c *Client) WriteWord(addr, value uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.client.WriteSingleRegister(addr, value)
	return err
}

// unpackRegisters converts big-endian register bytes into words.
func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
