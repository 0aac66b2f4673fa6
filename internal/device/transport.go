// internal/device/transport.go
package device

import "fmt"

// Transport abstracts the word-level exchange with the device.
// The facade depends on nothing else: no framing, no retries, no timeouts.
// Connection lifecycle and retry policy belong to the implementation and
// its caller.
type Transport interface {
	// ReadWords reads count consecutive holding registers starting at addr.
	ReadWords(addr uint16, count uint16) ([]uint16, error)

	// WriteWord writes one holding register.
	WriteWord(addr uint16, value uint16) error
}

// TransportError wraps a transport-level failure with the operation that
// produced it. The underlying error is opaque to the facade and is never
// interpreted or retried here.
type TransportError struct {
	Op      string // "read" or "write"
	Address uint16
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("device: %s at register %d: %v", e.Op, e.Address, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
