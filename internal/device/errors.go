// internal/device/errors.go
package device

import (
	"errors"
	"fmt"
)

// ErrReadOnly is returned when writing a register the device does not
// accept writes to.
var ErrReadOnly = errors.New("device: register is read-only")

// ErrEncodingMismatch is returned when an operation's value type does not
// match the register's declared encoding, e.g. ReadFloat on a plain word.
var ErrEncodingMismatch = errors.New("device: operation does not match register encoding")

// InvalidValueError reports a write rejected by an enumerated register's
// legal set. The rejection happens before any transport call.
type InvalidValueError struct {
	Register string
	Value    uint16
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("device: value %d is not legal for register %q", e.Value, e.Register)
}
