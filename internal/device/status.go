// internal/device/status.go
package device

import "github.com/weighworks/zesg3/internal/regmap"

// StatusFlags maps each status flag name to its current state.
// Flag names and bit order are fixed by the device firmware; see
// regmap.StatusFlags for the bit 0-first ordering.
type StatusFlags map[string]bool

// On reports a single flag. Unknown names are simply false.
func (s StatusFlags) On(flag string) bool { return s[flag] }

// Status reads and decodes the status register. All ten flags are always
// present in the result.
func (d *Device) Status() (StatusFlags, error) {
	fields, err := d.ReadFields(regmap.Status)
	if err != nil {
		return nil, err
	}

	flags := make(StatusFlags, len(fields))
	for name, v := range fields {
		flags[name] = v != 0
	}
	return flags, nil
}
