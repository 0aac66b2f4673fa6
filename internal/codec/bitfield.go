// internal/codec/bitfield.go
package codec

import (
	"fmt"
	"sort"
)

// Field is one named sub-parameter inside a 16-bit register.
type Field struct {
	Name   string
	Offset uint // bit position of the least-significant bit
	Width  uint // number of bits
}

// FieldSpec is the immutable layout of a packed register.
// Build one with NewFieldSpec; layouts are validated there, never at pack
// or unpack time.
type FieldSpec struct {
	fields []Field
}

// FieldOverflowError reports a value that does not fit its declared width.
type FieldOverflowError struct {
	Field string
	Value uint16
	Width uint
}

func (e *FieldOverflowError) Error() string {
	return fmt.Sprintf("bitfield: value %d overflows %d-bit field %q", e.Value, e.Width, e.Field)
}

// NewFieldSpec validates a layout and returns it as a spec.
// Every field must lie entirely inside [0,16) and names must be unique.
// Fields may overlap only when the register genuinely aliases bits; callers
// that need an alias declare it deliberately.
func NewFieldSpec(fields ...Field) (FieldSpec, error) {
	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if f.Name == "" {
			return FieldSpec{}, fmt.Errorf("bitfield: unnamed field at offset %d", f.Offset)
		}
		if _, dup := seen[f.Name]; dup {
			return FieldSpec{}, fmt.Errorf("bitfield: duplicate field %q", f.Name)
		}
		seen[f.Name] = struct{}{}

		if f.Width == 0 {
			return FieldSpec{}, fmt.Errorf("bitfield: field %q has zero width", f.Name)
		}
		if f.Offset+f.Width > 16 {
			return FieldSpec{}, fmt.Errorf(
				"bitfield: field %q [%d,%d) extends past bit 15",
				f.Name, f.Offset, f.Offset+f.Width,
			)
		}
	}

	out := make([]Field, len(fields))
	copy(out, fields)
	return FieldSpec{fields: out}, nil
}

// MustFieldSpec is NewFieldSpec for layouts fixed at compile time.
// It panics on invalid layouts; register tables are built once at startup.
func MustFieldSpec(fields ...Field) FieldSpec {
	s, err := NewFieldSpec(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the declared field names in a stable order.
func (s FieldSpec) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func (s FieldSpec) mask(f Field) uint16 {
	return uint16(1)<<f.Width - 1
}

// Pack composes a register word from named field values.
// Every declared field must be present; a value wider than its field fails
// with FieldOverflowError before any bit is placed. Silent truncation is
// not an option here.
func (s FieldSpec) Pack(values map[string]uint16) (uint16, error) {
	for name := range values {
		if !s.has(name) {
			return 0, fmt.Errorf("bitfield: unknown field %q", name)
		}
	}

	var word uint16
	for _, f := range s.fields {
		v, ok := values[f.Name]
		if !ok {
			return 0, fmt.Errorf("bitfield: missing field %q", f.Name)
		}
		if v > s.mask(f) {
			return 0, &FieldOverflowError{Field: f.Name, Value: v, Width: f.Width}
		}
		word |= v << f.Offset
	}

	return word, nil
}

// Unpack splits a register word into named field values.
// Each value is shifted to bit 0 and masked to the declared width, so a
// field never observes bits outside its own span.
func (s FieldSpec) Unpack(word uint16) map[string]uint16 {
	out := make(map[string]uint16, len(s.fields))
	for _, f := range s.fields {
		out[f.Name] = (word >> f.Offset) & s.mask(f)
	}
	return out
}

func (s FieldSpec) has(name string) bool {
	for _, f := range s.fields {
		if f.Name == name {
			return true
		}
	}
	return false
}
