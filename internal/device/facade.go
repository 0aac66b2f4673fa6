// internal/device/facade.go

// Package device exposes the ZE-SG3 register map as typed get/set
// operations over an injected word transport. Every operation resolves its
// register descriptor, validates the candidate value before touching the
// transport, and applies the matching codec.
//
// The facade is strictly synchronous and keeps no mutable state; callers
// sharing one physical connection must serialize all calls through a single
// Device. Multi-word writes are two independent transport calls (MSW then
// LSW) with no atomicity: a failure on the second word leaves the register
// pair undefined until it is re-read and rewritten.
package device

import (
	"fmt"

	"github.com/weighworks/zesg3/internal/codec"
	"github.com/weighworks/zesg3/internal/regmap"
)

// Device is the register facade. The zero value is not usable; construct
// with New.
type Device struct {
	tr Transport
}

// New wires a facade to a transport. The transport's connection is owned by
// the caller for the whole session.
func New(tr Transport) *Device {
	return &Device{tr: tr}
}

// ---- generic reads ----

// ReadWord reads a single-word register (plain, enum or command).
func (d *Device) ReadWord(name string) (uint16, error) {
	desc, err := regmap.Lookup(name)
	if err != nil {
		return 0, err
	}
	switch desc.Encoding {
	case regmap.UInt16, regmap.Enum, regmap.Command:
	default:
		return 0, fmt.Errorf("device: %s is %s: %w", name, desc.Encoding, ErrEncodingMismatch)
	}

	words, err := d.readWords(desc)
	if err != nil {
		return 0, err
	}
	return words[0], nil
}

// ReadFloat reads a float32 register pair.
func (d *Device) ReadFloat(name string) (float32, error) {
	desc, err := regmap.Lookup(name)
	if err != nil {
		return 0, err
	}
	if desc.Encoding != regmap.Float32 {
		return 0, fmt.Errorf("device: %s is %s: %w", name, desc.Encoding, ErrEncodingMismatch)
	}

	words, err := d.readWords(desc)
	if err != nil {
		return 0, err
	}
	return codec.DecodeFloat32(words[0], words[1]), nil
}

// ReadInt reads a signed 32-bit register pair.
func (d *Device) ReadInt(name string) (int32, error) {
	desc, err := regmap.Lookup(name)
	if err != nil {
		return 0, err
	}
	if desc.Encoding != regmap.Signed32 {
		return 0, fmt.Errorf("device: %s is %s: %w", name, desc.Encoding, ErrEncodingMismatch)
	}

	words, err := d.readWords(desc)
	if err != nil {
		return 0, err
	}
	return codec.DecodeSigned32(words[0], words[1]), nil
}

// ReadUint reads an unsigned 32-bit register pair.
func (d *Device) ReadUint(name string) (uint32, error) {
	desc, err := regmap.Lookup(name)
	if err != nil {
		return 0, err
	}
	if desc.Encoding != regmap.UInt32 {
		return 0, fmt.Errorf("device: %s is %s: %w", name, desc.Encoding, ErrEncodingMismatch)
	}

	words, err := d.readWords(desc)
	if err != nil {
		return 0, err
	}
	return codec.DecodeUnsigned32(words[0], words[1]), nil
}

// ReadFields reads a packed register and unpacks its named sub-fields.
// Every value is masked to its declared width.
func (d *Device) ReadFields(name string) (map[string]uint16, error) {
	desc, err := regmap.Lookup(name)
	if err != nil {
		return nil, err
	}
	if desc.Encoding != regmap.BitField {
		return nil, fmt.Errorf("device: %s is %s: %w", name, desc.Encoding, ErrEncodingMismatch)
	}

	words, err := d.readWords(desc)
	if err != nil {
		return nil, err
	}
	return desc.Fields.Unpack(words[0]), nil
}

// ---- generic writes ----

// WriteWord writes a single-word register. Writes to enumerated registers
// are checked against the legal set and rejected with InvalidValueError
// before any transport call.
func (d *Device) WriteWord(name string, value uint16) error {
	desc, err := d.writableDescriptor(name)
	if err != nil {
		return err
	}
	switch desc.Encoding {
	case regmap.UInt16, regmap.Enum, regmap.Command:
	default:
		return fmt.Errorf("device: %s is %s: %w", name, desc.Encoding, ErrEncodingMismatch)
	}

	if !desc.Allows(value) {
		return &InvalidValueError{Register: name, Value: value}
	}
	return d.writeWord(desc.Address, value)
}

// WriteFloat writes a float32 register pair.
func (d *Device) WriteFloat(name string, value float32) error {
	desc, err := d.writableDescriptor(name)
	if err != nil {
		return err
	}
	if desc.Encoding != regmap.Float32 {
		return fmt.Errorf("device: %s is %s: %w", name, desc.Encoding, ErrEncodingMismatch)
	}

	msw, lsw := codec.EncodeFloat32(value)
	return d.writePair(desc.Address, msw, lsw)
}

// WriteInt writes a signed 32-bit register pair.
func (d *Device) WriteInt(name string, value int32) error {
	desc, err := d.writableDescriptor(name)
	if err != nil {
		return err
	}
	if desc.Encoding != regmap.Signed32 {
		return fmt.Errorf("device: %s is %s: %w", name, desc.Encoding, ErrEncodingMismatch)
	}

	msw, lsw := codec.EncodeSigned32(value)
	return d.writePair(desc.Address, msw, lsw)
}

// WriteUint writes an unsigned 32-bit register pair.
func (d *Device) WriteUint(name string, value uint32) error {
	desc, err := d.writableDescriptor(name)
	if err != nil {
		return err
	}
	if desc.Encoding != regmap.UInt32 {
		return fmt.Errorf("device: %s is %s: %w", name, desc.Encoding, ErrEncodingMismatch)
	}

	msw, lsw := codec.EncodeUnsigned32(value)
	return d.writePair(desc.Address, msw, lsw)
}

// WriteFields packs named sub-fields into one word and writes it.
// A value exceeding its field width fails with FieldOverflowError before
// any transport call.
func (d *Device) WriteFields(name string, values map[string]uint16) error {
	desc, err := d.writableDescriptor(name)
	if err != nil {
		return err
	}
	if desc.Encoding != regmap.BitField {
		return fmt.Errorf("device: %s is %s: %w", name, desc.Encoding, ErrEncodingMismatch)
	}

	word, err := desc.Fields.Pack(values)
	if err != nil {
		return err
	}
	return d.writeWord(desc.Address, word)
}

// ---- internals ----

func (d *Device) writableDescriptor(name string) (regmap.Descriptor, error) {
	desc, err := regmap.Lookup(name)
	if err != nil {
		return regmap.Descriptor{}, err
	}
	if desc.ReadOnly {
		return regmap.Descriptor{}, fmt.Errorf("device: %s: %w", name, ErrReadOnly)
	}
	return desc, nil
}

func (d *Device) readWords(desc regmap.Descriptor) ([]uint16, error) {
	count := desc.Words()

	words, err := d.tr.ReadWords(desc.Address, count)
	if err != nil {
		return nil, &TransportError{Op: "read", Address: desc.Address, Err: err}
	}
	if uint16(len(words)) != count {
		return nil, &TransportError{
			Op:      "read",
			Address: desc.Address,
			Err:     fmt.Errorf("short response: got %d words, want %d", len(words), count),
		}
	}
	return words, nil
}

func (d *Device) writeWord(addr, value uint16) error {
	if err := d.tr.WriteWord(addr, value); err != nil {
		return &TransportError{Op: "write", Address: addr, Err: err}
	}
	return nil
}

// writePair writes MSW then LSW. The protocol has no multi-register
// transaction primitive here, so a failure on the LSW leaves the pair
// inconsistent; no compensating write is attempted.
func (d *Device) writePair(addr, msw, lsw uint16) error {
	if err := d.writeWord(addr, msw); err != nil {
		return err
	}
	return d.writeWord(addr+1, lsw)
}
