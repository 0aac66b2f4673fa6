// internal/codec/bitfield_test.go
package codec

import (
	"errors"
	"testing"
)

func testSpec(t *testing.T) FieldSpec {
	t.Helper()
	s, err := NewFieldSpec(
		Field{Name: "a", Offset: 0, Width: 4},
		Field{Name: "b", Offset: 4, Width: 2},
		Field{Name: "c", Offset: 11, Width: 4},
	)
	if err != nil {
		t.Fatalf("NewFieldSpec: %v", err)
	}
	return s
}

func TestPackUnpackRoundTrip(t *testing.T) {
	s := testSpec(t)

	values := map[string]uint16{"a": 5, "b": 2, "c": 9}

	word, err := s.Pack(values)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	got := s.Unpack(word)
	for name, want := range values {
		if got[name] != want {
			t.Errorf("field %q: got %d want %d", name, got[name], want)
		}
	}
}

func TestPackBitPlacement(t *testing.T) {
	s := testSpec(t)

	word, err := s.Pack(map[string]uint16{"a": 5, "b": 2, "c": 9})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}

	want := uint16(5) | uint16(2)<<4 | uint16(9)<<11
	if word != want {
		t.Fatalf("got 0x%04X want 0x%04X", word, want)
	}
}

func TestPackRejectsOverflow(t *testing.T) {
	s := testSpec(t)

	// b is 2 bits wide, 4 does not fit.
	_, err := s.Pack(map[string]uint16{"a": 0, "b": 4, "c": 0})
	if err == nil {
		t.Fatalf("expected overflow error, got nil")
	}

	var ofl *FieldOverflowError
	if !errors.As(err, &ofl) {
		t.Fatalf("expected FieldOverflowError, got %v", err)
	}
	if ofl.Field != "b" || ofl.Width != 2 {
		t.Fatalf("unexpected overflow detail: %+v", ofl)
	}
}

func TestPackRejectsMissingAndUnknownFields(t *testing.T) {
	s := testSpec(t)

	if _, err := s.Pack(map[string]uint16{"a": 1, "b": 1}); err == nil {
		t.Fatalf("expected missing-field error, got nil")
	}
	if _, err := s.Pack(map[string]uint16{"a": 1, "b": 1, "c": 1, "d": 1}); err == nil {
		t.Fatalf("expected unknown-field error, got nil")
	}
}

func TestUnpackMasksToDeclaredWidth(t *testing.T) {
	s := testSpec(t)

	// All bits set: each field must see only its own span.
	got := s.Unpack(0xFFFF)

	if got["a"] != 0x0F {
		t.Errorf("a: got %d want 15", got["a"])
	}
	if got["b"] != 0x03 {
		t.Errorf("b: got %d want 3", got["b"])
	}
	if got["c"] != 0x0F {
		t.Errorf("c: got %d want 15", got["c"])
	}
}

func TestUnpackIgnoresForeignBits(t *testing.T) {
	s := testSpec(t)

	// Bits 6..10 belong to no field; they must not leak into any value.
	got := s.Unpack(0x07C0)
	for name, v := range got {
		if v != 0 {
			t.Errorf("field %q: got %d want 0", name, v)
		}
	}
}

func TestNewFieldSpecRejectsBadLayouts(t *testing.T) {
	cases := []struct {
		name   string
		fields []Field
	}{
		{"past bit 15", []Field{{Name: "x", Offset: 15, Width: 4}}},
		{"offset 16", []Field{{Name: "x", Offset: 16, Width: 1}}},
		{"zero width", []Field{{Name: "x", Offset: 0, Width: 0}}},
		{"unnamed", []Field{{Offset: 0, Width: 1}}},
		{"duplicate", []Field{{Name: "x", Offset: 0, Width: 1}, {Name: "x", Offset: 1, Width: 1}}},
	}

	for _, tc := range cases {
		if _, err := NewFieldSpec(tc.fields...); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestFullWidthField(t *testing.T) {
	s, err := NewFieldSpec(Field{Name: "raw", Offset: 0, Width: 16})
	if err != nil {
		t.Fatalf("NewFieldSpec: %v", err)
	}

	word, err := s.Pack(map[string]uint16{"raw": 0xBEEF})
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if word != 0xBEEF {
		t.Fatalf("got 0x%04X want 0xBEEF", word)
	}
	if got := s.Unpack(0xBEEF)["raw"]; got != 0xBEEF {
		t.Fatalf("unpack: got 0x%04X", got)
	}
}
