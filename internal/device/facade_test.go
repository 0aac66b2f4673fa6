// internal/device/facade_test.go
package device

import (
	"errors"
	"testing"

	"github.com/weighworks/zesg3/internal/codec"
	"github.com/weighworks/zesg3/internal/regmap"
)

// fakeTransport records every call and serves words from a register image.
type fakeTransport struct {
	regs map[uint16]uint16

	reads  []readCall
	writes []writeCall

	failRead  bool
	failWrite bool
	// failWriteAt fails only the write to this address (0 = disabled).
	failWriteAt uint16
}

type readCall struct {
	addr  uint16
	count uint16
}

type writeCall struct {
	addr  uint16
	value uint16
}

var errWire = errors.New("wire broke")

func (f *fakeTransport) ReadWords(addr, count uint16) ([]uint16, error) {
	f.reads = append(f.reads, readCall{addr: addr, count: count})
	if f.failRead {
		return nil, errWire
	}
	out := make([]uint16, count)
	for i := uint16(0); i < count; i++ {
		out[i] = f.regs[addr+i]
	}
	return out, nil
}

func (f *fakeTransport) WriteWord(addr, value uint16) error {
	f.writes = append(f.writes, writeCall{addr: addr, value: value})
	if f.failWrite || (f.failWriteAt != 0 && addr == f.failWriteAt) {
		return errWire
	}
	if f.regs == nil {
		f.regs = make(map[uint16]uint16)
	}
	f.regs[addr] = value
	return nil
}

func (f *fakeTransport) calls() int { return len(f.reads) + len(f.writes) }

// ---- reads ----

func TestReadFloatNetWeight(t *testing.T) {
	tr := &fakeTransport{regs: map[uint16]uint16{63: 0x4048, 64: 0xF5C3}}
	d := New(tr)

	got, err := d.NetWeight()
	if err != nil {
		t.Fatalf("NetWeight: %v", err)
	}
	if want := codec.DecodeFloat32(0x4048, 0xF5C3); got != want {
		t.Fatalf("got %v want %v", got, want)
	}

	if len(tr.reads) != 1 || tr.reads[0] != (readCall{addr: 63, count: 2}) {
		t.Fatalf("unexpected reads: %+v", tr.reads)
	}
}

func TestReadWordSingleRegister(t *testing.T) {
	tr := &fakeTransport{regs: map[uint16]uint16{0: 321}}
	d := New(tr)

	id, err := d.MachineID()
	if err != nil {
		t.Fatalf("MachineID: %v", err)
	}
	if id != 321 {
		t.Fatalf("got %d want 321", id)
	}
	if len(tr.reads) != 1 || tr.reads[0] != (readCall{addr: 0, count: 1}) {
		t.Fatalf("unexpected reads: %+v", tr.reads)
	}
}

func TestReadIntNegative(t *testing.T) {
	tr := &fakeTransport{regs: map[uint16]uint16{69: 0xFFFF, 70: 0xFFFF}}
	d := New(tr)

	v, err := d.IntegerNetWeight()
	if err != nil {
		t.Fatalf("IntegerNetWeight: %v", err)
	}
	if v != -1 {
		t.Fatalf("got %d want -1", v)
	}
}

func TestReadUintNoSignCorrection(t *testing.T) {
	tr := &fakeTransport{regs: map[uint16]uint16{91: 0x8000, 92: 0x0001}}
	d := New(tr)

	v, err := d.ADCRaw24()
	if err != nil {
		t.Fatalf("ADCRaw24: %v", err)
	}
	if v != 0x80000001 {
		t.Fatalf("got 0x%08X want 0x80000001", v)
	}
}

func TestReadUnknownRegister(t *testing.T) {
	tr := &fakeTransport{}
	d := New(tr)

	_, err := d.ReadWord("bogus")
	var unknown *regmap.ErrUnknownRegister
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknownRegister, got %v", err)
	}
	if tr.calls() != 0 {
		t.Fatalf("lookup failure must not touch the transport")
	}
}

func TestReadEncodingMismatch(t *testing.T) {
	tr := &fakeTransport{}
	d := New(tr)

	if _, err := d.ReadFloat(regmap.MachineID); !errors.Is(err, ErrEncodingMismatch) {
		t.Fatalf("expected ErrEncodingMismatch, got %v", err)
	}
	if _, err := d.ReadWord(regmap.NetWeight); !errors.Is(err, ErrEncodingMismatch) {
		t.Fatalf("expected ErrEncodingMismatch, got %v", err)
	}
	if tr.calls() != 0 {
		t.Fatalf("encoding mismatch must not touch the transport")
	}
}

func TestReadTransportFailureWrapped(t *testing.T) {
	tr := &fakeTransport{failRead: true}
	d := New(tr)

	_, err := d.GrossWeight()
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !errors.Is(err, errWire) {
		t.Fatalf("underlying error lost: %v", err)
	}
	if te.Op != "read" || te.Address != 65 {
		t.Fatalf("unexpected detail: %+v", te)
	}
}

func TestReadShortResponse(t *testing.T) {
	tr := &shortTransport{}
	d := New(tr)

	_, err := d.TareWeight()
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

type shortTransport struct{}

func (s *shortTransport) ReadWords(addr, count uint16) ([]uint16, error) {
	return []uint16{0}, nil // one word short for pairs
}

func (s *shortTransport) WriteWord(addr, value uint16) error { return nil }

// ---- writes ----

func TestWriteFloatMSWThenLSW(t *testing.T) {
	tr := &fakeTransport{}
	d := New(tr)

	if err := d.SetCellFullScale(3.14); err != nil {
		t.Fatalf("SetCellFullScale: %v", err)
	}

	if len(tr.writes) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(tr.writes))
	}
	if tr.writes[0] != (writeCall{addr: 15, value: 0x4048}) {
		t.Fatalf("first write %+v, want MSW 0x4048 at 15", tr.writes[0])
	}
	if tr.writes[1] != (writeCall{addr: 16, value: 0xF5C3}) {
		t.Fatalf("second write %+v, want LSW 0xF5C3 at 16", tr.writes[1])
	}
}

func TestWriteEnumRejectsIllegalValueBeforeTransport(t *testing.T) {
	tr := &fakeTransport{}
	d := New(tr)

	err := d.WriteWord(regmap.MeasurementUnit, 99)
	var invalid *InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
	if invalid.Register != regmap.MeasurementUnit || invalid.Value != 99 {
		t.Fatalf("unexpected detail: %+v", invalid)
	}
	if tr.calls() != 0 {
		t.Fatalf("rejected write must issue zero transport calls, got %d", tr.calls())
	}
}

func TestWriteEnumAcceptsLegalValue(t *testing.T) {
	tr := &fakeTransport{}
	d := New(tr)

	if err := d.SetMeasurementUnit(regmap.UnitGram); err != nil {
		t.Fatalf("SetMeasurementUnit: %v", err)
	}
	if len(tr.writes) != 1 || tr.writes[0] != (writeCall{addr: 2, value: 1}) {
		t.Fatalf("unexpected writes: %+v", tr.writes)
	}
}

func TestCommandRegister(t *testing.T) {
	tr := &fakeTransport{}
	d := New(tr)

	if err := d.Command(regmap.CmdReboot); err != nil {
		t.Fatalf("Command: %v", err)
	}
	if len(tr.writes) != 1 || tr.writes[0] != (writeCall{addr: 79, value: 43948}) {
		t.Fatalf("unexpected writes: %+v", tr.writes)
	}

	tr.writes = nil
	err := d.Command(regmap.CommandCode(1))
	var invalid *InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidValueError, got %v", err)
	}
	if len(tr.writes) != 0 {
		t.Fatalf("rejected command must not reach the transport")
	}
}

func TestWriteReadOnlyRejected(t *testing.T) {
	tr := &fakeTransport{}
	d := New(tr)

	if err := d.WriteFloat(regmap.NetWeight, 1); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
	if tr.calls() != 0 {
		t.Fatalf("read-only rejection must not touch the transport")
	}
}

func TestWritePartialPairFailure(t *testing.T) {
	// MSW at 15 succeeds, LSW at 16 fails: the error surfaces and no
	// compensating write is attempted.
	tr := &fakeTransport{failWriteAt: 16}
	d := New(tr)

	err := d.SetCellFullScale(1.5)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if te.Address != 16 {
		t.Fatalf("failure address %d, want 16", te.Address)
	}
	if len(tr.writes) != 2 {
		t.Fatalf("expected exactly 2 write attempts, got %d", len(tr.writes))
	}
}

func TestWriteUintRoundTrip(t *testing.T) {
	tr := &fakeTransport{}
	d := New(tr)

	// automatic_tare_reset is the writable pair register with raw encoding.
	if err := d.SetAutomaticTareReset(0x00012345); err != nil {
		t.Fatalf("SetAutomaticTareReset: %v", err)
	}

	got, err := d.AutomaticTareReset()
	if err != nil {
		t.Fatalf("AutomaticTareReset: %v", err)
	}
	if got != 0x00012345 {
		t.Fatalf("got 0x%08X want 0x00012345", got)
	}
}

// ---- composites ----

func TestSetAnalogOutputPacksOneWord(t *testing.T) {
	tr := &fakeTransport{}
	d := New(tr)

	if err := d.SetAnalogOutput(2, 1); err != nil {
		t.Fatalf("SetAnalogOutput: %v", err)
	}

	if len(tr.writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(tr.writes))
	}
	want := writeCall{addr: 4, value: 2 | 1<<2}
	if tr.writes[0] != want {
		t.Fatalf("got %+v want %+v", tr.writes[0], want)
	}
}

func TestAnalogOutputUnpackMasksFields(t *testing.T) {
	// Foreign bits above the declared fields must not leak into either value.
	tr := &fakeTransport{regs: map[uint16]uint16{4: 0xFFF0 | 2 | 1<<2}}
	d := New(tr)

	outputType, linkedTo, err := d.AnalogOutput()
	if err != nil {
		t.Fatalf("AnalogOutput: %v", err)
	}
	if outputType != 2 || linkedTo != 1 {
		t.Fatalf("got type=%d linked=%d, want 2/1", outputType, linkedTo)
	}
}

func TestSetDOutModeOverflowRejected(t *testing.T) {
	tr := &fakeTransport{}
	d := New(tr)

	// DOut2Mode is a single bit; 2 does not fit.
	err := d.SetDOutMode(DOutConfig{DOut2Mode: 2})
	var ofl *codec.FieldOverflowError
	if !errors.As(err, &ofl) {
		t.Fatalf("expected FieldOverflowError, got %v", err)
	}
	if tr.calls() != 0 {
		t.Fatalf("overflow must not reach the transport")
	}
}

func TestDigitalInTypeRoundTrip(t *testing.T) {
	tr := &fakeTransport{}
	d := New(tr)

	in := DigitalInConfig{DI1Type: 1, DI2Type: 0, DIO1Type: 1, DIO2Type: 1}
	if err := d.SetDigitalInType(in); err != nil {
		t.Fatalf("SetDigitalInType: %v", err)
	}

	got, err := d.DigitalInType()
	if err != nil {
		t.Fatalf("DigitalInType: %v", err)
	}
	if got != in {
		t.Fatalf("got %+v want %+v", got, in)
	}
}

// ---- status ----

func TestStatusDecode(t *testing.T) {
	tr := &fakeTransport{regs: map[uint16]uint16{77: 0b0000000101}}
	d := New(tr)

	flags, err := d.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(flags) != 10 {
		t.Fatalf("expected 10 flags, got %d", len(flags))
	}

	for i, name := range regmap.StatusFlags {
		want := i == 0 || i == 2
		if flags.On(name) != want {
			t.Errorf("flag %q (bit %d): got %v want %v", name, i, flags.On(name), want)
		}
	}

	if !flags.On(regmap.FlagThresholdStableDIDO1) {
		t.Errorf("bit 0 flag must be threshold_and_stable_weight_for_dido1")
	}
	if !flags.On(regmap.FlagNetWeightNegative) {
		t.Errorf("bit 2 flag must be net_weight_less_than_zero")
	}
}
