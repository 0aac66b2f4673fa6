// internal/regmap/regmap.go

// Package regmap is the fixed register table of the Seneca ZE-SG3 weight
// transmitter: one descriptor per logical register, carrying its base
// address, wire encoding, legal value set for constrained registers, and
// sub-field layout for packed registers. The table is built once and never
// mutated, so it is safe to share without locking.
package regmap

import (
	"fmt"
	"sort"

	"github.com/weighworks/zesg3/internal/codec"
)

// Descriptor describes one logical register.
type Descriptor struct {
	Name     string
	Address  uint16 // base address; multi-word values also occupy Address+1
	Encoding Encoding

	// Legal is the closed set of writable values for Enum and Command
	// registers. Nil means unconstrained.
	Legal []uint16

	// Fields is the sub-field layout for BitField registers.
	Fields codec.FieldSpec

	// ReadOnly marks registers the device does not accept writes to.
	ReadOnly bool
}

// Words is how many consecutive registers the value occupies.
func (d Descriptor) Words() uint16 {
	return d.Encoding.Words()
}

// Allows reports whether v is in the register's legal set.
// Unconstrained registers allow every word value. Membership is checked
// against the explicit set, never by range.
func (d Descriptor) Allows(v uint16) bool {
	if d.Legal == nil {
		return true
	}
	for _, legal := range d.Legal {
		if legal == v {
			return true
		}
	}
	return false
}

// ErrUnknownRegister is returned by Lookup for names not in the table.
// Hitting it is a programming error in the caller, not a device condition.
type ErrUnknownRegister struct {
	Name string
}

func (e *ErrUnknownRegister) Error() string {
	return fmt.Sprintf("regmap: unknown register %q", e.Name)
}

var table = buildTable()

func buildTable() map[string]Descriptor {
	descriptors := []Descriptor{
		{Name: MachineID, Address: AddrMachineID, Encoding: UInt16, ReadOnly: true},
		{Name: FirmwareVersion, Address: AddrFirmwareVersion, Encoding: UInt16, ReadOnly: true},
		{Name: MeasurementUnit, Address: AddrMeasurementUnit, Encoding: Enum, Legal: legalMeasureUnits()},
		{Name: UnipolarBipolar, Address: AddrUnipolarBipolar, Encoding: UInt16},
		{Name: AnalogOutputType, Address: AddrAnalogOutputType, Encoding: BitField, Fields: analogOutputFields},
		{Name: DigitalInType, Address: AddrDigitalInType, Encoding: BitField, Fields: digitalInFields},
		{Name: CalibrationMode, Address: AddrCalibrationMode, Encoding: UInt16},
		{Name: CellSenseRatio, Address: AddrCellSenseRatio, Encoding: Float32},
		{Name: CellFullScale, Address: AddrCellFullScale, Encoding: Float32},
		{Name: StandardWeight, Address: AddrStandardWeight, Encoding: Float32},
		{Name: ThresholdDO1, Address: AddrThresholdDO1, Encoding: Float32},
		{Name: OutputWeightStart, Address: AddrOutputWeightStart, Encoding: Float32},
		{Name: OutputWeightStop, Address: AddrOutputWeightStop, Encoding: Float32},
		{Name: OutputStopScale, Address: AddrOutputStopScale, Encoding: Float32},
		{Name: OutputStartScale, Address: AddrOutputStartScale, Encoding: Float32},
		{Name: DeltaWeight, Address: AddrDeltaWeight, Encoding: Float32},
		{Name: DeltaTime, Address: AddrDeltaTime, Encoding: UInt16},
		{Name: DOutMode, Address: AddrDOutMode, Encoding: BitField, Fields: doutModeFields},
		{Name: ADCSpeedRegister, Address: AddrADCSpeed, Encoding: Enum, Legal: legalADCSpeeds()},
		{Name: AutomaticTareReset, Address: AddrAutomaticTareReset, Encoding: UInt32},
		{Name: ThresholdHystDO1, Address: AddrThresholdHystDO1, Encoding: Float32},
		{Name: DenoiseVariation, Address: AddrDenoiseVariation, Encoding: Float32},
		{Name: DenoiseResponse, Address: AddrDenoiseResponse, Encoding: Float32},
		{Name: DenoiseFilterValue, Address: AddrDenoiseFilterValue, Encoding: Enum, Legal: legalDenoiseFilters()},
		{Name: ResolutionModeReg, Address: AddrResolutionMode, Encoding: Enum, Legal: legalResolutionModes()},
		{Name: DenoiseFilterEnable, Address: AddrDenoiseFilterEnable, Encoding: UInt16},
		{Name: ManualResolution, Address: AddrManualResolution, Encoding: Float32},
		{Name: OnePieceWeight, Address: AddrOnePieceWeight, Encoding: Float32},
		{Name: ThresholdDO2, Address: AddrThresholdDO2, Encoding: Float32},
		{Name: ThresholdHystDO2, Address: AddrThresholdHystDO2, Encoding: Float32},
		{Name: ADCFiltered16, Address: AddrADCFiltered16, Encoding: UInt16, ReadOnly: true},
		{Name: NetWeight, Address: AddrNetWeight, Encoding: Float32, ReadOnly: true},
		{Name: GrossWeight, Address: AddrGrossWeight, Encoding: Float32, ReadOnly: true},
		{Name: TareWeight, Address: AddrTareWeight, Encoding: Float32, ReadOnly: true},
		{Name: IntegerNetWeight, Address: AddrIntegerNetWeight, Encoding: Signed32, ReadOnly: true},
		{Name: IntegerGrossWeight, Address: AddrIntegerGrossWeight, Encoding: Signed32, ReadOnly: true},
		{Name: IntegerTareWeight, Address: AddrIntegerTareWeight, Encoding: Signed32, ReadOnly: true},
		{Name: FactoryManualTare, Address: AddrFactoryManualTare, Encoding: Float32},
		{Name: Status, Address: AddrStatus, Encoding: BitField, Fields: statusFields, ReadOnly: true},
		{Name: Password, Address: AddrPassword, Encoding: UInt16, ReadOnly: true},
		{Name: CommandRegister, Address: AddrCommandRegister, Encoding: Command, Legal: legalCommands()},
		{Name: PiecesCounter, Address: AddrPiecesCounter, Encoding: UInt16, ReadOnly: true},
		{Name: MaxNetWeight, Address: AddrMaxNetWeight, Encoding: Float32, ReadOnly: true},
		{Name: MinNetWeight, Address: AddrMinNetWeight, Encoding: Float32, ReadOnly: true},
		{Name: ADCRaw24, Address: AddrADCRaw24, Encoding: UInt32, ReadOnly: true},
		{Name: ADCFiltered24, Address: AddrADCFiltered24, Encoding: UInt32, ReadOnly: true},
		{Name: ManualAnalogOutput, Address: AddrManualAnalogOutput, Encoding: UInt32},
	}

	m := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		if _, dup := m[d.Name]; dup {
			panic(fmt.Sprintf("regmap: duplicate register %q", d.Name))
		}
		if (d.Encoding == Enum || d.Encoding == Command) && len(d.Legal) == 0 {
			panic(fmt.Sprintf("regmap: register %q has an empty legal set", d.Name))
		}
		m[d.Name] = d
	}
	return m
}

// Lookup resolves a logical register name to its descriptor.
func Lookup(name string) (Descriptor, error) {
	d, ok := table[name]
	if !ok {
		return Descriptor{}, &ErrUnknownRegister{Name: name}
	}
	return d, nil
}

// LegalValues returns the enumerated domain for Enum and Command registers.
// ok is false for unconstrained registers.
func LegalValues(name string) (values []uint16, ok bool, err error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, false, err
	}
	if d.Legal == nil {
		return nil, false, nil
	}
	out := make([]uint16, len(d.Legal))
	copy(out, d.Legal)
	return out, true, nil
}

// Names lists every register in the table, sorted by address.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return table[names[i]].Address < table[names[j]].Address
	})
	return names
}
