// internal/device/accessors.go
package device

import "github.com/weighworks/zesg3/internal/regmap"

// Typed accessors, one per logical register. They are thin wrappers over
// the generic operations; all validation lives there.

// ---- identity ----

func (d *Device) MachineID() (uint16, error) {
	return d.ReadWord(regmap.MachineID)
}

func (d *Device) FirmwareVersion() (uint16, error) {
	return d.ReadWord(regmap.FirmwareVersion)
}

// ---- measurement configuration ----

func (d *Device) MeasurementUnit() (regmap.MeasureUnit, error) {
	v, err := d.ReadWord(regmap.MeasurementUnit)
	return regmap.MeasureUnit(v), err
}

func (d *Device) SetMeasurementUnit(u regmap.MeasureUnit) error {
	return d.WriteWord(regmap.MeasurementUnit, uint16(u))
}

func (d *Device) UnipolarBipolar() (uint16, error) {
	return d.ReadWord(regmap.UnipolarBipolar)
}

func (d *Device) SetUnipolarBipolar(v uint16) error {
	return d.WriteWord(regmap.UnipolarBipolar, v)
}

func (d *Device) CalibrationMode() (uint16, error) {
	return d.ReadWord(regmap.CalibrationMode)
}

func (d *Device) SetCalibrationMode(mode uint16) error {
	return d.WriteWord(regmap.CalibrationMode, mode)
}

func (d *Device) CellSenseRatio() (float32, error) {
	return d.ReadFloat(regmap.CellSenseRatio)
}

func (d *Device) SetCellSenseRatio(ratio float32) error {
	return d.WriteFloat(regmap.CellSenseRatio, ratio)
}

func (d *Device) CellFullScale() (float32, error) {
	return d.ReadFloat(regmap.CellFullScale)
}

func (d *Device) SetCellFullScale(fullScale float32) error {
	return d.WriteFloat(regmap.CellFullScale, fullScale)
}

func (d *Device) StandardWeight() (float32, error) {
	return d.ReadFloat(regmap.StandardWeight)
}

func (d *Device) SetStandardWeight(weight float32) error {
	return d.WriteFloat(regmap.StandardWeight, weight)
}

// ---- thresholds and output scaling ----

func (d *Device) ThresholdDO1() (float32, error) {
	return d.ReadFloat(regmap.ThresholdDO1)
}

func (d *Device) SetThresholdDO1(threshold float32) error {
	return d.WriteFloat(regmap.ThresholdDO1, threshold)
}

func (d *Device) ThresholdDO2() (float32, error) {
	return d.ReadFloat(regmap.ThresholdDO2)
}

func (d *Device) SetThresholdDO2(threshold float32) error {
	return d.WriteFloat(regmap.ThresholdDO2, threshold)
}

func (d *Device) ThresholdHysteresisDO1() (float32, error) {
	return d.ReadFloat(regmap.ThresholdHystDO1)
}

func (d *Device) SetThresholdHysteresisDO1(hysteresis float32) error {
	return d.WriteFloat(regmap.ThresholdHystDO1, hysteresis)
}

func (d *Device) ThresholdHysteresisDO2() (float32, error) {
	return d.ReadFloat(regmap.ThresholdHystDO2)
}

func (d *Device) SetThresholdHysteresisDO2(hysteresis float32) error {
	return d.WriteFloat(regmap.ThresholdHystDO2, hysteresis)
}

func (d *Device) OutputWeightStartScale() (float32, error) {
	return d.ReadFloat(regmap.OutputWeightStart)
}

func (d *Device) SetOutputWeightStartScale(v float32) error {
	return d.WriteFloat(regmap.OutputWeightStart, v)
}

func (d *Device) OutputWeightStopScale() (float32, error) {
	return d.ReadFloat(regmap.OutputWeightStop)
}

func (d *Device) SetOutputWeightStopScale(v float32) error {
	return d.WriteFloat(regmap.OutputWeightStop, v)
}

func (d *Device) OutputStartScale() (float32, error) {
	return d.ReadFloat(regmap.OutputStartScale)
}

func (d *Device) SetOutputStartScale(v float32) error {
	return d.WriteFloat(regmap.OutputStartScale, v)
}

func (d *Device) OutputStopScale() (float32, error) {
	return d.ReadFloat(regmap.OutputStopScale)
}

func (d *Device) SetOutputStopScale(v float32) error {
	return d.WriteFloat(regmap.OutputStopScale, v)
}

func (d *Device) DeltaWeight() (float32, error) {
	return d.ReadFloat(regmap.DeltaWeight)
}

func (d *Device) SetDeltaWeight(v float32) error {
	return d.WriteFloat(regmap.DeltaWeight, v)
}

func (d *Device) DeltaTime() (uint16, error) {
	return d.ReadWord(regmap.DeltaTime)
}

func (d *Device) SetDeltaTime(v uint16) error {
	return d.WriteWord(regmap.DeltaTime, v)
}

// ---- composite registers ----

// AnalogOutput reads the analog output type and the channel it is linked to.
func (d *Device) AnalogOutput() (outputType, linkedTo uint16, err error) {
	fields, err := d.ReadFields(regmap.AnalogOutputType)
	if err != nil {
		return 0, 0, err
	}
	return fields[regmap.FieldOutputType], fields[regmap.FieldOutputLinkedTo], nil
}

func (d *Device) SetAnalogOutput(outputType, linkedTo uint16) error {
	return d.WriteFields(regmap.AnalogOutputType, map[string]uint16{
		regmap.FieldOutputType:     outputType,
		regmap.FieldOutputLinkedTo: linkedTo,
	})
}

// DigitalInConfig is the decoded digital input type register.
type DigitalInConfig struct {
	DI1Type  uint16 // input type on DIO1
	DI2Type  uint16 // input type on DIO2
	DIO1Type uint16 // input/output direction of DIO1
	DIO2Type uint16 // input/output direction of DIO2
}

func (d *Device) DigitalInType() (DigitalInConfig, error) {
	fields, err := d.ReadFields(regmap.DigitalInType)
	if err != nil {
		return DigitalInConfig{}, err
	}
	return DigitalInConfig{
		DI1Type:  fields[regmap.FieldDI1Type],
		DI2Type:  fields[regmap.FieldDI2Type],
		DIO1Type: fields[regmap.FieldDIO1Type],
		DIO2Type: fields[regmap.FieldDIO2Type],
	}, nil
}

func (d *Device) SetDigitalInType(cfg DigitalInConfig) error {
	return d.WriteFields(regmap.DigitalInType, map[string]uint16{
		regmap.FieldDI1Type:  cfg.DI1Type,
		regmap.FieldDI2Type:  cfg.DI2Type,
		regmap.FieldDIO1Type: cfg.DIO1Type,
		regmap.FieldDIO2Type: cfg.DIO2Type,
	})
}

// DOutConfig is the decoded digital output mode register.
type DOutConfig struct {
	DOut1OpenClose uint16
	DOut2OpenClose uint16
	DOut1Mode      uint16
	DOut2Mode      uint16
}

func (d *Device) DOutMode() (DOutConfig, error) {
	fields, err := d.ReadFields(regmap.DOutMode)
	if err != nil {
		return DOutConfig{}, err
	}
	return DOutConfig{
		DOut1OpenClose: fields[regmap.FieldDOut1OpenClose],
		DOut2OpenClose: fields[regmap.FieldDOut2OpenClose],
		DOut1Mode:      fields[regmap.FieldDOut1Mode],
		DOut2Mode:      fields[regmap.FieldDOut2Mode],
	}, nil
}

func (d *Device) SetDOutMode(cfg DOutConfig) error {
	return d.WriteFields(regmap.DOutMode, map[string]uint16{
		regmap.FieldDOut1OpenClose: cfg.DOut1OpenClose,
		regmap.FieldDOut2OpenClose: cfg.DOut2OpenClose,
		regmap.FieldDOut1Mode:      cfg.DOut1Mode,
		regmap.FieldDOut2Mode:      cfg.DOut2Mode,
	})
}

// ---- acquisition chain ----

func (d *Device) ADCSpeed() (regmap.ADCSpeed, error) {
	v, err := d.ReadWord(regmap.ADCSpeedRegister)
	return regmap.ADCSpeed(v), err
}

func (d *Device) SetADCSpeed(speed regmap.ADCSpeed) error {
	return d.WriteWord(regmap.ADCSpeedRegister, uint16(speed))
}

func (d *Device) DenoiseFilterValue() (regmap.DenoiseFilter, error) {
	v, err := d.ReadWord(regmap.DenoiseFilterValue)
	return regmap.DenoiseFilter(v), err
}

func (d *Device) SetDenoiseFilterValue(f regmap.DenoiseFilter) error {
	return d.WriteWord(regmap.DenoiseFilterValue, uint16(f))
}

func (d *Device) DenoiseFilterEnabled() (bool, error) {
	v, err := d.ReadWord(regmap.DenoiseFilterEnable)
	return v != 0, err
}

func (d *Device) SetDenoiseFilterEnabled(enabled bool) error {
	var v uint16
	if enabled {
		v = 1
	}
	return d.WriteWord(regmap.DenoiseFilterEnable, v)
}

func (d *Device) DenoiseVariation() (float32, error) {
	return d.ReadFloat(regmap.DenoiseVariation)
}

func (d *Device) SetDenoiseVariation(v float32) error {
	return d.WriteFloat(regmap.DenoiseVariation, v)
}

func (d *Device) DenoiseResponse() (float32, error) {
	return d.ReadFloat(regmap.DenoiseResponse)
}

func (d *Device) SetDenoiseResponse(v float32) error {
	return d.WriteFloat(regmap.DenoiseResponse, v)
}

func (d *Device) ResolutionMode() (regmap.ResolutionMode, error) {
	v, err := d.ReadWord(regmap.ResolutionModeReg)
	return regmap.ResolutionMode(v), err
}

func (d *Device) SetResolutionMode(mode regmap.ResolutionMode) error {
	return d.WriteWord(regmap.ResolutionModeReg, uint16(mode))
}

func (d *Device) ManualResolution() (float32, error) {
	return d.ReadFloat(regmap.ManualResolution)
}

func (d *Device) SetManualResolution(v float32) error {
	return d.WriteFloat(regmap.ManualResolution, v)
}

// ---- tare ----

func (d *Device) AutomaticTareReset() (uint32, error) {
	return d.ReadUint(regmap.AutomaticTareReset)
}

func (d *Device) SetAutomaticTareReset(v uint32) error {
	return d.WriteUint(regmap.AutomaticTareReset, v)
}

func (d *Device) FactoryManualTare() (float32, error) {
	return d.ReadFloat(regmap.FactoryManualTare)
}

func (d *Device) SetFactoryManualTare(v float32) error {
	return d.WriteFloat(regmap.FactoryManualTare, v)
}

// ---- piece counting ----

func (d *Device) OnePieceWeight() (float32, error) {
	return d.ReadFloat(regmap.OnePieceWeight)
}

func (d *Device) SetOnePieceWeight(v float32) error {
	return d.WriteFloat(regmap.OnePieceWeight, v)
}

func (d *Device) PiecesCounter() (uint16, error) {
	return d.ReadWord(regmap.PiecesCounter)
}

// ---- live values ----

func (d *Device) NetWeight() (float32, error) {
	return d.ReadFloat(regmap.NetWeight)
}

func (d *Device) GrossWeight() (float32, error) {
	return d.ReadFloat(regmap.GrossWeight)
}

func (d *Device) TareWeight() (float32, error) {
	return d.ReadFloat(regmap.TareWeight)
}

func (d *Device) IntegerNetWeight() (int32, error) {
	return d.ReadInt(regmap.IntegerNetWeight)
}

func (d *Device) IntegerGrossWeight() (int32, error) {
	return d.ReadInt(regmap.IntegerGrossWeight)
}

func (d *Device) IntegerTareWeight() (int32, error) {
	return d.ReadInt(regmap.IntegerTareWeight)
}

func (d *Device) MaxNetWeight() (float32, error) {
	return d.ReadFloat(regmap.MaxNetWeight)
}

func (d *Device) MinNetWeight() (float32, error) {
	return d.ReadFloat(regmap.MinNetWeight)
}

func (d *Device) ADCFiltered16() (uint16, error) {
	return d.ReadWord(regmap.ADCFiltered16)
}

func (d *Device) ADCRaw24() (uint32, error) {
	return d.ReadUint(regmap.ADCRaw24)
}

func (d *Device) ADCFiltered24() (uint32, error) {
	return d.ReadUint(regmap.ADCFiltered24)
}

// ---- analog output ----

func (d *Device) ManualAnalogOutput() (uint32, error) {
	return d.ReadUint(regmap.ManualAnalogOutput)
}

func (d *Device) SetManualAnalogOutput(v uint32) error {
	return d.WriteUint(regmap.ManualAnalogOutput, v)
}

// ---- password and commands ----

func (d *Device) Password() (uint16, error) {
	return d.ReadWord(regmap.Password)
}

// Command writes a command code into the command register. Codes outside
// the fixed command set are rejected before any transport call.
func (d *Device) Command(code regmap.CommandCode) error {
	return d.WriteWord(regmap.CommandRegister, uint16(code))
}

// LastCommand reads back the command register.
func (d *Device) LastCommand() (uint16, error) {
	return d.ReadWord(regmap.CommandRegister)
}
