// internal/regmap/enums.go
package regmap

// Enumerated register domains. Values are device firmware constants and
// must not be renumbered.

// MeasureUnit is the unit the device reports weights in.
type MeasureUnit uint16

const (
	UnitKilogram   MeasureUnit = 0
	UnitGram       MeasureUnit = 1
	UnitTonne      MeasureUnit = 2
	UnitPound      MeasureUnit = 3
	UnitLitre      MeasureUnit = 4
	UnitNewton     MeasureUnit = 5
	UnitBar        MeasureUnit = 6
	UnitAtmosphere MeasureUnit = 7
	UnitOther      MeasureUnit = 8
)

// ADCSpeed selects the converter sample rate.
type ADCSpeed uint16

const (
	Speed960Hz ADCSpeed = 0
	Speed300Hz ADCSpeed = 1
	Speed150Hz ADCSpeed = 2
	Speed100Hz ADCSpeed = 3
	Speed60Hz  ADCSpeed = 4
	Speed12Hz  ADCSpeed = 5
	Speed4p7Hz ADCSpeed = 6
)

// DenoiseFilter selects the denoise filter time constant.
type DenoiseFilter uint16

const (
	Filter2ms      DenoiseFilter = 0
	Filter6p7ms    DenoiseFilter = 1
	Filter13ms     DenoiseFilter = 2
	Filter30ms     DenoiseFilter = 3
	Filter50ms     DenoiseFilter = 4
	Filter250ms    DenoiseFilter = 5
	Filter850ms    DenoiseFilter = 6
	FilterAdvanced DenoiseFilter = 7
)

// ResolutionMode selects how display resolution is derived.
type ResolutionMode uint16

const (
	// ResolutionAutomatic derives resolution from the full scale,
	// targeting about 20000 points.
	ResolutionAutomatic ResolutionMode = 0
	// ResolutionManual takes resolution from the manual resolution register.
	ResolutionManual ResolutionMode = 1
	// ResolutionMax uses the full 24 ADC bits.
	ResolutionMax ResolutionMode = 2
)

// CommandCode is a value accepted by the command register.
type CommandCode uint16

const (
	CmdReboot              CommandCode = 43948
	CmdTareToRAM           CommandCode = 49594
	CmdTareToFlash         CommandCode = 49914
	CmdSampleWeightToFlash CommandCode = 50700
	CmdTareFromRegister    CommandCode = 50773
	CmdResetMaxNetWeight   CommandCode = 49151
	CmdResetMinNetWeight   CommandCode = 45056
)

func legalMeasureUnits() []uint16 {
	return []uint16{
		uint16(UnitKilogram), uint16(UnitGram), uint16(UnitTonne),
		uint16(UnitPound), uint16(UnitLitre), uint16(UnitNewton),
		uint16(UnitBar), uint16(UnitAtmosphere), uint16(UnitOther),
	}
}

func legalADCSpeeds() []uint16 {
	return []uint16{
		uint16(Speed960Hz), uint16(Speed300Hz), uint16(Speed150Hz),
		uint16(Speed100Hz), uint16(Speed60Hz), uint16(Speed12Hz),
		uint16(Speed4p7Hz),
	}
}

func legalDenoiseFilters() []uint16 {
	return []uint16{
		uint16(Filter2ms), uint16(Filter6p7ms), uint16(Filter13ms),
		uint16(Filter30ms), uint16(Filter50ms), uint16(Filter250ms),
		uint16(Filter850ms), uint16(FilterAdvanced),
	}
}

func legalResolutionModes() []uint16 {
	return []uint16{
		uint16(ResolutionAutomatic), uint16(ResolutionManual),
		uint16(ResolutionMax),
	}
}

func legalCommands() []uint16 {
	return []uint16{
		uint16(CmdReboot), uint16(CmdTareToRAM), uint16(CmdTareToFlash),
		uint16(CmdSampleWeightToFlash), uint16(CmdTareFromRegister),
		uint16(CmdResetMaxNetWeight), uint16(CmdResetMinNetWeight),
	}
}
