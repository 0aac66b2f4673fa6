// internal/regmap/fields.go
package regmap

import "github.com/weighworks/zesg3/internal/codec"

// Sub-field names of the composite registers.
const (
	FieldOutputType     = "output_type"
	FieldOutputLinkedTo = "output_linked_to"

	FieldDIO1Type = "dio1_type"
	FieldDIO2Type = "dio2_type"
	FieldDI1Type  = "di1_type"
	FieldDI2Type  = "di2_type"

	FieldDOut1OpenClose = "dout1_open_close"
	FieldDOut2OpenClose = "dout2_open_close"
	FieldDOut1Mode      = "dout1_mode"
	FieldDOut2Mode      = "dout2_mode"
)

// analogOutputFields: output type at bit 0, linked channel at bit 2.
var analogOutputFields = codec.MustFieldSpec(
	codec.Field{Name: FieldOutputType, Offset: 0, Width: 2},
	codec.Field{Name: FieldOutputLinkedTo, Offset: 2, Width: 2},
)

// digitalInFields: DIO direction selectors at bits 0/1, input type
// selectors at bits 8/9.
var digitalInFields = codec.MustFieldSpec(
	codec.Field{Name: FieldDIO1Type, Offset: 0, Width: 1},
	codec.Field{Name: FieldDIO2Type, Offset: 1, Width: 1},
	codec.Field{Name: FieldDI1Type, Offset: 8, Width: 1},
	codec.Field{Name: FieldDI2Type, Offset: 9, Width: 1},
)

// doutModeFields: open/close polarity at bits 0/1, DOUT1 mode in bits
// 11-14. Only bit 15 is left for the DOUT2 mode; a wider field cannot fit
// in the register.
var doutModeFields = codec.MustFieldSpec(
	codec.Field{Name: FieldDOut1OpenClose, Offset: 0, Width: 1},
	codec.Field{Name: FieldDOut2OpenClose, Offset: 1, Width: 1},
	codec.Field{Name: FieldDOut1Mode, Offset: 11, Width: 4},
	codec.Field{Name: FieldDOut2Mode, Offset: 15, Width: 1},
)

// Status flag names, one per bit, bit 0 first. The order is fixed by the
// device firmware.
const (
	FlagThresholdStableDIDO1 = "threshold_and_stable_weight_for_dido1"
	FlagFullScaleCell        = "full_scale_cell"
	FlagNetWeightNegative    = "net_weight_less_than_zero"
	FlagThresholdStableDIDO2 = "threshold_and_stable_weight_for_dido2"
	FlagStableWeight         = "stable_weight"
	FlagDigitalOutput2On     = "digital_output_2_on"
	FlagDigitalOutput1On     = "digital_output_1_on"
	FlagThresholdHystDIDO1   = "threshold_with_hysteresis_for_dido1"
	FlagTareTracker          = "tare_tracker"
	FlagThresholdHystDIDO2   = "threshold_with_hysteresis_for_dido2"
)

// StatusFlags lists the status register flags in bit order, bit 0 first.
var StatusFlags = []string{
	FlagThresholdStableDIDO1,
	FlagFullScaleCell,
	FlagNetWeightNegative,
	FlagThresholdStableDIDO2,
	FlagStableWeight,
	FlagDigitalOutput2On,
	FlagDigitalOutput1On,
	FlagThresholdHystDIDO1,
	FlagTareTracker,
	FlagThresholdHystDIDO2,
}

var statusFields = buildStatusFields()

func buildStatusFields() codec.FieldSpec {
	fields := make([]codec.Field, len(StatusFlags))
	for i, name := range StatusFlags {
		fields[i] = codec.Field{Name: name, Offset: uint(i), Width: 1}
	}
	return codec.MustFieldSpec(fields...)
}
