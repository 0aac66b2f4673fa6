// internal/regmap/registers.go
package regmap

// Base addresses of the ZE-SG3 holding registers. Multi-word values occupy
// the base address (MSW) and the next one (LSW). These must match the device
// firmware exactly.
const (
	AddrMachineID             uint16 = 0
	AddrFirmwareVersion       uint16 = 1
	AddrMeasurementUnit       uint16 = 2
	AddrUnipolarBipolar       uint16 = 3
	AddrAnalogOutputType      uint16 = 4
	AddrDigitalInType         uint16 = 5
	AddrCalibrationMode       uint16 = 6
	AddrCellSenseRatio        uint16 = 13
	AddrCellFullScale         uint16 = 15
	AddrStandardWeight        uint16 = 17
	AddrThresholdDO1          uint16 = 19
	AddrOutputWeightStart     uint16 = 21
	AddrOutputWeightStop      uint16 = 23
	AddrOutputStopScale       uint16 = 25
	AddrOutputStartScale      uint16 = 27
	AddrDeltaWeight           uint16 = 29
	AddrDeltaTime             uint16 = 31
	AddrDOutMode              uint16 = 32
	AddrADCSpeed              uint16 = 33
	AddrAutomaticTareReset    uint16 = 34
	AddrThresholdHystDO1      uint16 = 36
	AddrDenoiseVariation      uint16 = 38
	AddrDenoiseResponse       uint16 = 40
	AddrDenoiseFilterValue    uint16 = 42
	AddrResolutionMode        uint16 = 43
	AddrDenoiseFilterEnable   uint16 = 44
	AddrManualResolution      uint16 = 45
	AddrOnePieceWeight        uint16 = 47
	AddrThresholdDO2          uint16 = 49
	AddrThresholdHystDO2      uint16 = 51
	AddrADCFiltered16         uint16 = 62
	AddrNetWeight             uint16 = 63
	AddrGrossWeight           uint16 = 65
	AddrTareWeight            uint16 = 67
	AddrIntegerNetWeight      uint16 = 69
	AddrIntegerGrossWeight    uint16 = 71
	AddrIntegerTareWeight     uint16 = 73
	AddrFactoryManualTare     uint16 = 75
	AddrStatus                uint16 = 77
	AddrPassword              uint16 = 78
	AddrCommandRegister       uint16 = 79
	AddrPiecesCounter         uint16 = 80
	AddrMaxNetWeight          uint16 = 81
	AddrMinNetWeight          uint16 = 83
	AddrADCRaw24              uint16 = 91
	AddrADCFiltered24         uint16 = 93
	AddrManualAnalogOutput    uint16 = 95
)

// Logical register names. These are the keys the facade and the CLI use.
const (
	MachineID           = "machine_id"
	FirmwareVersion     = "firmware_version"
	MeasurementUnit     = "measurement_unit"
	UnipolarBipolar     = "unipolar_bipolar"
	AnalogOutputType    = "analog_output_type"
	DigitalInType       = "digital_in_type"
	CalibrationMode     = "calibration_mode"
	CellSenseRatio      = "cell_sense_ratio"
	CellFullScale       = "cell_full_scale"
	StandardWeight      = "standard_weight"
	ThresholdDO1        = "threshold_do1"
	OutputWeightStart   = "output_weight_start_scale"
	OutputWeightStop    = "output_weight_stop_scale"
	OutputStopScale     = "output_stop_scale"
	OutputStartScale    = "output_start_scale"
	DeltaWeight         = "delta_weight"
	DeltaTime           = "delta_time"
	DOutMode            = "dout_mode"
	ADCSpeedRegister    = "adc_speed"
	AutomaticTareReset  = "automatic_tare_reset"
	ThresholdHystDO1    = "threshold_hysteresis_do1"
	DenoiseVariation    = "denoise_filter_variation"
	DenoiseResponse     = "denoise_filter_response"
	DenoiseFilterValue  = "denoise_filter_value"
	ResolutionModeReg   = "resolution_mode"
	DenoiseFilterEnable = "denoise_filter_enable"
	ManualResolution    = "manual_resolution"
	OnePieceWeight      = "one_piece_weight"
	ThresholdDO2        = "threshold_do2"
	ThresholdHystDO2    = "threshold_hysteresis_do2"
	ADCFiltered16       = "adc_filtered_16bit"
	NetWeight           = "net_weight_value"
	GrossWeight         = "gross_weight_value"
	TareWeight          = "tare_weight_value"
	IntegerNetWeight    = "integer_net_weight_value"
	IntegerGrossWeight  = "integer_gross_weight_value"
	IntegerTareWeight   = "integer_tare_weight_value"
	FactoryManualTare   = "factory_manual_tare"
	Status              = "status"
	Password            = "password"
	CommandRegister     = "command_register"
	PiecesCounter       = "pieces_counter"
	MaxNetWeight        = "max_net_weight"
	MinNetWeight        = "min_net_weight"
	ADCRaw24            = "adc_raw_24bit"
	ADCFiltered24       = "adc_filtered_24bit"
	ManualAnalogOutput  = "manual_analog_output"
)
