// internal/regmap/encoding.go
package regmap

// Encoding is how a logical value is laid out across holding registers.
type Encoding uint8

const (
	// UInt16 is one word, unsigned 0-65535.
	UInt16 Encoding = iota

	// Signed32 is two consecutive words, MSW first, two's complement.
	Signed32

	// Float32 is two consecutive words holding the big-endian IEEE-754
	// single-precision bit pattern, MSW first.
	Float32

	// UInt32 is two consecutive words, MSW first, no sign correction.
	UInt32

	// BitField is one word subdivided into named sub-parameters.
	BitField

	// Enum is one word whose legal written values are a closed set.
	Enum

	// Command is an Enum whose legal values are fixed command codes.
	Command
)

// Words is how many consecutive registers the encoding occupies.
func (e Encoding) Words() uint16 {
	switch e {
	case Signed32, Float32, UInt32:
		return 2
	default:
		return 1
	}
}

func (e Encoding) String() string {
	switch e {
	case UInt16:
		return "uint16"
	case Signed32:
		return "int32"
	case Float32:
		return "float32"
	case UInt32:
		return "uint32"
	case BitField:
		return "bitfield"
	case Enum:
		return "enum"
	case Command:
		return "command"
	default:
		return "unknown"
	}
}
