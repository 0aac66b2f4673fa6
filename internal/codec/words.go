// internal/codec/words.go
package codec

import "math"

// Word-pair codecs for 32-bit values split across two consecutive holding
// registers, most-significant word first. All functions are pure.

// EncodeFloat32 splits the IEEE-754 bit pattern of v into MSW and LSW.
func EncodeFloat32(v float32) (msw, lsw uint16) {
	bits := math.Float32bits(v)
	return uint16(bits >> 16), uint16(bits & 0xFFFF)
}

// DecodeFloat32 reassembles a float32 from its MSW/LSW bit pattern.
func DecodeFloat32(msw, lsw uint16) float32 {
	return math.Float32frombits(uint32(msw)<<16 | uint32(lsw))
}

// EncodeSigned32 splits a two's-complement int32 into MSW and LSW.
func EncodeSigned32(v int32) (msw, lsw uint16) {
	u := uint32(v)
	return uint16(u >> 16), uint16(u & 0xFFFF)
}

// DecodeSigned32 reassembles an int32. Combined values >= 2^31 are the
// negative half of the two's-complement range.
func DecodeSigned32(msw, lsw uint16) int32 {
	return int32(uint32(msw)<<16 | uint32(lsw))
}

// EncodeUnsigned32 splits an unsigned 32-bit value into MSW and LSW.
func EncodeUnsigned32(v uint32) (msw, lsw uint16) {
	return uint16(v >> 16), uint16(v & 0xFFFF)
}

// DecodeUnsigned32 reassembles an unsigned 32-bit value. No sign correction.
func DecodeUnsigned32(msw, lsw uint16) uint32 {
	return uint32(msw)<<16 | uint32(lsw)
}
