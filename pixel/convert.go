package pixel

import (
	"fmt"
	"math"
	"math/bits"
)

// Element is the set of sample types a Raw buffer can hold.
type Element interface {
	~uint8 | ~uint16 | ~uint32
}

// Bits returns the width of T in bits.
func Bits[T Element]() int {
	return bits.Len32(uint32(Max[T]()))
}

// Max returns the largest value representable by T.
func Max[T Element]() T {
	return ^T(0)
}

// Convert narrows v into T. It fails with ErrConversionOverflow if v does not fit.
func Convert[T Element](v uint32) (T, error) {
	t := T(v)
	if uint32(t) != v {
		return 0, fmt.Errorf("%w: %d exceeds %d-bit sample", ErrConversionOverflow, v, Bits[T]())
	}
	return t, nil
}

// ToWire converts a sample to the 16-bit value used by the raw file format.
func ToWire[T Element](v T) (uint16, error) {
	if uint32(v) > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %d exceeds 16-bit wire value", ErrConversionOverflow, uint32(v))
	}
	return uint16(v), nil
}

// FromWire converts a 16-bit wire value to T.
func FromWire[T Element](v uint16) (T, error) {
	return Convert[T](uint32(v))
}

// scale16 maps v from the full range of T to the 16-bit range.
func scale16[T Element](v T) uint16 {
	return uint16(uint64(v) * math.MaxUint16 / uint64(Max[T]()))
}

// unscale16 is the inverse of scale16.
func unscale16[T Element](v uint16) T {
	return T(uint64(v) * uint64(Max[T]()) / math.MaxUint16)
}
