package bitutil

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/moolekkari/bitutil/internal/endian"
)

// EndianClassification is the value the byte sequence 0x00, 0x01, 0x02, 0x03
// reads back as when stored in adjacent bytes of a uint32. Hosts with an
// ordering outside the named ones report the observed value verbatim.
type EndianClassification uint32

const (
	// BigEndian stores the most significant byte first.
	BigEndian = EndianClassification(endian.Big)
	// PDPEndian stores 16-bit halves big end first with bytes swapped inside each half.
	PDPEndian = EndianClassification(endian.PDP)
	// HoneywellEndian stores 16-bit halves little end first, bytes big end first.
	HoneywellEndian = EndianClassification(endian.Honeywell)
	// LittleEndian stores the least significant byte first.
	LittleEndian = EndianClassification(endian.Little)
)

// String implements Stringer interface.
func (e EndianClassification) String() string {
	switch e {
	case BigEndian:
		return "BigEndian"
	case PDPEndian:
		return "PDPEndian"
	case HoneywellEndian:
		return "HoneywellEndian"
	case LittleEndian:
		return "LittleEndian"
	}
	return fmt.Sprintf("Unknown(0x%08x)", uint32(e))
}

// GetMachineEndian returns the byte order classification of the host. The
// value is observed once and cached for the life of the process.
func GetMachineEndian() EndianClassification {
	return EndianClassification(endian.Observed())
}

// IsLittleEndian reports whether the host is little endian.
func IsLittleEndian() bool {
	return GetMachineEndian() == LittleEndian
}

// IsBigEndian reports whether the host is big endian.
func IsBigEndian() bool {
	return GetMachineEndian() == BigEndian
}

// IsLittleOrBigEndian reports whether the host is either little or big endian,
// the only orderings NetworkByteOrder supports.
func IsLittleOrBigEndian() bool {
	e := GetMachineEndian()
	return e == LittleEndian || e == BigEndian
}

// NativeOrder returns the host byte order as an encoding/binary codec.
func NativeOrder() binary.ByteOrder {
	return endian.Order()
}

// NetworkByteOrder16 converts `v` between host and network (big endian) byte
// order. It is its own inverse.
func NetworkByteOrder16(v uint16) uint16 {
	if endian.IsBig {
		return v
	}
	return bits.ReverseBytes16(v)
}

// NetworkByteOrder32 converts `v` between host and network (big endian) byte
// order. It is its own inverse.
func NetworkByteOrder32(v uint32) uint32 {
	if endian.IsBig {
		return v
	}
	return bits.ReverseBytes32(v)
}

// NetworkByteOrder64 converts `v` between host and network (big endian) byte
// order. It is its own inverse.
func NetworkByteOrder64(v uint64) uint64 {
	if endian.IsBig {
		return v
	}
	return bits.ReverseBytes64(v)
}

// NetworkByteOrder converts `v` between host and network byte order,
// dispatching on the width of T.
func NetworkByteOrder[T NetworkInteger](v T) T {
	switch unsafe.Sizeof(v) {
	case 2:
		return T(NetworkByteOrder16(uint16(v)))
	case 4:
		return T(NetworkByteOrder32(uint32(v)))
	}
	return T(NetworkByteOrder64(uint64(v)))
}
