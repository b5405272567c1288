package bitutil

import "unsafe"

// FindMSb returns the zero based position of the most significant bit of `v`
// that differs from its sign. For unsigned values and non-negative signed
// values that is the highest set bit; negative values are complemented first.
// So FindMSb(-1), FindMSb(0) and FindMSb(1) are all 0, and an N-bit signed
// value never reports more than N-2.
//
// The result for 0 equals the result for 1; callers check for zero when the
// distinction matters.
func FindMSb[T Integer](v T) int {
	if v < 0 {
		v = ^v
	}
	switch unsafe.Sizeof(v) {
	case 1:
		return FindMSb8(uint8(v))
	case 2:
		return FindMSb16(uint16(v))
	case 4:
		return FindMSb32(uint32(v))
	}
	return FindMSb64(uint64(v))
}

// FindMSb8 returns the position of the highest set bit of `v`, 0 for v == 0.
func FindMSb8(v uint8) int {
	p := 0
	if v >= 1<<4 {
		p += 4
		v >>= 4
	}
	if v >= 1<<2 {
		p += 2
		v >>= 2
	}
	if v >= 1<<1 {
		p++
	}
	return p
}

// FindMSb16 returns the position of the highest set bit of `v`, 0 for v == 0.
func FindMSb16(v uint16) int {
	p := 0
	if v >= 1<<8 {
		p += 8
		v >>= 8
	}
	return p + FindMSb8(uint8(v))
}

// FindMSb32 returns the position of the highest set bit of `v`, 0 for v == 0.
func FindMSb32(v uint32) int {
	p := 0
	if v >= 1<<16 {
		p += 16
		v >>= 16
	}
	return p + FindMSb16(uint16(v))
}

// FindMSb64 returns the position of the highest set bit of `v`, 0 for v == 0.
func FindMSb64(v uint64) int {
	p := 0
	if v >= 1<<32 {
		p += 32
		v >>= 32
	}
	return p + FindMSb32(uint32(v))
}
