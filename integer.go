package bitutil

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of integer types the bit operations accept.
type Integer interface {
	constraints.Integer
}

// NetworkInteger is the set of unsigned widths with a network byte order.
type NetworkInteger interface {
	~uint16 | ~uint32 | ~uint64
}

// storageBits returns the storage width of T in bits.
func storageBits[T Integer]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

// unsignedView returns the storage bits of `v` zero extended to 64 bits.
func unsignedView[T Integer](v T) uint64 {
	return uint64(v) & (^uint64(0) >> (64 - storageBits[T]()))
}
