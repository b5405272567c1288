package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftLeft(t *testing.T) {
	assert.Equal(t, uint32(2), ShiftLeft(uint32(1), 1))
	assert.Equal(t, uint32(0xFFF00000), ShiftLeft(uint32(0xFFFF0000), 4))
	assert.Equal(t, uint8(0b00001100), ShiftLeft(uint8(0b10000011), 2))
	assert.Equal(t, uint64(0xFFFF000000000000), ShiftLeft(uint64(0xFFFF), 48))
	assert.Equal(t, int16(-2), ShiftLeft(int16(-1), 1))
	assert.Equal(t, int8(-128), ShiftLeft(int8(1), 7))
}

func TestShiftRight(t *testing.T) {
	assert.Equal(t, uint32(0x0000FFFF), ShiftRight(uint32(0x000FFFF0), 4))
	assert.Equal(t, uint32(0x0FFFF000), ShiftRight(uint32(0xFFFF0000), 4))
	assert.Equal(t, uint8(0b00100000), ShiftRight(uint8(0b10000011), 2))
	assert.Equal(t, uint64(1), ShiftRight(uint64(0x8000000000000000), 63))
}

func TestShiftRightZeroFillsSigned(t *testing.T) {
	assert.Equal(t, int8(0x7F), ShiftRight(int8(-1), 1))
	assert.Equal(t, int16(0x0FFF), ShiftRight(int16(-1), 4))
	assert.Equal(t, int32(0x7FFF8000), ShiftRight(int32(-0x10000), 1))
	assert.Equal(t, int64(1), ShiftRight(int64(-0x8000000000000000), 63))
	assert.Equal(t, int(0), ShiftRight(int(-1), 64))

	for k := uint(0); k < 32; k++ {
		got := uint32(ShiftRight(int32(-1), k))
		assert.Zero(t, ShiftRightMasked(got, 32-k, ^uint32(0)), "top %d bits must be zero", k)
	}
}

func TestShiftMasked(t *testing.T) {
	assert.Equal(t, uint64(0xFFF00000), ShiftLeftMasked(uint64(0xFFFF0000), 4, 0xFFFFFFFF))
	assert.Equal(t, uint32(0x00000FFF), ShiftRightMasked(uint32(0xFFFFFFFF), 4, 0x0000FFFF))
	assert.Equal(t, int32(0x00007FFF), ShiftRightMasked(int32(-1), 1, 0x0000FFFF))
}

func TestShiftOutOfWidth(t *testing.T) {
	assert.Zero(t, ShiftLeft(uint8(0xFF), 8))
	assert.Zero(t, ShiftRight(uint8(0xFF), 8))
	assert.Zero(t, ShiftLeft(int16(-1), 16))
	assert.Zero(t, ShiftRight(int16(-1), 16))
	assert.Zero(t, ShiftLeft(uint32(0xFFFFFFFF), 40))
	assert.Zero(t, ShiftRight(int32(-1), 32))
	assert.Zero(t, ShiftLeft(uint64(1), 64))
	assert.Zero(t, ShiftRight(int64(-1), 100))
}

func TestShiftComposes(t *testing.T) {
	v := uint32(0x89ABCDEF)
	for a := uint(0); a < 32; a++ {
		for b := uint(0); a+b < 32; b++ {
			assert.Equal(t, ShiftLeft(v, a+b), ShiftLeft(ShiftLeft(v, a), b))
			assert.Equal(t, ShiftRight(v, a+b), ShiftRight(ShiftRight(v, a), b))
		}
	}
}
