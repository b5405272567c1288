package bitutil_test

import (
	"fmt"

	"github.com/moolekkari/bitutil"
)

func ExampleRotateLeft() {
	fmt.Printf("%#x\n", bitutil.RotateLeft(uint32(0x0000FFFF), 16))
	fmt.Printf("%08b\n", bitutil.RotateLeft(uint8(0b10000011), 2))
	// Output:
	// 0xffff0000
	// 00001110
}

func ExampleRotateLeftMasked() {
	// A 32-bit word held in a uint64.
	fmt.Printf("%#x\n", bitutil.RotateLeftMasked(uint64(0x0c0d0e0f), 8, 32, 0xffffffff))
	// Output: 0xd0e0f0c
}

func ExampleShiftRight() {
	fmt.Println(bitutil.ShiftRight(int8(-1), 1))
	// Output: 127
}

func ExampleFindMSb() {
	fmt.Println(bitutil.FindMSb(uint32(0x80000000)), bitutil.FindMSb(int32(-129)), bitutil.FindMSb(int32(-1)))
	// Output: 31 7 0
}
