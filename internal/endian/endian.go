package endian

import (
	"encoding/binary"
	"sync"
	"unsafe"

	"github.com/josharian/native"

	"github.com/moolekkari/bitutil/common"
)

// Classification tags: the uint32 value that the byte sequence 0, 1, 2, 3
// reads back as on a host with the given byte order.
const (
	Big       uint32 = 0x00010203
	PDP       uint32 = 0x01000302
	Honeywell uint32 = 0x02030001
	Little    uint32 = 0x03020100
)

// A uint32 must hold exactly the four observed octets.
var _ = [1]struct{}{}[unsafe.Sizeof(uint32(0))-4]

// IsBig reports whether the host stores integers most significant byte first.
// Ports josharian/native does not recognise only expose a variable there and
// fail to build here.
const IsBig = native.IsBigEndian

var observed = sync.OnceValue(func() uint32 {
	var tag uint32
	octets := (*[4]byte)(unsafe.Pointer(&tag))
	octets[0], octets[1], octets[2], octets[3] = 0, 1, 2, 3

	common.Log.Debug("Host byte order tag: 0x%08x", tag)
	if tag != Big && tag != Little {
		common.Log.Warning("Unsupported host byte order (tag 0x%08x), network byte order conversion is unreliable", tag)
	}
	return tag
})

// Observed returns the cached classification tag of the host.
func Observed() uint32 {
	return observed()
}

// Order returns the host byte order as an encoding/binary codec.
func Order() binary.ByteOrder {
	return native.Endian
}
