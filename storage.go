package strbuf

import (
	"encoding/binary"
	"math/bits"
)

// Storage is the set of byte array types a [Buffer] can be backed by.
//
// The array length is the total size of the buffer. A few leading bytes of it hold the length
// marker, see [Capacity].
type Storage interface {
	~[0]byte | ~[1]byte | ~[2]byte | ~[3]byte | ~[4]byte | ~[5]byte |
		~[6]byte | ~[7]byte | ~[8]byte | ~[9]byte | ~[10]byte | ~[11]byte |
		~[12]byte | ~[13]byte | ~[14]byte | ~[15]byte | ~[16]byte | ~[17]byte |
		~[18]byte | ~[19]byte | ~[20]byte | ~[21]byte | ~[22]byte | ~[23]byte |
		~[24]byte | ~[25]byte | ~[26]byte | ~[27]byte | ~[28]byte | ~[29]byte |
		~[30]byte | ~[31]byte | ~[32]byte | ~[33]byte | ~[34]byte | ~[35]byte |
		~[36]byte | ~[37]byte | ~[38]byte | ~[39]byte | ~[40]byte | ~[41]byte |
		~[42]byte | ~[43]byte | ~[44]byte | ~[45]byte | ~[46]byte | ~[47]byte |
		~[48]byte | ~[49]byte | ~[50]byte | ~[51]byte | ~[52]byte | ~[53]byte |
		~[54]byte | ~[55]byte | ~[56]byte | ~[57]byte | ~[58]byte | ~[59]byte |
		~[60]byte | ~[61]byte | ~[62]byte | ~[63]byte | ~[64]byte | ~[96]byte |
		~[128]byte | ~[192]byte | ~[256]byte | ~[257]byte | ~[384]byte | ~[512]byte |
		~[768]byte | ~[1024]byte | ~[2048]byte | ~[4096]byte | ~[8192]byte | ~[16384]byte |
		~[32768]byte | ~[65536]byte | ~[65537]byte | ~[65538]byte | ~[131072]byte
}

const wordSize = bits.UintSize / 8

// markerWidth returns the number of leading storage bytes that hold the length marker.
func markerWidth(size int) int {
	switch {
	case size == 0:
		return 0
	case size <= 1<<8:
		return 1
	case size <= 1<<16+1:
		return 2
	default:
		return wordSize
	}
}

// Capacity returns the maximum number of content bytes a Buffer[S] can hold.
func Capacity[S Storage]() int {
	var s S
	size := len(s)
	return size - markerWidth(size)
}

func loadLen(raw []byte) int {
	switch markerWidth(len(raw)) {
	case 0:
		return 0
	case 1:
		return int(raw[0])
	case 2:
		return int(binary.LittleEndian.Uint16(raw))
	default:
		if wordSize == 4 {
			return int(binary.LittleEndian.Uint32(raw))
		}
		return int(binary.LittleEndian.Uint64(raw))
	}
}

func storeLen(raw []byte, n int) {
	switch markerWidth(len(raw)) {
	case 0:
	case 1:
		raw[0] = byte(n)
	case 2:
		binary.LittleEndian.PutUint16(raw, uint16(n))
	default:
		if wordSize == 4 {
			binary.LittleEndian.PutUint32(raw, uint32(n))
		} else {
			binary.LittleEndian.PutUint64(raw, uint64(n))
		}
	}
}
