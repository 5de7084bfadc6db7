package dbase

import (
	"encoding/binary"
	"math"
)

var (
	// TableOrder is the byte order of integers in table files and memo block references.
	TableOrder binary.ByteOrder = binary.LittleEndian
	// MemoOrder is the byte order of integers in FoxPro memo file headers.
	MemoOrder binary.ByteOrder = binary.BigEndian
)

// The readers below interpret raw[offset:] in the given byte order, independent of the
// host. The caller guarantees enough bytes; a short slice panics like any out of range access.

func ReadInt16(raw []byte, offset int, order binary.ByteOrder) int16 {
	return int16(order.Uint16(raw[offset : offset+2]))
}

func ReadInt32(raw []byte, offset int, order binary.ByteOrder) int32 {
	return int32(order.Uint32(raw[offset : offset+4]))
}

func ReadInt64(raw []byte, offset int, order binary.ByteOrder) int64 {
	return int64(order.Uint64(raw[offset : offset+8]))
}

// ReadDouble reads an IEEE-754 double.
func ReadDouble(raw []byte, offset int, order binary.ByteOrder) float64 {
	return math.Float64frombits(order.Uint64(raw[offset : offset+8]))
}
