// Package fixture builds table and memo file images for tests.
package fixture

import (
	"encoding/binary"
	"math"
)

// Field describes one column of a fixture table.
type Field struct {
	Name     string
	Type     byte
	Length   uint8
	Decimals uint8
}

// Table is a table file image in the making.
type Table struct {
	Version         byte
	Fields          []Field
	Records         [][]byte
	ExtraTerminator bool    // Write the spare dBASE III terminator after the descriptors.
	Count           *uint32 // Declared record count, len(Records) if nil.
	HeaderLength    uint16  // Declared header length, computed if 0.
	Terminator      *byte   // Descriptor terminator, 0x0D if nil.
}

// Count returns a pointer to n for Table.Count.
func Count(n uint32) *uint32 {
	return &n
}

// Byte returns a pointer to b for Table.Terminator.
func Byte(b byte) *byte {
	return &b
}

// RecordLength is the length of one record including the deletion flag.
func (t Table) RecordLength() int {
	length := 1
	for _, f := range t.Fields {
		length += int(f.Length)
	}
	return length
}

// Length is the computed header length.
func (t Table) Length() int {
	length := 32 + 32*len(t.Fields) + 1
	if t.Version == 0x30 {
		length += 263
	}
	if t.ExtraTerminator {
		length++
	}
	return length
}

// Bytes returns the table image.
func (t Table) Bytes() []byte {
	b := make([]byte, 32, t.Length()+len(t.Records)*t.RecordLength()+1)
	b[0] = t.Version
	b[1], b[2], b[3] = 23, 4, 1
	count := uint32(len(t.Records))
	if t.Count != nil {
		count = *t.Count
	}
	binary.LittleEndian.PutUint32(b[4:], count)
	headerLength := uint16(t.Length())
	if t.HeaderLength != 0 {
		headerLength = t.HeaderLength
	}
	binary.LittleEndian.PutUint16(b[8:], headerLength)
	binary.LittleEndian.PutUint16(b[10:], uint16(t.RecordLength()))
	b[29] = 0x03
	position := uint32(1)
	for _, f := range t.Fields {
		d := make([]byte, 32)
		copy(d[:10], f.Name)
		d[11] = f.Type
		binary.LittleEndian.PutUint32(d[12:], position)
		d[16] = f.Length
		d[17] = f.Decimals
		b = append(b, d...)
		position += uint32(f.Length)
	}
	terminator := byte(0x0D)
	if t.Terminator != nil {
		terminator = *t.Terminator
	}
	b = append(b, terminator)
	if t.ExtraTerminator {
		b = append(b, 0x0D)
	}
	if t.Version == 0x30 {
		b = append(b, make([]byte, 263)...)
	}
	for _, r := range t.Records {
		b = append(b, r...)
	}
	return append(b, 0x1A)
}

// Record joins the deletion flag and the field values.
func Record(deleted bool, fields ...[]byte) []byte {
	r := []byte{' '}
	if deleted {
		r[0] = '*'
	}
	for _, f := range fields {
		r = append(r, f...)
	}
	return r
}

// Int32 is a little-endian 32 bit integer.
func Int32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

// Int64 is a little-endian 64 bit integer.
func Int64(v int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}

// Double is a little-endian IEEE-754 double.
func Double(v float64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return b
}

// Timestamp is a julian day number followed by the milliseconds since midnight.
func Timestamp(days, millis int32) []byte {
	return append(Int32(days), Int32(millis)...)
}

// ClassicMemo returns a dBASE III memo image with 512 byte blocks.
// Every block content is written at its block followed by 0x1A.
func ClassicMemo(blocks map[uint32][]byte) []byte {
	return memo(512, blocks, func(content []byte) []byte {
		return append(append([]byte{}, content...), 0x1A)
	})
}

// FoxProMemo returns a FoxPro memo image. Every block starts with the
// big-endian type and length followed by the content.
func FoxProMemo(blockSize uint16, blocks map[uint32][]byte) []byte {
	m := memo(int(blockSize), blocks, func(content []byte) []byte {
		b := make([]byte, 8, 8+len(content))
		binary.BigEndian.PutUint32(b[0:], 1)
		binary.BigEndian.PutUint32(b[4:], uint32(len(content)))
		return append(b, content...)
	})
	binary.BigEndian.PutUint16(m[6:], blockSize)
	return m
}

func memo(blockSize int, blocks map[uint32][]byte, frame func([]byte) []byte) []byte {
	size := blockSize
	for block, content := range blocks {
		end := int(block)*blockSize + len(frame(content))
		if end > size {
			size = end
		}
	}
	if size < 8 {
		size = 8
	}
	m := make([]byte, size)
	next := uint32(size/blockSize + 1)
	binary.BigEndian.PutUint32(m[0:], next)
	for block, content := range blocks {
		copy(m[int(block)*blockSize:], frame(content))
	}
	return m
}
