package dbase

import (
	"bytes"
	"io"

	"github.com/samber/lo"
)

// Column is a struct containing the column information
type Column struct {
	FieldName [11]byte // Column name with a maximum of 10 characters. If less than 10, it is padded with null characters (0x00).
	DataType  byte     // Column type
	Position  uint32   // Displacement of column in row
	Length    uint8    // Length of column (in bytes)
	Decimals  uint8    // Number of decimal places
	Flag      byte     // Column flag
	Reserved  [13]byte // Reserved
}

// Returns the name of the column as a trimmed string (max length 10)
func (c *Column) Name() string {
	name := c.FieldName[:]
	if i := bytes.IndexByte(name, byte(Null)); i >= 0 {
		name = name[:i]
	}
	return string(name)
}

// Returns the type of the column as string (length 1)
func (c *Column) Type() string {
	return string(c.DataType)
}

// Skipped reports whether the column is a placeholder without data.
func (c *Column) Skipped() bool {
	return DataType(c.DataType) == Skipped
}

// ReadColumns reads the field descriptor array following the header and validates
// the layout up to the first record. The returned columns include skipped columns,
// the returned offset is the position of the first record.
func ReadColumns(r io.ReadSeeker, header *Header) ([]*Column, int64, error) {
	debugf("Reading columns...")
	skip := header.ContainerSkip()
	size := int(header.FirstRow) - HeaderSize - skip - 1
	if size < 0 {
		return nil, 0, newErrorf("dbase-column-read-1", ErrFormat, "header length %d is too small for the field descriptor array", header.FirstRow)
	}
	switch size % ColumnSize {
	case 0:
	case 1:
		// Some dBASE III files include an extra terminator byte after the descriptor array.
		debugf("Found extra terminator byte after the field descriptor array")
		skip++
		size--
	default:
		return nil, 0, newErrorf("dbase-column-read-2", ErrFormat, "the field array size %d is not an even multiple of the field descriptor size %d", size, ColumnSize)
	}
	if _, err := r.Seek(HeaderSize, io.SeekStart); err != nil {
		return nil, 0, newErrorf("dbase-column-read-3", ErrResource, "seeking to the field descriptors failed with error: %v", err)
	}
	buf := make([]byte, size+1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, 0, newErrorf("dbase-column-read-4", ErrFormat, "unable to read all of the field descriptions: %v", err)
	}
	if terminator := buf[size]; Marker(terminator) != ColumnEnd {
		return nil, 0, newErrorf("dbase-column-read-5", ErrFormat, "invalid terminator byte 0x%02x", terminator)
	}
	offset, err := r.Seek(int64(skip), io.SeekCurrent)
	if err != nil {
		return nil, 0, newErrorf("dbase-column-read-6", ErrResource, "seeking over the database container failed with error: %v", err)
	}
	if offset != int64(header.FirstRow) {
		return nil, 0, newErrorf("dbase-column-read-7", ErrFormat, "at an unexpected offset %d, expected %d", offset, header.FirstRow)
	}
	columns := make([]*Column, 0, size/ColumnSize)
	for pos := 0; pos < size; pos += ColumnSize {
		columns = append(columns, parseColumn(buf[pos:pos+ColumnSize]))
	}
	debugf("Found %d columns, first record at %d", len(columns), offset)
	return columns, offset, nil
}

func parseColumn(b []byte) *Column {
	c := &Column{
		DataType: b[11],
		Position: uint32(ReadInt32(b, 12, TableOrder)),
		Length:   b[16],
		Decimals: b[17],
		Flag:     b[18],
	}
	copy(c.FieldName[:], b[:11])
	copy(c.Reserved[:], b[19:32])
	return c
}

// DataColumns returns the columns that carry data, dropping skipped columns.
func DataColumns(columns []*Column) []*Column {
	return lo.Filter(columns, func(c *Column, _ int) bool {
		return !c.Skipped()
	})
}

// HasMemo reports whether any column references the memo file.
func HasMemo(columns []*Column) bool {
	return lo.ContainsBy(columns, func(c *Column) bool {
		return DataType(c.DataType) == Memo
	})
}
