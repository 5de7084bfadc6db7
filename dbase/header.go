package dbase

import (
	"io"
	"time"
)

// Containing DBF header information like dBase FileType, last change and rows count.
// https://docs.microsoft.com/en-us/previous-versions/visualstudio/foxpro/st4a0s68(v=vs.80)#table-header-record-structure
type Header struct {
	FileType   byte     // File type flag
	Year       uint8    // Last update year (0-99)
	Month      uint8    // Last update month
	Day        uint8    // Last update day
	RowsCount  uint32   // Number of rows in file
	FirstRow   uint16   // Position of first data row
	RowLength  uint16   // Length of one data row, including delete flag
	Reserved   [16]byte // Reserved
	TableFlags byte     // Table flags
	CodePage   byte     // Code page mark
	Reserved2  [2]byte  // Reserved
}

// The raw header of the Memo file.
type MemoHeader struct {
	NextFree  uint32  // Location of next free block
	Unused    [2]byte // Unused
	BlockSize uint16  // Block size (bytes per block)
}

// ReadHeader reads the fixed size table header from r.
func ReadHeader(r io.Reader) (*Header, error) {
	debugf("Reading header...")
	b := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, b)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, newErrorf("dbase-header-read-1", ErrFormat, "unable to read the entire header: got %d of %d bytes", n, HeaderSize)
		}
		return nil, newErrorf("dbase-header-read-2", ErrResource, "reading header failed with error: %v", err)
	}
	return parseHeader(b), nil
}

func parseHeader(b []byte) *Header {
	// LittleEndian - Integers in table files are stored with the least significant byte first.
	h := &Header{
		FileType:   b[0],
		Year:       b[1],
		Month:      b[2],
		Day:        b[3],
		RowsCount:  uint32(ReadInt32(b, 4, TableOrder)),
		FirstRow:   uint16(ReadInt16(b, 8, TableOrder)),
		RowLength:  uint16(ReadInt16(b, 10, TableOrder)),
		TableFlags: b[28],
		CodePage:   b[29],
	}
	copy(h.Reserved[:], b[12:28])
	copy(h.Reserved2[:], b[30:32])
	debugf("Header: type 0x%02x, %d rows, first row %d, row length %d", h.FileType, h.RowsCount, h.FirstRow, h.RowLength)
	return h
}

// Version returns the file type as FileVersion.
func (h *Header) Version() FileVersion {
	return FileVersion(h.FileType)
}

// Parses the year, month and day to time.Time.
// The year is stored in decades (2 digits) and added to the base century (2000).
// Note: we assume the year is between 2000 and 2099 as default.
func (h *Header) Modified(base int) time.Time {
	if base == 0 {
		base = 2000
	}
	return time.Date(base+int(h.Year), time.Month(h.Month), int(h.Day), 0, 0, 0, 0, time.UTC)
}

// Returns the amount of records in the table
func (h *Header) RecordsCount() uint32 {
	return h.RowsCount
}

// ContainerSkip returns the number of bytes between the descriptor terminator and the first record.
func (h *Header) ContainerSkip() int {
	if h.Version() == FoxPro {
		return ContainerSize
	}
	return 0
}

// Returns the calculated file size based on the header info
func (h *Header) FileSize() int64 {
	return int64(h.FirstRow) + int64(h.RowsCount)*int64(h.RowLength)
}

// CodePageName returns the name of the character set named by the code page mark.
func (h *Header) CodePageName() string {
	cm := CodePage(h.CodePage)
	if cm == nil {
		return "unknown"
	}
	return cm.String()
}
