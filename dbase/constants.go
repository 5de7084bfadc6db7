package dbase

// FileVersion is the signature byte at the start of a table file.
type FileVersion byte

const (
	FoxBase         FileVersion = 0x02
	FoxBasePlus     FileVersion = 0x03
	FoxPro          FileVersion = 0x30
	FoxProAutoinc   FileVersion = 0x31
	FoxProVar       FileVersion = 0x32
	DBaseSQLTable   FileVersion = 0x43
	FoxBasePlusMemo FileVersion = 0x83
	DBaseMemo       FileVersion = 0x8B
	DBaseSQLMemo    FileVersion = 0xCB
	FoxPro2Memo     FileVersion = 0xF5
	FoxBase2        FileVersion = 0xFB
)

var versionNames = map[FileVersion]string{
	FoxBase:         "FoxBASE",
	FoxBasePlus:     "FoxBASE+/dBASE III PLUS, no memo",
	FoxPro:          "Visual FoxPro",
	FoxProAutoinc:   "Visual FoxPro, autoincrement enabled",
	FoxProVar:       "Visual FoxPro, varchar/varbinary",
	DBaseSQLTable:   "dBASE IV SQL table, no memo",
	FoxBasePlusMemo: "FoxBASE+/dBASE III PLUS, with memo",
	DBaseMemo:       "dBASE IV with memo",
	DBaseSQLMemo:    "dBASE IV SQL table, with memo",
	FoxPro2Memo:     "FoxPro 2.x (or earlier) with memo",
	FoxBase2:        "FoxBASE",
}

// String returns the descriptive name of the file version.
func (v FileVersion) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return "unknown"
}

// Classic reports whether memo blocks of this version use the dBASE III
// layout: fixed 512 byte blocks terminated by EOFMarker.
func (v FileVersion) Classic() bool {
	return v == FoxBasePlusMemo
}

// DataType is the one character type tag of a column.
type DataType byte

const (
	Double    DataType = 'B'
	Character DataType = 'C'
	Date      DataType = 'D'
	Float     DataType = 'F'
	General   DataType = 'G'
	Integer   DataType = 'I'
	Logical   DataType = 'L'
	Memo      DataType = 'M'
	Numeric   DataType = 'N'
	DateTime  DataType = 'T'
	Currency  DataType = 'Y'
	// Skipped columns occupy record space but carry no data.
	Skipped DataType = '0'
)

// String returns the type tag as a string.
func (t DataType) String() string {
	return string(t)
}

// Supported reports whether the converter knows how to handle the type.
func (t DataType) Supported() bool {
	switch t {
	case Double, Character, Date, Float, General, Integer, Logical, Memo, Numeric, DateTime, Currency, Skipped:
		return true
	}
	return false
}

// Marker is a byte with a structural meaning inside table and memo files.
type Marker byte

const (
	Null      Marker = 0x00
	Blank     Marker = 0x20
	ColumnEnd Marker = 0x0D
	Active           = Blank
	Deleted   Marker = 0x2A
	EOFMarker Marker = 0x1A
)

const (
	// HeaderSize is the length of the fixed table header.
	HeaderSize = 32
	// ColumnSize is the length of one field descriptor.
	ColumnSize = 32
	// ContainerSize is the Visual FoxPro database container backlink following the descriptors.
	ContainerSize = 263
	// ClassicBlockSize is the memo block size of dBASE III memo files.
	ClassicBlockSize = 512
	// MemoHeaderSize is the minimum length of a FoxPro memo header.
	MemoHeaderSize = 8
	// BatchTarget is the approximate number of record bytes read at once.
	BatchTarget = 128 * 1024
)

// TableFlag is a bit of the table flags byte in the header.
type TableFlag byte

const (
	StructuralFlag TableFlag = 0x01
	MemoFlag       TableFlag = 0x02
	DatabaseFlag   TableFlag = 0x04
)

// Defined reports whether the flag is set in flags.
func (f TableFlag) Defined(flags byte) bool {
	return flags&byte(f) == byte(f)
}

// MemoNumbering is the encoding of the block number inside a memo column.
type MemoNumbering int

const (
	// NumericMemo stores the block number as 10 space padded ASCII digits.
	NumericMemo MemoNumbering = iota
	// PackedMemo stores the block number as a little-endian 32 bit integer.
	PackedMemo
)

func (m MemoNumbering) String() string {
	if m == PackedMemo {
		return "packed"
	}
	return "numeric"
}
