package dbase

import (
	"bytes"
	"fmt"
)

// ColumnState is derived once per column before the records are decoded.
type ColumnState struct {
	Format    string        // Output pattern of B columns
	Numbering MemoNumbering // Block number encoding of M columns
}

// PrepareColumn validates the column type and computes its output state.
func PrepareColumn(column *Column) (ColumnState, error) {
	state := ColumnState{}
	if !DataType(column.DataType).Supported() {
		return state, newErrorf("dbase-interpreter-preparecolumn-1", ErrFormat, "unhandled field type: %c at column field: %v", column.DataType, column.Name())
	}
	switch DataType(column.DataType) {
	case Double:
		state.Format = fmt.Sprintf("%%.%df", column.Decimals)
	case Memo:
		// Old versions of FoxPro store the block number in human readable ASCII,
		// newer versions store it as a packed 32 bit integer.
		switch column.Length {
		case 4:
			state.Numbering = PackedMemo
		case 10:
			state.Numbering = NumericMemo
		default:
			return state, newErrorf("dbase-interpreter-preparecolumn-2", ErrFormat, "unknown memo numbering of length %d at column field: %v", column.Length, column.Name())
		}
	}
	return state, nil
}

// Interpreter converts raw column data to values.
type Interpreter struct {
	memo  *MemoFile
	funcs map[DataType]func([]byte, *Column, ColumnState) (Value, error)
}

// NewInterpreter returns an interpreter resolving memo columns against memo.
// memo may be nil for tables without memo columns.
func NewInterpreter(memo *MemoFile) *Interpreter {
	in := &Interpreter{memo: memo}
	in.funcs = map[DataType]func([]byte, *Column, ColumnState) (Value, error){
		// B values are little-endian doubles
		Double: in.parseDouble,
		// C values are stored as strings, the returned bytes are not trimmed
		Character: in.parseCharacter,
		// D values are stored as string in format YYYYMMDD
		Date: in.parseDate,
		// F and N values are stored as right aligned ASCII text
		Float:   in.parseNumeric,
		Numeric: in.parseNumeric,
		// G values are OLE objects and are not converted
		General: in.parseGeneral,
		// I values are stored as numeric values
		Integer: in.parseInteger,
		// L values are stored as strings T/Y or anything else
		Logical: in.parseLogical,
		// M values contain the block number in the memo file from where to read data
		Memo: in.parseMemo,
		// T values are stored as two 4 byte integers
		//  integer one is the date in julian format
		//  integer two is the number of milliseconds since midnight
		DateTime: in.parseDateTime,
		// Y values are currency values stored as ints with 4 decimal places
		Currency: in.parseCurrency,
	}
	return in
}

// Interpret converts the raw bytes of one field to a value.
// Skipped columns are never interpreted.
func (in *Interpreter) Interpret(raw []byte, column *Column, state ColumnState) (Value, error) {
	if len(raw) != int(column.Length) {
		return nil, newErrorf("dbase-interpreter-interpret-1", ErrFormat, "invalid length %v Bytes != %v Bytes at column field: %v", len(raw), column.Length, column.Name())
	}
	f, ok := in.funcs[DataType(column.DataType)]
	if !ok {
		return nil, newErrorf("dbase-interpreter-interpret-2", ErrFormat, "unhandled field type: %c at column field: %v", column.DataType, column.Name())
	}
	return f(raw, column, state)
}

func minLength(raw []byte, n int, column *Column) error {
	if len(raw) < n {
		return newErrorf("dbase-interpreter-minlength-1", ErrFormat, "column field: %v of type %c needs %d bytes, has %d", column.Name(), column.DataType, n, len(raw))
	}
	return nil
}

func (in *Interpreter) parseDouble(raw []byte, column *Column, state ColumnState) (Value, error) {
	if err := minLength(raw, 8, column); err != nil {
		return nil, err
	}
	format := state.Format
	if format == "" {
		format = fmt.Sprintf("%%.%df", column.Decimals)
	}
	return DoubleValue{Value: ReadDouble(raw, 0, TableOrder), Format: format}, nil
}

func (in *Interpreter) parseCharacter(raw []byte, _ *Column, _ ColumnState) (Value, error) {
	return TextValue(raw), nil
}

func (in *Interpreter) parseDate(raw []byte, column *Column, _ ColumnState) (Value, error) {
	if len(raw) == 0 || Marker(raw[0]) == Blank || Marker(raw[0]) == Null {
		return NullValue{}, nil
	}
	if err := minLength(raw, 8, column); err != nil {
		return nil, err
	}
	for _, b := range raw[:8] {
		if b < '0' || b > '9' {
			debugf("Invalid date %q at column field: %v, writing NULL", raw[:8], column.Name())
			return NullValue{}, nil
		}
	}
	return DateValue(fmt.Sprintf("%s-%s-%s", raw[0:4], raw[4:6], raw[6:8])), nil
}

func (in *Interpreter) parseNumeric(raw []byte, column *Column, _ ColumnState) (Value, error) {
	if i := bytes.IndexByte(raw, byte(Null)); i >= 0 {
		raw = raw[:i]
	}
	trimmed := bytes.TrimLeft(raw, " ")
	if len(trimmed) == 0 {
		return NullValue{}, nil
	}
	for _, b := range trimmed {
		switch {
		case b >= '0' && b <= '9':
		case b == '-', b == '+', b == '.', b == 'e', b == 'E', b == ' ':
		default:
			// dBASE fills fields with '*' when the value overflows the width.
			debugf("Invalid numeric value %q at column field: %v, writing NULL", trimmed, column.Name())
			return NullValue{}, nil
		}
	}
	return NumberValue(trimmed), nil
}

func (in *Interpreter) parseGeneral(_ []byte, _ *Column, _ ColumnState) (Value, error) {
	// OLE objects are left out until there is a good way to represent them.
	return BlankValue{}, nil
}

func (in *Interpreter) parseInteger(raw []byte, column *Column, _ ColumnState) (Value, error) {
	if err := minLength(raw, 4, column); err != nil {
		return nil, err
	}
	return IntegerValue(ReadInt32(raw, 0, TableOrder)), nil
}

func (in *Interpreter) parseLogical(raw []byte, column *Column, _ ColumnState) (Value, error) {
	if err := minLength(raw, 1, column); err != nil {
		return nil, err
	}
	return LogicalValue(raw[0] == 'Y' || raw[0] == 'T'), nil
}

func (in *Interpreter) parseMemo(raw []byte, column *Column, state ColumnState) (Value, error) {
	block, ok, err := memoBlock(raw, column, state.Numbering)
	if err != nil {
		return nil, err
	}
	if !ok {
		debugf("Invalid memo block number %q at column field: %v, writing NULL", raw, column.Name())
		return NullValue{}, nil
	}
	if block == 0 {
		return BlankValue{}, nil
	}
	if in.memo == nil {
		return nil, newErrorf("dbase-interpreter-parsememo-1", ErrConfiguration, "column field: %v references memo block %d but no memo file is open", column.Name(), block)
	}
	memo, err := in.memo.Read(block)
	if err != nil {
		return nil, newError("dbase-interpreter-parsememo-2", err)
	}
	return TextValue(memo), nil
}

// memoBlock decodes the block number of a memo field. ok is false if the
// ASCII numbering holds anything but digits and blanks or exceeds 32 bits.
func memoBlock(raw []byte, column *Column, numbering MemoNumbering) (block uint32, ok bool, err error) {
	if numbering == PackedMemo {
		if err := minLength(raw, 4, column); err != nil {
			return 0, false, err
		}
		return uint32(ReadInt32(raw, 0, TableOrder)), true, nil
	}
	if err := minLength(raw, 10, column); err != nil {
		return 0, false, err
	}
	number := uint64(0)
	for _, b := range raw[:10] {
		if Marker(b) == Blank {
			continue
		}
		if b < '0' || b > '9' {
			return 0, false, nil
		}
		number = number*10 + uint64(b-'0')
	}
	if number > 0xFFFFFFFF {
		return 0, false, nil
	}
	return uint32(number), true, nil
}

func (in *Interpreter) parseDateTime(raw []byte, column *Column, _ ColumnState) (Value, error) {
	if err := minLength(raw, 8, column); err != nil {
		return nil, err
	}
	days := ReadInt32(raw, 0, TableOrder)
	seconds := (ReadInt32(raw, 4, TableOrder) + 1) / 1000
	if days == 0 && seconds == 0 {
		return NullValue{}, nil
	}
	return TimestampValue{Days: days, Seconds: seconds}, nil
}

func (in *Interpreter) parseCurrency(raw []byte, column *Column, _ ColumnState) (Value, error) {
	if err := minLength(raw, 8, column); err != nil {
		return nil, err
	}
	return CurrencyValue(ReadInt64(raw, 0, TableOrder)), nil
}
