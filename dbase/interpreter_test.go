package dbase

import (
	"testing"

	"github.com/Valentin-Kaiser/dbf2sql/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interpret(t *testing.T, in *Interpreter, column *Column, raw []byte) (Value, error) {
	t.Helper()
	state, err := PrepareColumn(column)
	require.NoError(t, err)
	return in.Interpret(raw, column, state)
}

func TestInterpret(t *testing.T) {
	in := NewInterpreter(nil)
	tests := []struct {
		name     string
		column   *Column
		raw      []byte
		expected Value
	}{
		{"character", &Column{DataType: 'C', Length: 6}, []byte("John  "), TextValue("John  ")},
		{"date", &Column{DataType: 'D', Length: 8}, []byte("20230401"), DateValue("2023-04-01")},
		{"date spaces", &Column{DataType: 'D', Length: 8}, []byte("        "), NullValue{}},
		{"date nul", &Column{DataType: 'D', Length: 8}, make([]byte, 8), NullValue{}},
		{"numeric", &Column{DataType: 'N', Length: 2}, []byte("25"), NumberValue("25")},
		{"numeric padded", &Column{DataType: 'N', Length: 6, Decimals: 2}, []byte(" -1.50"), NumberValue("-1.50")},
		{"numeric empty", &Column{DataType: 'N', Length: 4}, []byte("    "), NullValue{}},
		{"float", &Column{DataType: 'F', Length: 8}, []byte("  1.5E+3"), NumberValue("1.5E+3")},
		{"double", &Column{DataType: 'B', Length: 8, Decimals: 2}, fixture.Double(3.14159), DoubleValue{Value: 3.14159, Format: "%.2f"}},
		{"general", &Column{DataType: 'G', Length: 10}, []byte("         7"), BlankValue{}},
		{"integer", &Column{DataType: 'I', Length: 4}, fixture.Int32(-7), IntegerValue(-7)},
		{"logical T", &Column{DataType: 'L', Length: 1}, []byte("T"), LogicalValue(true)},
		{"logical Y", &Column{DataType: 'L', Length: 1}, []byte("Y"), LogicalValue(true)},
		{"logical F", &Column{DataType: 'L', Length: 1}, []byte("F"), LogicalValue(false)},
		{"logical unset", &Column{DataType: 'L', Length: 1}, []byte("?"), LogicalValue(false)},
		{"datetime", &Column{DataType: 'T', Length: 8}, fixture.Timestamp(2451545, 43199999), TimestampValue{Days: 2451545, Seconds: 43200}},
		{"datetime empty", &Column{DataType: 'T', Length: 8}, fixture.Timestamp(0, 0), NullValue{}},
		{"currency", &Column{DataType: 'Y', Length: 8}, fixture.Int64(12345), CurrencyValue(12345)},
		{"memo block zero", &Column{DataType: 'M', Length: 4}, fixture.Int32(0), BlankValue{}},
		{"memo numeric block zero", &Column{DataType: 'M', Length: 10}, []byte("          "), BlankValue{}},
		{"date letters", &Column{DataType: 'D', Length: 8}, []byte("2023AB01"), NullValue{}},
		{"date partially blank", &Column{DataType: 'D', Length: 8}, []byte("2023  01"), NullValue{}},
		{"numeric overflow fill", &Column{DataType: 'N', Length: 2}, []byte("**"), NullValue{}},
		{"numeric injection", &Column{DataType: 'N', Length: 6}, []byte("1);--X"), NullValue{}},
		{"memo numeric letters", &Column{DataType: 'M', Length: 10}, []byte("      12ab"), NullValue{}},
		{"memo numeric overflow", &Column{DataType: 'M', Length: 10}, []byte("9999999999"), NullValue{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := interpret(t, in, tt.column, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestInterpret_Invalid(t *testing.T) {
	in := NewInterpreter(nil)
	tests := []struct {
		name   string
		column *Column
		raw    []byte
	}{
		{"date too short", &Column{DataType: 'D', Length: 4}, []byte("2023")},
		{"integer too short", &Column{DataType: 'I', Length: 2}, []byte{1, 2}},
		{"currency too short", &Column{DataType: 'Y', Length: 4}, []byte{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interpret(t, in, tt.column, tt.raw)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestInterpret_LengthMismatch(t *testing.T) {
	column := &Column{DataType: 'C', Length: 4}
	_, err := NewInterpreter(nil).Interpret([]byte("abc"), column, ColumnState{})
	assert.ErrorIs(t, err, ErrFormat)
}

func TestInterpret_UnhandledType(t *testing.T) {
	in := NewInterpreter(nil)
	for _, dt := range []byte{'X', '0'} {
		column := &Column{DataType: dt, Length: 1}
		_, err := in.Interpret([]byte("a"), column, ColumnState{})
		assert.ErrorIs(t, err, ErrFormat, "type %c", dt)
	}
}

func TestPrepareColumn(t *testing.T) {
	state, err := PrepareColumn(&Column{DataType: 'B', Length: 8, Decimals: 3})
	require.NoError(t, err)
	assert.Equal(t, "%.3f", state.Format)

	state, err = PrepareColumn(&Column{DataType: 'M', Length: 4})
	require.NoError(t, err)
	assert.Equal(t, PackedMemo, state.Numbering)

	state, err = PrepareColumn(&Column{DataType: 'M', Length: 10})
	require.NoError(t, err)
	assert.Equal(t, NumericMemo, state.Numbering)

	_, err = PrepareColumn(&Column{DataType: 'M', Length: 8})
	assert.ErrorIs(t, err, ErrFormat)

	_, err = PrepareColumn(&Column{DataType: 'X', Length: 1})
	assert.ErrorIs(t, err, ErrFormat)
}

func TestInterpretMemo(t *testing.T) {
	memo, err := NewMemo(fixture.ClassicMemo(map[uint32][]byte{3: []byte("Hello")}), FoxBasePlusMemo)
	require.NoError(t, err)
	in := NewInterpreter(memo)

	value, err := interpret(t, in, &Column{DataType: 'M', Length: 4}, fixture.Int32(3))
	require.NoError(t, err)
	assert.Equal(t, TextValue("Hello"), value)

	value, err = interpret(t, in, &Column{DataType: 'M', Length: 10}, []byte("         3"))
	require.NoError(t, err)
	assert.Equal(t, TextValue("Hello"), value)
}

func TestInterpretMemo_NoMemoFile(t *testing.T) {
	_, err := interpret(t, NewInterpreter(nil), &Column{DataType: 'M', Length: 4}, fixture.Int32(3))
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestTimestampClock(t *testing.T) {
	hours, minutes, seconds := TimestampValue{Days: 1, Seconds: 3*3600 + 25*60 + 7}.Clock()
	assert.Equal(t, int32(3), hours)
	assert.Equal(t, int32(25), minutes)
	assert.Equal(t, int32(7), seconds)
}
