package dbase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileVersion_String(t *testing.T) {
	assert.Equal(t, "Visual FoxPro", FoxPro.String())
	assert.Equal(t, "FoxBASE+/dBASE III PLUS, with memo", FoxBasePlusMemo.String())
	assert.Equal(t, "unknown", FileVersion(0x77).String())
}

func TestFileVersion_Classic(t *testing.T) {
	assert.True(t, FoxBasePlusMemo.Classic())
	assert.False(t, FoxPro.Classic())
	assert.False(t, FoxBasePlus.Classic())
	assert.False(t, DBaseMemo.Classic())
}

func TestDataType_Supported(t *testing.T) {
	for _, dt := range "BCDFGILMNTY0" {
		assert.True(t, DataType(dt).Supported(), "type %c", dt)
	}
	for _, dt := range "XVPQ@" {
		assert.False(t, DataType(dt).Supported(), "type %c", dt)
	}
}

func TestDataType_String(t *testing.T) {
	assert.Equal(t, "M", Memo.String())
	assert.Equal(t, "0", Skipped.String())
}

func TestTableFlag_Defined(t *testing.T) {
	flags := byte(StructuralFlag | MemoFlag)
	assert.True(t, StructuralFlag.Defined(flags))
	assert.True(t, MemoFlag.Defined(flags))
	assert.False(t, DatabaseFlag.Defined(flags))
}

func TestMemoNumbering_String(t *testing.T) {
	assert.Equal(t, "packed", PackedMemo.String())
	assert.Equal(t, "numeric", NumericMemo.String())
}
