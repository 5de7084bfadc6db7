package script

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/Valentin-Kaiser/dbf2sql/dbase"
	"github.com/Valentin-Kaiser/dbf2sql/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T, path string) *SQLiteSink {
	t.Helper()
	sink, err := OpenSQLite(context.Background(), path)
	if err != nil {
		t.Skipf("sqlite3 is not available: %v", err)
	}
	return sink
}

func TestSQLiteSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.db")
	sink := openSQLite(t, path)

	table := people()
	table.Records = append(table.Records, fixture.Record(false, []byte("O'Br"), []byte(" 7")))
	file, err := dbase.NewFile(bytes.NewReader(table.Bytes()), nil)
	require.NoError(t, err)
	require.NoError(t, Convert(file, sink, &Config{TableName: "people", Indexes: []string{"name"}}))

	rows, err := sink.DB().Query("SELECT name, age FROM people ORDER BY age")
	require.NoError(t, err)
	defer rows.Close()
	var names []string
	var ages []int
	for rows.Next() {
		var name string
		var age int
		require.NoError(t, rows.Scan(&name, &age))
		names = append(names, name)
		ages = append(ages, age)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"O'Br", "John"}, names)
	assert.Equal(t, []int{7, 25}, ages)

	var index string
	require.NoError(t, sink.DB().QueryRow("SELECT name FROM sqlite_master WHERE type = 'index'").Scan(&index))
	assert.Equal(t, "people_name", index)
	rows.Close()
	assert.NoError(t, sink.Close())
}

func TestSQLiteSink_Blanks(t *testing.T) {
	sink := openSQLite(t, filepath.Join(t.TempDir(), "blanks.db"))
	defer sink.Close()

	table := fixture.Table{
		Version: byte(dbase.FoxBasePlusMemo),
		Fields: []fixture.Field{
			{Name: "ID", Type: 'I', Length: 4},
			{Name: "PICTURE", Type: 'G', Length: 10},
			{Name: "NOTE", Type: 'M', Length: 4},
		},
		Records: [][]byte{
			fixture.Record(false, fixture.Int32(1), []byte("         1"), fixture.Int32(0)),
			fixture.Record(false, fixture.Int32(2), []byte("          "), fixture.Int32(1)),
		},
	}
	memo := fixture.ClassicMemo(map[uint32][]byte{1: []byte("call back")})
	file, err := dbase.NewFile(bytes.NewReader(table.Bytes()), memo)
	require.NoError(t, err)
	require.NoError(t, Convert(file, sink, &Config{TableName: "t"}))

	rows, err := sink.DB().Query("SELECT id, picture, note FROM t ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()
	var notes []sql.NullString
	for rows.Next() {
		var id int
		var picture []byte
		var note sql.NullString
		require.NoError(t, rows.Scan(&id, &picture, &note))
		assert.Nil(t, picture)
		notes = append(notes, note)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []sql.NullString{{}, {String: "call back", Valid: true}}, notes)
}

func TestSQLiteSink_Incomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.db")
	sink := openSQLite(t, path)

	table := people()
	table.Count = fixture.Count(4)
	file, err := dbase.NewFile(bytes.NewReader(table.Bytes()), nil)
	require.NoError(t, err)
	err = Convert(file, sink, &Config{TableName: "people", BatchTarget: 1})
	assert.ErrorIs(t, err, dbase.ErrFormat)
	require.NoError(t, sink.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()
	var count int
	require.NoError(t, db.QueryRow("SELECT count(*) FROM sqlite_master WHERE name = 'people'").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestSQLiteSink_InvalidStatement(t *testing.T) {
	sink := openSQLite(t, filepath.Join(t.TempDir(), "invalid.db"))
	defer sink.Close()
	err := sink.Statement("CREATE TABLE (;")
	assert.ErrorIs(t, err, dbase.ErrResource)
}
