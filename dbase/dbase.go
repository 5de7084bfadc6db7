// Package dbase decodes dBase and FoxPro table files.
//
// It parses the table header and the field descriptor array, reads records
// in batches of bounded size, resolves memo columns against a memory mapped
// memo file (dBASE III and FoxPro block layouts) and interprets every
// supported column type into a Value that can be rendered as a SQL literal.
//
// Character data is never transcoded; bytes are returned as stored.
package dbase

// Config is a struct containing the configuration for opening a table.
// The filename is mandatory.
type Config struct {
	Filename     string // The filename of the DBF file.
	MemoFilename string // The filename of the memo file. Required if the table has memo columns, unless FindMemo is set.
	FindMemo     bool   // If true and MemoFilename is empty, a memo file next to the table is used.
}
