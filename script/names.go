package script

import (
	"path/filepath"
	"strings"
)

// TableName derives the table name from the path of a table file:
// the base name up to the first period, lower-cased.
func TableName(path string) string {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}

// IndexName replaces every run of characters that are not ASCII letters or digits with one underscore.
func IndexName(column string) string {
	var b strings.Builder
	replaced := false
	for i := 0; i < len(column); i++ {
		c := column[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
			replaced = false
			continue
		}
		if !replaced {
			b.WriteByte('_')
			replaced = true
		}
	}
	return b.String()
}

// ColumnName is the quoted, lower-cased name of a column in CREATE TABLE.
func ColumnName(name string) string {
	return `"` + strings.ToLower(name) + `"`
}
