package dbase

import (
	"os"
	"path/filepath"
	"strings"
)

// MemoExtensions are the extensions searched for a table's memo file.
var MemoExtensions = []string{".fpt", ".dbt"}

// MappedFile is a read-only image of a file, memory mapped where the platform allows it.
type MappedFile struct {
	name  string
	data  []byte
	unmap func([]byte) error
}

// Bytes returns the content of the file. The slice is invalid after Close.
func (m *MappedFile) Bytes() []byte {
	return m.data
}

// Close releases the image.
func (m *MappedFile) Close() error {
	data := m.data
	m.data = nil
	if m.unmap == nil || data == nil {
		return nil
	}
	debugf("Releasing file: %s", m.name)
	if err := m.unmap(data); err != nil {
		return newErrorf("dbase-io-close-1", ErrResource, "releasing %s failed with error: %v", m.name, err)
	}
	return nil
}

// FindMemoFile looks for a memo file next to the table, matching extension and name case-insensitively.
func FindMemoFile(table string) (string, error) {
	dir := filepath.Dir(table)
	base := strings.TrimSuffix(filepath.Base(table), filepath.Ext(table))
	debugf("Searching memo file for: %s", table)
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", newErrorf("dbase-io-findmemofile-1", ErrResource, "reading directory %s failed with error: %v", dir, err)
	}
	for _, ext := range MemoExtensions {
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			if strings.EqualFold(file.Name(), base+ext) {
				debugf("Found memo file: %s", file.Name())
				return filepath.Join(dir, file.Name()), nil
			}
		}
	}
	return "", newErrorf("dbase-io-findmemofile-2", ErrResource, "no memo file found for %s", table)
}
