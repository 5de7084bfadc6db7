//go:build !unix && !windows

package dbase

import (
	"os"
)

// MapFile reads the named file into memory on platforms without mmap support.
func MapFile(name string) (*MappedFile, error) {
	debugf("Reading file: %s", name)
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, newErrorf("dbase-io-generic-mapfile-1", ErrResource, "reading %s failed with error: %v", name, err)
	}
	return &MappedFile{name: name, data: data}, nil
}
