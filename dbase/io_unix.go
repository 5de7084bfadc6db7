//go:build unix

package dbase

import (
	"os"

	"golang.org/x/sys/unix"
)

// MapFile maps the named file read-only into memory.
func MapFile(name string) (*MappedFile, error) {
	debugf("Mapping file: %s", name)
	handle, err := os.Open(name)
	if err != nil {
		return nil, newErrorf("dbase-io-unix-mapfile-1", ErrResource, "opening %s failed with error: %v", name, err)
	}
	defer handle.Close()
	stat, err := handle.Stat()
	if err != nil {
		return nil, newErrorf("dbase-io-unix-mapfile-2", ErrResource, "stat of %s failed with error: %v", name, err)
	}
	if stat.Size() == 0 {
		// mmap rejects empty mappings
		return &MappedFile{name: name, data: []byte{}}, nil
	}
	data, err := unix.Mmap(int(handle.Fd()), 0, int(stat.Size()), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, newErrorf("dbase-io-unix-mapfile-3", ErrResource, "mapping %s failed with error: %v", name, err)
	}
	return &MappedFile{name: name, data: data, unmap: unix.Munmap}, nil
}
