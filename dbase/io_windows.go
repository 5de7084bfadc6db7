//go:build windows

package dbase

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// MapFile maps the named file read-only into memory.
func MapFile(name string) (*MappedFile, error) {
	debugf("Mapping file: %s", name)
	handle, err := os.Open(name)
	if err != nil {
		return nil, newErrorf("dbase-io-windows-mapfile-1", ErrResource, "opening %s failed with error: %v", name, err)
	}
	defer handle.Close()
	stat, err := handle.Stat()
	if err != nil {
		return nil, newErrorf("dbase-io-windows-mapfile-2", ErrResource, "stat of %s failed with error: %v", name, err)
	}
	size := stat.Size()
	if size == 0 {
		// CreateFileMapping rejects empty files
		return &MappedFile{name: name, data: []byte{}}, nil
	}
	mapping, err := windows.CreateFileMapping(windows.Handle(handle.Fd()), nil, windows.PAGE_READONLY, uint32(size>>32), uint32(size), nil)
	if err != nil {
		return nil, newErrorf("dbase-io-windows-mapfile-3", ErrResource, "creating file mapping of %s failed with error: %v", name, err)
	}
	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(mapping)
		return nil, newErrorf("dbase-io-windows-mapfile-4", ErrResource, "mapping %s failed with error: %v", name, err)
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size))
	unmap := func([]byte) error {
		err := windows.UnmapViewOfFile(addr)
		if cerr := windows.CloseHandle(mapping); err == nil {
			err = cerr
		}
		return err
	}
	return &MappedFile{name: name, data: data, unmap: unmap}, nil
}
