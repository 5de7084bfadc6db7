package dbase

import (
	"bytes"
)

// MemoFile resolves memo block numbers against a read-only memo file image.
type MemoFile struct {
	data      []byte
	classic   bool
	blockSize int64
	header    *MemoHeader
}

// NewMemo prepares a memo file image for the table version.
// dBASE III memo files use fixed 512 byte blocks, every other version reads
// the block size from the memo file header.
func NewMemo(data []byte, version FileVersion) (*MemoFile, error) {
	m := &MemoFile{
		data:    data,
		classic: version.Classic(),
	}
	if m.classic {
		m.blockSize = ClassicBlockSize
		debugf("Classic memo file with %d byte blocks", m.blockSize)
		return m, nil
	}
	if len(data) < MemoHeaderSize {
		return nil, newErrorf("dbase-memo-new-1", ErrFormat, "memo file of %d bytes is too short for its header", len(data))
	}
	m.header = &MemoHeader{
		NextFree:  uint32(ReadInt32(data, 0, MemoOrder)),
		BlockSize: uint16(ReadInt16(data, 6, MemoOrder)),
	}
	copy(m.header.Unused[:], data[4:6])
	m.blockSize = int64(m.header.BlockSize)
	if m.blockSize == 0 {
		return nil, newErrorf("dbase-memo-new-2", ErrFormat, "memo file declares a block size of 0")
	}
	debugf("Memo file with %d byte blocks, next free block %d", m.blockSize, m.header.NextFree)
	return m, nil
}

// BlockSize returns the size of one memo block in bytes.
func (m *MemoFile) BlockSize() int64 {
	return m.blockSize
}

// Classic reports whether the memo uses dBASE III block framing.
func (m *MemoFile) Classic() bool {
	return m.classic
}

// Read returns the content of the memo block. Block 0 means no content and returns nil.
// The returned slice aliases the memo image and must not be modified.
func (m *MemoFile) Read(block uint32) ([]byte, error) {
	if block == 0 {
		return nil, nil
	}
	start := int64(block) * m.blockSize
	size := int64(len(m.data))
	if start >= size {
		return nil, newErrorf("dbase-memo-read-1", ErrFormat, "memo block %d at %d is outside of the memo file (%d bytes)", block, start, size)
	}
	if m.classic {
		end := bytes.IndexByte(m.data[start:], byte(EOFMarker))
		if end < 0 {
			return nil, newErrorf("dbase-memo-read-2", ErrFormat, "memo block %d is not terminated", block)
		}
		debugf("Reading classic memo block %d at position %d: %d bytes", block, start, end)
		return m.data[start : start+int64(end)], nil
	}
	if start+MemoHeaderSize > size {
		return nil, newErrorf("dbase-memo-read-3", ErrFormat, "memo block %d header at %d is truncated", block, start)
	}
	length := int64(uint32(ReadInt32(m.data, int(start)+4, MemoOrder)))
	debugf("Reading memo block %d at position %d: %d bytes", block, start, length)
	if start+MemoHeaderSize+length > size {
		return nil, newErrorf("dbase-memo-read-4", ErrFormat, "memo block %d declares %d bytes, the memo file ends after %d", block, length, size-start-MemoHeaderSize)
	}
	return m.data[start+MemoHeaderSize : start+MemoHeaderSize+length], nil
}
