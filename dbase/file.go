package dbase

import (
	"io"
	"os"
)

// File bundles the decoded header and columns of a table with its sources.
type File struct {
	config   *Config       // The config used to open the table, nil for NewFile.
	handle   io.ReadSeeker // Table source.
	closers  []io.Closer   // Resources released by Close.
	header   *Header       // Table header.
	columns  []*Column     // All columns, skipped columns included.
	offset   int64         // Position of the first record.
	memo     *MemoFile     // Memo resolver, nil without memo file.
	memoName string        // Name of the memo file, if opened from disk.
}

// NewFile decodes the header and columns from an already open table source.
// memo is the image of the memo file, or nil if there is none.
func NewFile(r io.ReadSeeker, memo []byte) (*File, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, newErrorf("dbase-file-newfile-1", ErrResource, "seeking to the table start failed with error: %v", err)
	}
	header, err := ReadHeader(r)
	if err != nil {
		return nil, newError("dbase-file-newfile-2", err)
	}
	columns, offset, err := ReadColumns(r, header)
	if err != nil {
		return nil, newError("dbase-file-newfile-3", err)
	}
	file := &File{
		handle:  r,
		header:  header,
		columns: columns,
		offset:  offset,
	}
	if memo != nil {
		file.memo, err = NewMemo(memo, header.Version())
		if err != nil {
			return nil, newError("dbase-file-newfile-4", err)
		}
	}
	return file, nil
}

// Open opens the table and, if configured, its memo file.
func Open(config *Config) (*File, error) {
	if config == nil || len(config.Filename) == 0 {
		return nil, newErrorf("dbase-file-open-1", ErrConfiguration, "missing filename")
	}
	debugf("Opening table: %s - Memo: %q - Find memo: %v", config.Filename, config.MemoFilename, config.FindMemo)
	handle, err := os.Open(config.Filename)
	if err != nil {
		return nil, newErrorf("dbase-file-open-2", ErrResource, "opening %s failed with error: %v", config.Filename, err)
	}
	file, err := NewFile(handle, nil)
	if err != nil {
		handle.Close()
		return nil, newError("dbase-file-open-3", err)
	}
	file.config = config
	file.closers = append(file.closers, handle)
	memoName := config.MemoFilename
	if len(memoName) == 0 && config.FindMemo && HasMemo(file.columns) {
		memoName, err = FindMemoFile(config.Filename)
		if err != nil {
			file.Close()
			return nil, newError("dbase-file-open-4", err)
		}
	}
	if len(memoName) > 0 {
		mapped, err := MapFile(memoName)
		if err != nil {
			file.Close()
			return nil, newError("dbase-file-open-5", err)
		}
		file.closers = append(file.closers, mapped)
		file.memo, err = NewMemo(mapped.Bytes(), file.header.Version())
		if err != nil {
			file.Close()
			return nil, newError("dbase-file-open-6", err)
		}
		file.memoName = memoName
	}
	return file, nil
}

// Close releases the table and memo file in reverse order of acquisition.
func (file *File) Close() error {
	var first error
	for i := len(file.closers) - 1; i >= 0; i-- {
		if err := file.closers[i].Close(); err != nil && first == nil {
			errorf("Closing failed: %v", err)
			first = err
		}
	}
	file.closers = nil
	return first
}

// Returns the dBase table file header struct for inspecting
func (file *File) Header() *Header {
	return file.header
}

// Returns all columns, skipped columns included
func (file *File) Columns() []*Column {
	return file.columns
}

// Returns the requested column
func (file *File) Column(pos int) *Column {
	if pos < 0 || pos >= len(file.columns) {
		return nil
	}
	return file.columns[pos]
}

// Returns a slice of all the column names
func (file *File) ColumnNames() []string {
	names := make([]string, len(file.columns))
	for i, column := range file.columns {
		names[i] = column.Name()
	}
	return names
}

// Memo returns the memo resolver or nil if no memo file was supplied.
func (file *File) Memo() *MemoFile {
	return file.memo
}

// MemoFilename returns the name of the memo file opened by Open.
func (file *File) MemoFilename() string {
	return file.memoName
}

// HasMemo reports whether the table has memo columns.
func (file *File) HasMemo() bool {
	return HasMemo(file.columns)
}

// Offset returns the position of the first record.
func (file *File) Offset() int64 {
	return file.offset
}

// Records positions the table source at the first record and returns a batched reader.
func (file *File) Records(target int) (*RecordReader, error) {
	if _, err := file.handle.Seek(file.offset, io.SeekStart); err != nil {
		return nil, newErrorf("dbase-file-records-1", ErrResource, "seeking to the first record failed with error: %v", err)
	}
	return NewRecordReader(file.handle, file.header, file.columns, target)
}

// Interpreter returns a value interpreter bound to the memo file of the table.
func (file *File) Interpreter() *Interpreter {
	return NewInterpreter(file.memo)
}
