package dbase

import (
	"io"
)

// Record is one fixed length row inside the batch buffer of a RecordReader.
// The data is only valid until the next call to RecordReader.Next.
type Record struct {
	Position uint32 // Position of the record in the table, starting at 0
	columns  []*Column
	offsets  []int
	raw      []byte
}

// Deleted reports whether the record carries the deletion flag.
func (r *Record) Deleted() bool {
	return Marker(r.raw[0]) == Deleted
}

// Raw returns the bytes of the record including the deletion flag.
func (r *Record) Raw() []byte {
	return r.raw
}

// Field returns the bytes of the column at position pos.
func (r *Record) Field(pos int) ([]byte, error) {
	if pos < 0 || pos >= len(r.columns) {
		return nil, newErrorf("dbase-record-field-1", ErrFormat, "invalid column position %d", pos)
	}
	start := r.offsets[pos]
	end := start + int(r.columns[pos].Length)
	if end > len(r.raw) {
		return nil, newErrorf("dbase-record-field-2", ErrFormat, "column field: %v ends at %d beyond the record length %d", r.columns[pos].Name(), end, len(r.raw))
	}
	return r.raw[start:end], nil
}

// RecordReader reads the records of a table in batches into one reused buffer.
type RecordReader struct {
	source    io.Reader
	header    *Header
	columns   []*Column
	offsets   []int
	buffer    []byte
	batchSize uint32
	batch     []byte
	base      uint32 // Position of the first record in buffer
	index     uint32 // Index of the next record inside the batch
	count     uint32 // Number of records in the current batch
	record    Record
}

// NewRecordReader reads records from source, which must be positioned at the first record.
// A batch holds about target bytes and at least one record.
func NewRecordReader(source io.Reader, header *Header, columns []*Column, target int) (*RecordReader, error) {
	if header.RowLength == 0 {
		return nil, newErrorf("dbase-record-newrecordreader-1", ErrFormat, "record length of 0")
	}
	offsets := make([]int, len(columns))
	// Byte 0 is the deletion flag, skipped columns still occupy their width.
	offset := 1
	for i, column := range columns {
		offsets[i] = offset
		offset += int(column.Length)
	}
	if target <= 0 {
		target = BatchTarget
	}
	// The batch never exceeds the declared record count, so it fits in 32 bits.
	batch := int64(target) / int64(header.RowLength)
	if batch == 0 {
		batch = 1
	}
	if batch > int64(header.RowsCount) {
		batch = int64(header.RowsCount)
	}
	batchSize := uint32(batch)
	debugf("Reading %d records in batches of %d", header.RowsCount, batchSize)
	return &RecordReader{
		source:    source,
		header:    header,
		columns:   columns,
		offsets:   offsets,
		buffer:    make([]byte, int(batchSize)*int(header.RowLength)),
		batchSize: batchSize,
	}, nil
}

// Next returns the next record or io.EOF after the last declared record.
func (rr *RecordReader) Next() (*Record, error) {
	if rr.index >= rr.count {
		if err := rr.fill(); err != nil {
			return nil, err
		}
	}
	length := uint32(rr.header.RowLength)
	rr.record = Record{
		Position: rr.base + rr.index,
		columns:  rr.columns,
		offsets:  rr.offsets,
		raw:      rr.batch[rr.index*length : (rr.index+1)*length],
	}
	rr.index++
	return &rr.record, nil
}

func (rr *RecordReader) fill() error {
	next := rr.base + rr.count
	if next >= rr.header.RowsCount {
		return io.EOF
	}
	count := rr.header.RowsCount - next
	if count > rr.batchSize {
		count = rr.batchSize
	}
	batch := rr.buffer[:int(count)*int(rr.header.RowLength)]
	n, err := io.ReadFull(rr.source, batch)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return newErrorf("dbase-record-fill-1", ErrFormat, "unable to read an entire record: got %d of %d bytes for records %d to %d: %v", n, len(batch), next, next+count-1, ErrIncomplete)
		}
		return newErrorf("dbase-record-fill-2", ErrResource, "reading records failed with error: %v", err)
	}
	rr.batch = batch
	rr.base = next
	rr.index = 0
	rr.count = count
	return nil
}
