package script

import (
	"bufio"
	"io"

	"github.com/Valentin-Kaiser/dbf2sql/dbase"
	"github.com/pkg/errors"
)

// Sink receives the statements of a script in order.
type Sink interface {
	Statement(statement string) error
	Close() error
}

// BlankSink is implemented by sinks that need a literal in place of the
// empty slot written for blank values.
type BlankSink interface {
	Sink
	BlankLiteral() string
}

// WriterSink writes one statement per line to a buffered writer.
type WriterSink struct {
	w *bufio.Writer
}

// NewWriterSink returns a sink writing to w. Close flushes the buffer.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) Statement(statement string) error {
	if _, err := s.w.WriteString(statement); err != nil {
		return errors.Wrapf(dbase.ErrResource, "writing statement failed with error: %v", err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return errors.Wrapf(dbase.ErrResource, "writing statement failed with error: %v", err)
	}
	return nil
}

func (s *WriterSink) Close() error {
	if err := s.w.Flush(); err != nil {
		return errors.Wrapf(dbase.ErrResource, "flushing output failed with error: %v", err)
	}
	return nil
}
