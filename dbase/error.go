package dbase

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrFormat is returned when the decoded structure violates the file format.
	ErrFormat = errors.New("invalid format")
	// ErrResource is returned when a table or memo file cannot be acquired.
	ErrResource = errors.New("resource unavailable")
	// ErrConfiguration is returned when the supplied sources do not fit the table.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrIncomplete is returned when a read ends before the expected number of bytes.
	ErrIncomplete = errors.New("incomplete")
)

// Error keeps the trail of contexts an error passed through.
type Error struct {
	context []string
	err     error
}

func newError(context string, err error) Error {
	if e, ok := err.(Error); ok {
		return Error{
			context: append([]string{context}, e.context...),
			err:     e.err,
		}
	}
	return Error{
		context: []string{context},
		err:     err,
	}
}

func newErrorf(context string, kind error, format string, args ...interface{}) Error {
	return newError(context, errors.Wrapf(kind, format, args...))
}

func (e Error) Error() string {
	return e.err.Error()
}

func (e Error) Unwrap() error {
	return e.err
}

// Context returns the contexts from the outermost to the innermost.
func (e Error) Context() []string {
	return e.context
}

func (e Error) trace() string {
	return strings.Join(append(append([]string{}, e.context...), e.err.Error()), ":")
}

// WrapError adds the calling function to the context of err.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	context := "unknown"
	if pc, _, _, ok := runtime.Caller(1); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			name := fn.Name()
			context = name[strings.LastIndex(name, ".")+1:]
		}
	}
	return newError(context, err)
}

// GetErrorTrace returns err with its message replaced by the full context trail.
func GetErrorTrace(err error) error {
	var e Error
	if errors.As(err, &e) {
		return errors.New(e.trace())
	}
	return err
}
