package script

import (
	"fmt"
	"strconv"

	"github.com/Valentin-Kaiser/dbf2sql/dbase"
	"github.com/pkg/errors"
)

// Encoder renders decoded values as SQL literals.
// The scratch buffer is reused between calls, an Encoder is not safe for concurrent use.
type Encoder struct {
	buf   []byte
	blank string
}

// NewEncoder returns an encoder with an empty scratch buffer.
func NewEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0, 256)}
}

// Text renders raw as a quoted string literal.
// Trailing spaces and NUL bytes are trimmed, an empty result renders as ''.
// Backslash, newline, carriage return and tab are written as \\, \n, \r and \t,
// single quotes are doubled.
func (e *Encoder) Text(raw []byte) string {
	end := len(raw)
	for end > 0 && (raw[end-1] == byte(dbase.Blank) || raw[end-1] == byte(dbase.Null)) {
		end--
	}
	// A field starting with NUL was never written.
	if end == 0 || raw[0] == byte(dbase.Null) {
		return "''"
	}
	e.buf = append(e.buf[:0], '\'')
	for _, b := range raw[:end] {
		switch b {
		case '\\':
			e.buf = append(e.buf, '\\', '\\')
		case '\n':
			e.buf = append(e.buf, '\\', 'n')
		case '\r':
			e.buf = append(e.buf, '\\', 'r')
		case '\t':
			e.buf = append(e.buf, '\\', 't')
		case '\'':
			e.buf = append(e.buf, '\'', '\'')
		default:
			e.buf = append(e.buf, b)
		}
	}
	e.buf = append(e.buf, '\'')
	return string(e.buf)
}

// SetBlank sets the literal written for blank values, the empty string by default.
func (e *Encoder) SetBlank(literal string) {
	e.blank = literal
}

// Literal renders one decoded value.
func (e *Encoder) Literal(value dbase.Value) (string, error) {
	switch v := value.(type) {
	case dbase.NullValue:
		return "NULL", nil
	case dbase.BlankValue:
		return e.blank, nil
	case dbase.TextValue:
		return e.Text(v), nil
	case dbase.NumberValue:
		return string(v), nil
	case dbase.DoubleValue:
		return fmt.Sprintf(v.Format, v.Value), nil
	case dbase.DateValue:
		return "'" + string(v) + "'", nil
	case dbase.IntegerValue:
		return "'" + strconv.FormatInt(int64(v), 10) + "'", nil
	case dbase.LogicalValue:
		if v {
			return "1", nil
		}
		return "0", nil
	case dbase.TimestampValue:
		hours, minutes, seconds := v.Clock()
		return fmt.Sprintf("'J%d %02d:%02d:%02d'", v.Days, hours, minutes, seconds), nil
	case dbase.CurrencyValue:
		return Currency(int64(v)), nil
	}
	return "", errors.Wrapf(dbase.ErrFormat, "unsupported value %T", value)
}

// Currency renders a fixed point value with 4 implied decimal places.
// The value is zero padded to at least 5 characters before the decimal
// point is inserted 4 digits from the right.
func Currency(v int64) string {
	digits := fmt.Sprintf("%05d", v)
	return digits[:len(digits)-4] + "." + digits[len(digits)-4:]
}
