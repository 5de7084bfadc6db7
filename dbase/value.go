package dbase

// Value is the decoded content of one field. The concrete types are the
// *Value types below; each is rendered differently as a SQL literal.
type Value interface {
	value()
}

// NullValue is an empty date, numeric or timestamp field.
type NullValue struct{}

// BlankValue marks a field that produces no output at all (general fields, memo block 0).
type BlankValue struct{}

// TextValue holds character or memo bytes as stored, trailing padding included.
type TextValue []byte

// NumberValue is the ASCII text of a numeric or float field with leading spaces removed.
type NumberValue string

// DoubleValue is a binary double rendered with Format.
type DoubleValue struct {
	Value  float64
	Format string
}

// DateValue is a date formatted as YYYY-MM-DD.
type DateValue string

// IntegerValue is a binary 32 bit integer.
type IntegerValue int32

// LogicalValue is a boolean field.
type LogicalValue bool

// TimestampValue is a julian day number and the seconds since midnight.
type TimestampValue struct {
	Days    int32
	Seconds int32
}

// CurrencyValue is a fixed point number with 4 implied decimal places.
type CurrencyValue int64

func (NullValue) value()      {}
func (BlankValue) value()     {}
func (TextValue) value()      {}
func (NumberValue) value()    {}
func (DoubleValue) value()    {}
func (DateValue) value()      {}
func (IntegerValue) value()   {}
func (LogicalValue) value()   {}
func (TimestampValue) value() {}
func (CurrencyValue) value()  {}

// Clock splits the seconds since midnight into hours, minutes and seconds.
func (t TimestampValue) Clock() (int32, int32, int32) {
	seconds := t.Seconds
	hours := seconds / 3600
	seconds -= hours * 3600
	minutes := seconds / 60
	seconds -= minutes * 60
	return hours, minutes, seconds
}
