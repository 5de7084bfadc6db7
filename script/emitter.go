package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/Valentin-Kaiser/dbf2sql/dbase"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Config is the configuration of one conversion run.
type Config struct {
	TableName   string   // Name of the created table, mandatory.
	Indexes     []string // Columns to create an index on after COMMIT.
	BatchTarget int      // Approximate number of record bytes read at once, 0 for dbase.BatchTarget.
}

// State is the position of the emitter in the conversion pipeline.
type State int

const (
	Start State = iota
	SchemaEmitted
	Streaming
	Committed
	IndexesEmitted
	Done
)

var stateNames = []string{"start", "schema emitted", "streaming", "committed", "indexes emitted", "done"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// column pairs a data column with its position among all columns and its prepared state.
type column struct {
	*dbase.Column
	position int
	state    dbase.ColumnState
}

// Emitter converts one table into a SQL script.
type Emitter struct {
	file        *dbase.File
	sink        Sink
	config      *Config
	encoder     *Encoder
	interpreter *dbase.Interpreter
	columns     []column
	state       State
	ran         bool
	statement   strings.Builder
	inserted    uint32
	deleted     uint32
}

// NewEmitter prepares the conversion of file into sink.
// Blank values are written as the BlankLiteral of sink if it is a BlankSink.
func NewEmitter(file *dbase.File, sink Sink, config *Config) *Emitter {
	encoder := NewEncoder()
	if s, ok := sink.(BlankSink); ok {
		encoder.SetBlank(s.BlankLiteral())
	}
	return &Emitter{
		file:        file,
		sink:        sink,
		config:      config,
		encoder:     encoder,
		interpreter: file.Interpreter(),
	}
}

// Convert writes the script for file to sink.
// The sink is not closed. On error the script ends without COMMIT.
func Convert(file *dbase.File, sink Sink, config *Config) error {
	return NewEmitter(file, sink, config).Run()
}

// State returns the last state the emitter completed.
func (e *Emitter) State() State {
	return e.state
}

// Inserted returns the number of INSERT statements written.
func (e *Emitter) Inserted() uint32 {
	return e.inserted
}

// Deleted returns the number of records skipped because of their deletion flag.
func (e *Emitter) Deleted() uint32 {
	return e.deleted
}

// Run advances through every state. It stops at the first error.
func (e *Emitter) Run() error {
	steps := []func() error{
		e.prepare,
		e.emitSchema,
		e.stream,
		e.commit,
		e.emitIndexes,
	}
	if e.ran {
		return dbase.WrapError(errors.Wrapf(dbase.ErrConfiguration, "emitter already ran up to state %v", e.state))
	}
	e.ran = true
	for i, step := range steps {
		if err := step(); err != nil {
			errorf("Conversion failed after state %v: %v", e.state, err)
			return dbase.WrapError(err)
		}
		e.state = State(i)
		debugf("Completed state %v", e.state)
	}
	e.state = Done
	return nil
}

// prepare validates the configuration and every column before anything is written.
func (e *Emitter) prepare() error {
	if e.config == nil || len(e.config.TableName) == 0 {
		return errors.Wrapf(dbase.ErrConfiguration, "missing table name")
	}
	if e.file.HasMemo() && e.file.Memo() == nil {
		return errors.Wrapf(dbase.ErrConfiguration, "table %s has memo fields, but no memo file was supplied", e.config.TableName)
	}
	e.columns = make([]column, 0, len(e.file.Columns()))
	for pos, c := range e.file.Columns() {
		if c.Skipped() {
			continue
		}
		state, err := dbase.PrepareColumn(c)
		if err != nil {
			return err
		}
		e.columns = append(e.columns, column{Column: c, position: pos, state: state})
	}
	debugf("Prepared %d of %d columns for table %s", len(e.columns), len(e.file.Columns()), e.config.TableName)
	return nil
}

func (e *Emitter) emitSchema() error {
	table := e.config.TableName
	if err := e.sink.Statement("BEGIN;"); err != nil {
		return err
	}
	if err := e.sink.Statement(fmt.Sprintf("DROP TABLE IF EXISTS %s;", table)); err != nil {
		return err
	}
	definitions := lo.Map(e.columns, func(c column, _ int) string {
		return ColumnName(c.Name()) + " " + ColumnType(c.Column)
	})
	return e.sink.Statement(fmt.Sprintf("CREATE TABLE %s (%s);", table, strings.Join(definitions, ", ")))
}

func (e *Emitter) stream() error {
	reader, err := e.file.Records(e.config.BatchTarget)
	if err != nil {
		return err
	}
	for {
		record, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if record.Deleted() {
			e.deleted++
			continue
		}
		statement, err := e.insert(record)
		if err != nil {
			return errors.WithMessagef(err, "record %d", record.Position)
		}
		if err := e.sink.Statement(statement); err != nil {
			return err
		}
		e.inserted++
	}
	debugf("Inserted %d records, skipped %d deleted records", e.inserted, e.deleted)
	return nil
}

func (e *Emitter) insert(record *dbase.Record) (string, error) {
	e.statement.Reset()
	e.statement.WriteString("INSERT INTO ")
	e.statement.WriteString(e.config.TableName)
	e.statement.WriteString(" VALUES(")
	for i, c := range e.columns {
		if i > 0 {
			e.statement.WriteByte(',')
		}
		raw, err := record.Field(c.position)
		if err != nil {
			return "", err
		}
		value, err := e.interpreter.Interpret(raw, c.Column, c.state)
		if err != nil {
			return "", err
		}
		literal, err := e.encoder.Literal(value)
		if err != nil {
			return "", err
		}
		e.statement.WriteString(literal)
	}
	e.statement.WriteString(");")
	return e.statement.String(), nil
}

func (e *Emitter) commit() error {
	return e.sink.Statement("COMMIT;")
}

func (e *Emitter) emitIndexes() error {
	table := e.config.TableName
	for _, index := range e.config.Indexes {
		statement := fmt.Sprintf("CREATE INDEX %s_%s ON %s(%s);", table, IndexName(index), table, index)
		if err := e.sink.Statement(statement); err != nil {
			return err
		}
	}
	return nil
}

// ColumnType returns the SQL type of a column in CREATE TABLE.
func ColumnType(c *dbase.Column) string {
	switch dbase.DataType(c.DataType) {
	case dbase.Double:
		return "FLOAT"
	case dbase.Character:
		return fmt.Sprintf("TEXT(%d)", c.Length)
	case dbase.Date:
		return "DATE"
	case dbase.Float:
		return fmt.Sprintf("NUMERIC(%d)", c.Decimals)
	case dbase.General:
		return "BLOB"
	case dbase.Integer:
		return "INTEGER"
	case dbase.Logical:
		return "BOOLEAN"
	case dbase.Memo:
		return "TEXT"
	case dbase.Numeric:
		return fmt.Sprintf("NUMERIC(%d, %d)", c.Length, c.Decimals)
	case dbase.DateTime:
		return "TIMESTAMP"
	case dbase.Currency:
		return "DECIMAL(4)"
	}
	return ""
}
