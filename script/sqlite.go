package script

import (
	"context"
	"database/sql"

	"github.com/Valentin-Kaiser/dbf2sql/dbase"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// SQLiteSink executes every statement on one connection of a SQLite database.
// BEGIN and COMMIT are part of the script, so a run that fails before COMMIT
// leaves the transaction open and it is rolled back when the connection closes.
type SQLiteSink struct {
	ctx  context.Context
	db   *sql.DB
	conn *sql.Conn
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteSink, error) {
	debugf("Opening SQLite database: %s", path)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(dbase.ErrResource, "opening %s failed with error: %v", path, err)
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		db.Close()
		return nil, errors.Wrapf(dbase.ErrResource, "connecting to %s failed with error: %v", path, err)
	}
	return &SQLiteSink{ctx: ctx, db: db, conn: conn}, nil
}

func (s *SQLiteSink) Statement(statement string) error {
	if _, err := s.conn.ExecContext(s.ctx, statement); err != nil {
		return errors.Wrapf(dbase.ErrResource, "executing %.64q failed with error: %v", statement, err)
	}
	return nil
}

// BlankLiteral returns NULL, SQLite rejects empty value slots.
func (s *SQLiteSink) BlankLiteral() string {
	return "NULL"
}

func (s *SQLiteSink) Close() error {
	err := s.conn.Close()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(dbase.ErrResource, "closing database failed with error: %v", err)
	}
	return nil
}

// DB returns the underlying database handle.
func (s *SQLiteSink) DB() *sql.DB {
	return s.db
}
