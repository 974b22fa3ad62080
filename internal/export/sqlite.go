package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/funvibe/numlang/internal/symbols"
)

const createVariables = `CREATE TABLE IF NOT EXISTS variables (
	run_id      TEXT    NOT NULL,
	seq         INTEGER NOT NULL,
	name        TEXT    NOT NULL,
	kind        TEXT    NOT NULL,
	int_value   INTEGER,
	float_value REAL,
	PRIMARY KEY (run_id, seq)
)`

const insertVariable = `INSERT INTO variables (run_id, seq, name, kind, int_value, float_value)
VALUES (?, ?, ?, ?, ?, ?)`

// WriteSQLite appends the snapshot to the variables table of the database
// at path, creating the file and table when needed. All rows of a run are
// written in one transaction.
func WriteSQLite(ctx context.Context, path string, s Snapshot) (err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := db.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if _, err := db.ExecContext(ctx, createVariables); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertVariable)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range s.Entries() {
		var intValue sql.NullInt64
		var floatValue sql.NullFloat64
		if e.Value.Kind == symbols.Float {
			floatValue = sql.NullFloat64{Float64: e.Value.Float, Valid: true}
		} else {
			intValue = sql.NullInt64{Int64: e.Value.Int, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, s.Run, e.Seq, e.Name, e.Value.Kind.String(), intValue, floatValue); err != nil {
			return fmt.Errorf("insert %s: %w", e.Name, err)
		}
	}
	return tx.Commit()
}
