package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/attuneapp/attune/internal/db"
)

// FaultyUoW is a unit of work that fails the Nth write inside the
// transaction, counting ExecContext calls from 1. Saving a plan run is a
// multi-write operation (the run row, then one row per entry), so failing
// partway through exercises the rollback path. Reads pass through
// untouched.
type FaultyUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FaultyUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	faulty := &faultyTx{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, faulty); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type faultyTx struct {
	db.DBTX
	execs  int
	failOn int
	err    error
}

func (f *faultyTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execs++
	if f.execs == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
