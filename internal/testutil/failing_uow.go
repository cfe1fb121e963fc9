package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/lexis/internal/db"
)

// FailingUoW runs a real transaction but injects Err into one write, so
// tests can check that multi-write operations roll back as a whole.
//
// With FailOn > 0 the FailOn-th ExecContext call fails (counted from 1).
// With Match set, the first ExecContext whose SQL contains Match fails.
// Reads pass through untouched.
type FailingUoW struct {
	DB     *sql.DB
	FailOn int32
	Match  string
	Err    error

	execs atomic.Int32
}

// Execs reports how many writes the last transaction attempted.
func (u *FailingUoW) Execs() int {
	return int(u.execs.Load())
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	u.execs.Store(0)

	if err := fn(ctx, &failingTx{DBTX: tx, uow: u}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	uow *FailingUoW
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.uow.execs.Add(1)
	if (f.uow.FailOn > 0 && n == f.uow.FailOn) || (f.uow.Match != "" && strings.Contains(query, f.uow.Match)) {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
