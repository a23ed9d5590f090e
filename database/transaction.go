package database

import (
	"context"

	"github.com/sagarc03/sqlbridge"
)

// StartTransaction begins a transaction on the pinned session. Until Commit or
// Rollback, every Fetch and Execute runs inside it.
//
// The transaction outlives ctx: cancelling it after StartTransaction returns
// does not roll back. Only Commit, Rollback or Close end the transaction.
//
// Begin failures are logged and reported through Result.Err, like every other
// operation.
func (d *DB) StartTransaction(ctx context.Context) sqlbridge.Result {
	d.logger.Debug("start transaction")

	if err := d.checkOpen("start transaction"); err != nil {
		return sqlbridge.Failure(err)
	}
	if d.tx != nil {
		return d.fail("start transaction", "", sqlbridge.ErrTransactionActive)
	}

	tx, err := d.conn.BeginTx(context.WithoutCancel(ctx), d.dialect.TxOptions())
	if err != nil {
		return d.fail("start transaction", "", err)
	}
	d.tx = tx

	return sqlbridge.Success(nil, nil)
}

// Commit commits the open transaction. Without one it is a no-op: outside a
// transaction every statement is already committed.
func (d *DB) Commit(ctx context.Context) sqlbridge.Result {
	return d.endTransaction(ctx, "commit")
}

// Rollback discards the open transaction. Without one it is a no-op.
func (d *DB) Rollback(ctx context.Context) sqlbridge.Result {
	return d.endTransaction(ctx, "rollback")
}

func (d *DB) endTransaction(_ context.Context, op string) sqlbridge.Result {
	d.logger.Debug(op)

	if err := d.checkOpen(op); err != nil {
		return sqlbridge.Failure(err)
	}
	if d.tx == nil {
		d.logger.Debug(op+" without transaction", "op", op)
		return sqlbridge.Success(nil, nil)
	}

	tx := d.tx
	d.tx = nil

	var err error
	if op == "commit" {
		err = tx.Commit()
	} else {
		err = tx.Rollback()
	}
	if err != nil {
		return d.fail(op, "", err)
	}

	return sqlbridge.Success(nil, nil)
}

// InTx runs fn inside a transaction, committing when fn's result is OK and
// rolling back otherwise. The returned Result is fn's, or the failure of the
// begin or commit.
func (d *DB) InTx(ctx context.Context, fn func() sqlbridge.Result) sqlbridge.Result {
	if res := d.StartTransaction(ctx); !res.OK() {
		return res
	}

	res := fn()
	if !res.OK() {
		if rb := d.Rollback(ctx); !rb.OK() {
			d.logger.Error("rollback after failure", "err", rb.Err)
		}
		return res
	}

	if c := d.Commit(ctx); !c.OK() {
		return c
	}
	return res
}
