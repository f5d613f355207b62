package safe_test

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
	"github.com/secmon-lab/octoclass/pkg/utils/safe"

	_ "modernc.org/sqlite"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func newCapturedContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	handler := gt.R1(logging.NewHandler(&buf, "json", slog.LevelDebug)).NoError(t)
	return logging.With(context.Background(), slog.New(handler)), &buf
}

func TestClose(t *testing.T) {
	t.Run("failure is logged", func(t *testing.T) {
		ctx, buf := newCapturedContext(t)
		safe.Close(ctx, closerFunc(func() error { return io.ErrUnexpectedEOF }))
		gt.True(t, strings.Contains(buf.String(), "failed to close resource"))
	})

	t.Run("EOF is ignored", func(t *testing.T) {
		ctx, buf := newCapturedContext(t)
		safe.Close(ctx, closerFunc(func() error { return io.EOF }))
		gt.V(t, buf.Len()).Equal(0)
	})

	t.Run("nil closer", func(t *testing.T) {
		ctx, buf := newCapturedContext(t)
		safe.Close(ctx, nil)
		gt.V(t, buf.Len()).Equal(0)
	})
}

func TestRollback(t *testing.T) {
	ctx, buf := newCapturedContext(t)
	db := gt.R1(sql.Open("sqlite", ":memory:")).NoError(t)
	db.SetMaxOpenConns(1)
	defer safe.Close(ctx, db)

	t.Run("rollback after commit is silent", func(t *testing.T) {
		tx := gt.R1(db.BeginTx(ctx, nil)).NoError(t)
		gt.NoError(t, tx.Commit())
		safe.Rollback(ctx, tx)
		gt.V(t, buf.Len()).Equal(0)
	})

	t.Run("open transaction is rolled back", func(t *testing.T) {
		tx := gt.R1(db.BeginTx(ctx, nil)).NoError(t)
		_, err := tx.ExecContext(ctx, "CREATE TABLE rolled_back (id INTEGER)")
		gt.NoError(t, err)
		safe.Rollback(ctx, tx)

		_, err = db.ExecContext(ctx, "SELECT * FROM rolled_back")
		gt.Error(t, err)
	})

	t.Run("nil transaction", func(t *testing.T) {
		safe.Rollback(ctx, nil)
	})
}
