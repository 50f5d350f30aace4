package txmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/essenza-booking/pkg/dbmetrics"
)

// Минимальный драйвер: только транзакции, без запросов
type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return &stubConn{}, nil }

type stubConn struct{}

func (*stubConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (*stubConn) Close() error                        { return nil }
func (*stubConn) Begin() (driver.Tx, error)           { return stubTx{}, nil }

func (*stubConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return stubTx{}, nil
}

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

var registerOnce sync.Once

func openStubDB(t *testing.T) *sql.DB {
	t.Helper()

	registerOnce.Do(func() { sql.Register("txmanager_stub", stubDriver{}) })
	db, err := sql.Open("txmanager_stub", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type recordedOps struct {
	mu  sync.Mutex
	ops []string
}

func (r *recordedOps) ObserveDBQuery(operation string, _ error, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, operation)
}

func (r *recordedOps) SetDBPoolStats(string, int, int, int, int64) {}

func TestTransactionManager_MeteredTx(t *testing.T) {
	rec := &recordedOps{}
	tm := NewTransactionManager(dbmetrics.Wrap(openStubDB(t), rec, "test"))

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		executor := dbmetrics.GetExecutor(ctx, nil)
		assert.IsType(t, &dbmetrics.Tx{}, executor)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"begin", "commit"}, rec.ops)

	rec.ops = nil
	boom := errors.New("boom")
	err = tm.DoReadOnly(context.Background(), func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"begin", "rollback"}, rec.ops)
}

func TestTransactionManager_PlainDB(t *testing.T) {
	tm := NewTransactionManager(openStubDB(t))

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		assert.IsType(t, &sql.Tx{}, dbmetrics.GetExecutor(ctx, nil))

		// Вложенный вызов работает в той же транзакции
		return tm.DoSerializable(ctx, func(inner context.Context) error {
			outer, _ := dbmetrics.TxFromContext(ctx)
			got, _ := dbmetrics.TxFromContext(inner)
			assert.Same(t, outer, got)
			return nil
		})
	})
	require.NoError(t, err)
}
