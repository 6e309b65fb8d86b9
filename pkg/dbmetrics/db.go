package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/Parish-BookingService/pkg/metrics"
)

// DB обёртка над *sql.DB, собирающая метрики запросов и connection pool
type DB struct {
	db          *sql.DB
	metrics     *metrics.Metrics
	serviceName string
}

// Tx обёртка над *sql.Tx с метриками запросов
type Tx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

// poolStatsInterval период опроса статистики connection pool
const poolStatsInterval = 10 * time.Second

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула
// Горутина сбора останавливается при закрытии stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{
		db:          db,
		metrics:     m,
		serviceName: serviceName,
	}

	go wrapped.collectPoolStats(stopCh)

	return wrapped
}

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBConnectionsOpen.Set(float64(stats.OpenConnections))
			d.metrics.DBConnectionsInUse.Set(float64(stats.InUse))
			d.metrics.DBConnectionsIdle.Set(float64(stats.Idle))
		}
	}
}

func (d *DB) observe(operation string, start time.Time, err error) {
	d.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		d.metrics.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// ExecContext выполняет запрос с замером длительности
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return result, err
}

// QueryContext выполняет запрос с замером длительности
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext выполняет запрос с замером длительности
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// BeginTx начинает транзакцию, возвращая обёртку с метриками
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observe("begin_tx", start, err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, metrics: d.metrics}, nil
}

func (t *Tx) observe(operation string, start time.Time, err error) {
	t.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		t.metrics.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// ExecContext выполняет запрос внутри транзакции с замером длительности
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := t.tx.ExecContext(ctx, query, args...)
	t.observe("tx_exec", start, err)
	return result, err
}

// QueryContext выполняет запрос внутри транзакции с замером длительности
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.observe("tx_query", start, err)
	return rows, err
}

// QueryRowContext выполняет запрос внутри транзакции с замером длительности
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.observe("tx_query_row", start, nil)
	return row
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.observe("tx_commit", start, err)
	return err
}

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error {
	start := time.Now()
	err := t.tx.Rollback()
	t.observe("tx_rollback", start, err)
	return err
}
