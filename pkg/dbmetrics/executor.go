package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный интерфейс для выполнения запросов
// Реализуется *sql.DB, *sql.Tx, *dbmetrics.DB и *dbmetrics.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txContextKey struct{}

// WithTx кладет активную транзакцию в контекст
// Репозитории подхватывают её через GetExecutor
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext извлекает транзакцию из контекста, если она есть
func TxFromContext(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return tx, ok
}

// GetExecutor возвращает транзакцию из контекста или fallback-executor
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := TxFromContext(ctx)
	return ok
}
