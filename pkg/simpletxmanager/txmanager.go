package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/Parish-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Parish-BookingService/pkg/pgerrors"
)

// TransactionManager менеджер транзакций поверх чистого *sql.DB (без метрик)
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) do(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("simpletxmanager: begin transaction: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("simpletxmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return pgerrors.Classify(err)
	}

	if err := tx.Commit(); err != nil {
		return pgerrors.Classify(fmt.Errorf("simpletxmanager: commit transaction: %w", err))
	}

	return nil
}
