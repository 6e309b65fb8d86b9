package event

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	"github.com/m04kA/Parish-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Parish-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий приходских событий-анонсов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое событие
func (r *Repository) Create(ctx context.Context, e *domain.ParishEvent) (*domain.ParishEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("events").
		Columns("title", "date", "event_time", "description").
		Values(e.Title, e.Date, e.Time, e.Description).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&e.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return e, nil
}

// GetByID получает событие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParishEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title", "date", "event_time", "description").
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var e domain.ParishEvent
	err = executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.Title, &e.Date, &e.Time, &e.Description)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return &e, nil
}

// List получает все события (ближайшие первыми)
func (r *Repository) List(ctx context.Context) ([]*domain.ParishEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title", "date", "event_time", "description").
		From("events").
		OrderBy("date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.ParishEvent, 0)
	for rows.Next() {
		var e domain.ParishEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Time, &e.Description); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

// Update обновляет событие
func (r *Repository) Update(ctx context.Context, id int64, e *domain.ParishEvent) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("events").
		Set("title", e.Title).
		Set("date", e.Date).
		Set("event_time", e.Time).
		Set("description", e.Description).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Delete удаляет событие
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
