package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	"github.com/m04kA/Parish-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Parish-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий журнала бронирований
// Журнал append-only: записи никогда не обновляются и не удаляются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись журнала
// Снимок полей заявки/бронирования денормализован, чтобы история оставалась
// читаемой после последующих правок и удалений
func (r *Repository) Create(ctx context.Context, rec *domain.BookingRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var details []byte
	if rec.Details != nil {
		encoded, err := json.Marshal(rec.Details)
		if err != nil {
			return fmt.Errorf("%w: Create - marshal details: %v", ErrBuildQuery, err)
		}
		details = encoded
	}

	query, args, err := psqlbuilder.Insert("booking_records").
		Columns(
			"request_id",
			"booking_id",
			"user_id",
			"user_name",
			"user_email",
			"service",
			"date",
			"slot",
			"details",
			"action",
			"note",
			"action_by",
		).
		Values(
			rec.RequestID,
			rec.BookingID,
			rec.UserID,
			rec.UserName,
			rec.UserEmail,
			rec.Service,
			rec.Date,
			rec.Slot,
			details,
			rec.Action,
			rec.Note,
			rec.ActionBy,
		).
		Suffix("RETURNING id, action_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var actionAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &actionAt)
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rec.ActionAt = actionAt.Time

	return nil
}

// List получает записи журнала (новые первыми)
func (r *Repository) List(ctx context.Context) ([]*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"request_id",
		"booking_id",
		"user_id",
		"user_name",
		"user_email",
		"service",
		"date",
		"slot",
		"details",
		"action",
		"note",
		"action_by",
		"action_at",
	).
		From("booking_records").
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.BookingRecord, 0)
	for rows.Next() {
		var rec domain.BookingRecord
		var details []byte
		var actionAt sql.NullTime

		err := rows.Scan(
			&rec.ID,
			&rec.RequestID,
			&rec.BookingID,
			&rec.UserID,
			&rec.UserName,
			&rec.UserEmail,
			&rec.Service,
			&rec.Date,
			&rec.Slot,
			&details,
			&rec.Action,
			&rec.Note,
			&rec.ActionBy,
			&actionAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		rec.ActionAt = actionAt.Time
		if len(details) > 0 {
			if err := json.Unmarshal(details, &rec.Details); err != nil {
				return nil, fmt.Errorf("%w: List - decode details: %v", ErrScanRow, err)
			}
		}

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
