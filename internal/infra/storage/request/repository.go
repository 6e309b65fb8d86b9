package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	"github.com/m04kA/Parish-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Parish-BookingService/pkg/psqlbuilder"
)

// requestColumns колонки таблицы booking_requests в порядке сканирования
var requestColumns = []string{
	"id",
	"user_id",
	"user_name",
	"user_email",
	"service",
	"date",
	"slot",
	"details",
	"status",
	"created_at",
	"reviewed_by",
	"reviewed_at",
}

// Repository репозиторий для работы с заявками на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку со статусом pending
func (r *Repository) Create(ctx context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	details, err := marshalDetails(req.Details)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal details: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("booking_requests").
		Columns(
			"user_id",
			"user_name",
			"user_email",
			"service",
			"date",
			"slot",
			"details",
			"status",
		).
		Values(
			req.UserID,
			req.UserName,
			req.UserEmail,
			req.Service,
			req.Date,
			req.Slot,
			details,
			domain.StatusPending,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	req.Status = domain.StatusPending
	req.CreatedAt = createdAt.Time

	return req, nil
}

// GetByID получает заявку по ID
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы конкурирующие
// решения по одной заявке сериализовались
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(requestColumns...).
		From("booking_requests").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return req, nil
}

// ListPending получает все необработанные заявки (старые первыми)
func (r *Repository) ListPending(ctx context.Context) ([]*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("booking_requests").
		Where(squirrel.Eq{"status": domain.StatusPending}).
		OrderBy("created_at ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// ListByUser получает заявки пользователя (новые первыми)
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(requestColumns...).
		From("booking_requests").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

// UpdateFields обновляет поля заявки, пока она находится в статусе pending
// Возвращает ErrNotPending, если заявка уже обработана
func (r *Repository) UpdateFields(ctx context.Context, id int64, req *domain.BookingRequest) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	details, err := marshalDetails(req.Details)
	if err != nil {
		return fmt.Errorf("%w: UpdateFields - marshal details: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("booking_requests").
		Set("date", req.Date).
		Set("service", req.Service).
		Set("slot", req.Slot).
		Set("details", details).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateFields - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateFields - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateFields - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotPending
	}

	return nil
}

// SetStatus переводит pending-заявку в терминальный статус с фиксацией рецензента
// Проверка статуса выполняется в том же запросе: повторное решение по уже
// обработанной заявке детерминированно вернёт ErrNotPending
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.RequestStatus, reviewedBy int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_requests").
		Set("status", status).
		Set("reviewed_by", reviewedBy).
		Set("reviewed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotPending
	}

	return nil
}

// scanRequest сканирует одну строку в доменную модель заявки
func scanRequest(row *sql.Row) (*domain.BookingRequest, error) {
	var req domain.BookingRequest
	var details []byte
	var createdAt sql.NullTime

	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.UserName,
		&req.UserEmail,
		&req.Service,
		&req.Date,
		&req.Slot,
		&details,
		&req.Status,
		&createdAt,
		&req.ReviewedBy,
		&req.ReviewedAt,
	)
	if err != nil {
		return nil, err
	}

	req.CreatedAt = createdAt.Time
	req.Details, err = unmarshalDetails(details)
	if err != nil {
		return nil, err
	}

	return &req, nil
}

// scanRequests сканирует результаты запроса в слайс заявок
func scanRequests(rows *sql.Rows) ([]*domain.BookingRequest, error) {
	requests := make([]*domain.BookingRequest, 0)

	for rows.Next() {
		var req domain.BookingRequest
		var details []byte
		var createdAt sql.NullTime

		err := rows.Scan(
			&req.ID,
			&req.UserID,
			&req.UserName,
			&req.UserEmail,
			&req.Service,
			&req.Date,
			&req.Slot,
			&details,
			&req.Status,
			&createdAt,
			&req.ReviewedBy,
			&req.ReviewedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRequests - scan row: %v", ErrScanRow, err)
		}

		req.CreatedAt = createdAt.Time
		req.Details, err = unmarshalDetails(details)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRequests - decode details: %v", ErrScanRow, err)
		}

		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRequests - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}

func marshalDetails(details domain.Details) ([]byte, error) {
	if details == nil {
		details = domain.Details{}
	}
	return json.Marshal(details)
}

func unmarshalDetails(raw []byte) (domain.Details, error) {
	if len(raw) == 0 {
		return domain.Details{}, nil
	}
	var details domain.Details
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, err
	}
	return details, nil
}
