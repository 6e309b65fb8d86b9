package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	"github.com/m04kA/Parish-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Parish-BookingService/pkg/psqlbuilder"
)

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"user_id",
	"user_name",
	"user_email",
	"service",
	"date",
	"slot",
	"details",
	"request_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с подтверждёнными бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Вызывается только из транзакции одобрения заявки либо при прямом
// административном редактировании
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	details, err := marshalDetails(b.Details)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal details: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"user_name",
			"user_email",
			"service",
			"date",
			"slot",
			"details",
			"request_id",
		).
		Values(
			b.UserID,
			b.UserName,
			b.UserEmail,
			b.Service,
			b.Date,
			b.Slot,
			details,
			b.RequestID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// List получает все бронирования (новые первыми)
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, nil)
}

// ListByUser получает бронирования пользователя (новые первыми)
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	return r.list(ctx, &userID)
}

func (r *Repository) list(ctx context.Context, userID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("date DESC, id DESC")

	if userID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *userID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListSlots получает пары дата+слот всех бронирований
// Используется календарём доступности без раскрытия владельцев
func (r *Repository) ListSlots(ctx context.Context) ([]domain.BookedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "slot").
		From("bookings").
		OrderBy("date ASC, slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.BookedSlot, 0)
	for rows.Next() {
		var slot domain.BookedSlot
		if err := rows.Scan(&slot.Date, &slot.Slot); err != nil {
			return nil, fmt.Errorf("%w: ListSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ListByDateSlot получает бронирования на пару дата+слот
// Используется проверками эксклюзивности служб (отпевание, венчание)
func (r *Repository) ListByDateSlot(ctx context.Context, date time.Time, slot string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"date": date, "slot": slot}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update обновляет поля бронирования
func (r *Repository) Update(ctx context.Context, id int64, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	details, err := marshalDetails(b.Details)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal details: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("date", b.Date).
		Set("service", b.Service).
		Set("slot", b.Slot).
		Set("details", details).
		Set("updated_at", squirrel.Expr("NOW()")).
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
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование
// Освобождение ёмкости даты выполняет вызывающая транзакция
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
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
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку в доменную модель бронирования
func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	var details []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.UserName,
		&b.UserEmail,
		&b.Service,
		&b.Date,
		&b.Slot,
		&details,
		&b.RequestID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	b.Details, err = unmarshalDetails(details)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var details []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.UserName,
			&b.UserEmail,
			&b.Service,
			&b.Date,
			&b.Slot,
			&details,
			&b.RequestID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		b.Details, err = unmarshalDetails(details)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - decode details: %v", ErrScanRow, err)
		}

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
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
