package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	"github.com/m04kA/Parish-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Parish-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий счётчиков ёмкости по датам
// Строка календаря на дату — единственный разделяемый ресурс системы:
// чтение и инкремент счётчика выполняются в одной сериализуемой транзакции
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает строку ёмкости для даты
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы две конкурирующие
// проверки ёмкости не прошли одновременно
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.CalendarDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("date", "max_slots", "booked").
		From("calendar_dates").
		Where(squirrel.Eq{"date": date})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var cal domain.CalendarDate
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cal.Date, &cal.MaxSlots, &cal.Booked)
	if err == sql.ErrNoRows {
		return nil, ErrDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan row: %v", ErrScanRow, err)
	}

	return &cal, nil
}

// List получает все строки календаря
func (r *Repository) List(ctx context.Context) ([]*domain.CalendarDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "max_slots", "booked").
		From("calendar_dates").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.CalendarDate, 0)
	for rows.Next() {
		var cal domain.CalendarDate
		if err := rows.Scan(&cal.Date, &cal.MaxSlots, &cal.Booked); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, &cal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// Reserve занимает один слот на дату
// Если строки ещё нет, она создается с booked=1 и переданным max_slots;
// maxSlots имеет значение только при первом резервировании даты
func (r *Repository) Reserve(ctx context.Context, date time.Time, maxSlots int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_dates").
		Columns("date", "max_slots", "booked").
		Values(date, maxSlots, 1).
		Suffix("ON CONFLICT (date) DO UPDATE SET booked = calendar_dates.booked + 1").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reserve - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Reserve - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Release освобождает один слот на дату
// Счётчик никогда не уходит ниже нуля; отсутствие строки не является ошибкой
func (r *Repository) Release(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calendar_dates").
		Set("booked", squirrel.Expr("CASE WHEN booked > 0 THEN booked - 1 ELSE 0 END")).
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// SetMaxSlots устанавливает ёмкость даты (0 закрывает дату)
// Счётчик booked при этом не сбрасывается
func (r *Repository) SetMaxSlots(ctx context.Context, date time.Time, maxSlots int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_dates").
		Columns("date", "max_slots").
		Values(date, maxSlots).
		Suffix("ON CONFLICT (date) DO UPDATE SET max_slots = excluded.max_slots").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetMaxSlots - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetMaxSlots - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
