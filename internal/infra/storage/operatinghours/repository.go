package operatinghours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникальности
const uniqueViolationCode = "23505"

var hoursColumns = []string{
	"id",
	"location_id",
	"day_of_week",
	"open_time",
	"close_time",
	"is_closed",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписанием работы локаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindByLocationID получает недельное расписание локации
// Записи отсортированы по дню недели (Monday=0 .. Sunday=6)
// Отсутствие записей не является ошибкой - возвращается пустой слайс
func (r *Repository) FindByLocationID(ctx context.Context, locationID int64) ([]*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("operating_hours").
		Where(squirrel.Eq{"location_id": locationID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByLocationID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByLocationID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanHours(rows)
}

// GetForDay получает запись расписания на конкретный день недели
func (r *Repository) GetForDay(ctx context.Context, locationID int64, dayOfWeek int) (*domain.OperatingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("operating_hours").
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - build select query: %v", ErrBuildQuery, err)
	}

	var hours domain.OperatingHours
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&hours.LocationID,
		&hours.DayOfWeek,
		&hours.OpenTime,
		&hours.CloseTime,
		&hours.IsClosed,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - scan record: %v", ErrScanRow, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return &hours, nil
}

// ReplaceForLocation полностью заменяет недельное расписание локации
// (владелец задает расписание целиком, а не по одному дню)
// Должен вызываться внутри транзакции: delete + insert атомарны для читателей
func (r *Repository) ReplaceForLocation(ctx context.Context, locationID int64, week []*domain.OperatingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("operating_hours").
		Where(squirrel.Eq{"location_id": locationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForLocation - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForLocation - execute delete: %w", ErrExecQuery, err)
	}

	if len(week) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("operating_hours").
		Columns(
			"location_id",
			"day_of_week",
			"open_time",
			"close_time",
			"is_closed",
		)

	for _, day := range week {
		insertBuilder = insertBuilder.Values(
			locationID,
			day.DayOfWeek,
			day.OpenTime,
			day.CloseTime,
			day.IsClosed,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForLocation - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateDay
		}
		return fmt.Errorf("%w: ReplaceForLocation - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// scanHours сканирует результаты запроса в слайс записей расписания
func (r *Repository) scanHours(rows *sql.Rows) ([]*domain.OperatingHours, error) {
	hours := make([]*domain.OperatingHours, 0)

	for rows.Next() {
		var h domain.OperatingHours
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&h.ID,
			&h.LocationID,
			&h.DayOfWeek,
			&h.OpenTime,
			&h.CloseTime,
			&h.IsClosed,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanHours - scan row: %v", ErrScanRow, err)
		}

		h.CreatedAt = createdAt.Time
		h.UpdatedAt = updatedAt.Time

		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением уникальности
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
