package timeslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникальности
const uniqueViolationCode = "23505"

var slotColumns = []string{
	"id",
	"location_id",
	"staff_id",
	"slot_date",
	"start_time",
	"end_time",
	"status",
	"booking_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает один слот (ручное создание вне массовой генерации)
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_slots").
		Columns(
			"location_id",
			"staff_id",
			"slot_date",
			"start_time",
			"end_time",
			"status",
			"booking_id",
		).
		Values(
			slot.LocationID,
			slot.StaffID,
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.Status,
			slot.BookingID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// CreateBatch массово создает слоты (используется генератором)
// Возвращает количество созданных слотов
// Должен вызываться внутри транзакции вместе с DeleteUnbookedInRange
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.TimeSlot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("time_slots").
		Columns(
			"location_id",
			"staff_id",
			"slot_date",
			"start_time",
			"end_time",
			"status",
			"booking_id",
		)

	for _, slot := range slots {
		insertBuilder = insertBuilder.Values(
			slot.LocationID,
			slot.StaffID,
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.Status,
			slot.BookingID,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateSlot
		}
		return 0, fmt.Errorf("%w: CreateBatch - execute insert: %w", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := r.scanSlotRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetByRange получает слоты по фильтру (локация, период, опционально сотрудник и статус)
// Слоты отсортированы по дате и времени начала
func (r *Repository) GetByRange(ctx context.Context, filter domain.SlotRangeFilter) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"location_id": filter.LocationID}).
		Where(squirrel.GtOrEq{"slot_date": filter.StartDate}).
		Where(squirrel.LtOrEq{"slot_date": filter.EndDate}).
		OrderBy("slot_date ASC, start_time ASC")

	// Фильтрация по сотруднику (если указан)
	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}

	// Фильтрация по статусу (если указан)
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// FindOverlapping находит слоты, пересекающиеся с интервалом [start, end)
// на указанной локации и дате. Интервалы полуоткрытые: граничащие слоты
// пересечением не считаются.
//
// Область конфликта:
// - staffID == nil: кандидат без сотрудника конфликтует с любым слотом локации
// - staffID != nil: конфликтуют слоты того же сотрудника и слоты без сотрудника
//
// excludeID исключает слот из проверки (используется при редактировании)
// Внутри транзакции добавляет FOR UPDATE, чтобы конкурирующее создание
// дождалось завершения проверки
func (r *Repository) FindOverlapping(
	ctx context.Context,
	locationID int64,
	staffID *int64,
	date time.Time,
	start, end types.TimeString,
	excludeID *int64,
) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.Eq{"slot_date": date}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC")

	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"staff_id": nil},
			squirrel.Eq{"staff_id": *staffID},
		})
	}

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// DeleteUnbookedInRange удаляет все незабронированные слоты локации в диапазоне дат
// Забронированные слоты НИКОГДА не удаляются регенерацией
// Если указан staffID, удаляются только слоты этого сотрудника
// Должен вызываться внутри транзакции вместе с CreateBatch
func (r *Repository) DeleteUnbookedInRange(
	ctx context.Context,
	locationID int64,
	staffID *int64,
	startDate, endDate time.Time,
) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.GtOrEq{"slot_date": startDate}).
		Where(squirrel.LtOrEq{"slot_date": endDate}).
		Where(squirrel.NotEq{"status": domain.StatusBooked})

	if staffID != nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"staff_id": *staffID})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteUnbookedInRange - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteUnbookedInRange - execute delete: %w", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteUnbookedInRange - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// Book атомарно бронирует слот: условное обновление срабатывает только
// если слот в статусе available. Ноль затронутых строк означает, что слот
// либо не существует, либо уже недоступен — гонка разрешается на уровне БД,
// а не чтением статуса в приложении
func (r *Repository) Book(ctx context.Context, id int64, bookingID int64) error {
	return r.conditionalUpdate(ctx, "Book",
		psqlbuilder.Update("time_slots").
			Set("status", domain.StatusBooked).
			Set("booking_id", bookingID).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}).
			Where(squirrel.Eq{"status": domain.StatusAvailable}),
		id,
		func(status domain.SlotStatus) error {
			return ErrSlotNotAvailable
		},
	)
}

// Release атомарно освобождает забронированный слот
func (r *Repository) Release(ctx context.Context, id int64) error {
	return r.conditionalUpdate(ctx, "Release",
		psqlbuilder.Update("time_slots").
			Set("status", domain.StatusAvailable).
			Set("booking_id", nil).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}).
			Where(squirrel.Eq{"status": domain.StatusBooked}),
		id,
		func(status domain.SlotStatus) error {
			return ErrSlotNotBooked
		},
	)
}

// Block атомарно блокирует доступный слот
// Забронированный слот заблокировать нельзя
func (r *Repository) Block(ctx context.Context, id int64) error {
	return r.conditionalUpdate(ctx, "Block",
		psqlbuilder.Update("time_slots").
			Set("status", domain.StatusBlocked).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}).
			Where(squirrel.Eq{"status": domain.StatusAvailable}),
		id,
		func(status domain.SlotStatus) error {
			if status == domain.StatusBooked {
				return ErrSlotBooked
			}
			return ErrSlotNotAvailable
		},
	)
}

// Unblock атомарно разблокирует заблокированный слот
func (r *Repository) Unblock(ctx context.Context, id int64) error {
	return r.conditionalUpdate(ctx, "Unblock",
		psqlbuilder.Update("time_slots").
			Set("status", domain.StatusAvailable).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}).
			Where(squirrel.Eq{"status": domain.StatusBlocked}),
		id,
		func(status domain.SlotStatus) error {
			return ErrSlotNotBlocked
		},
	)
}

// UpdateInterval обновляет интервал и сотрудника слота (ручное редактирование)
// Вызывается после проверки пересечений внутри той же транзакции.
// Забронированный слот менять нельзя: условие по статусу входит в сам
// UPDATE, чтобы гонка с бронированием разрешалась на уровне БД
func (r *Repository) UpdateInterval(
	ctx context.Context,
	id int64,
	staffID *int64,
	date time.Time,
	start, end types.TimeString,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("staff_id", staffID).
		Set("slot_date", date).
		Set("start_time", start).
		Set("end_time", end).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.StatusBooked}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("%w: UpdateInterval - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateInterval - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrSlotBooked
	}

	return nil
}

// Delete удаляет слот (административное удаление)
// Забронированный слот удалить нельзя: условие по статусу входит в сам
// DELETE, чтобы гонка с бронированием разрешалась на уровне БД
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.StatusBooked}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrSlotBooked
	}

	return nil
}

// conditionalUpdate выполняет условное обновление статуса и при нуле
// затронутых строк выясняет причину: слот не существует, либо находится
// в статусе, из которого переход невозможен. Повторное чтение делается
// только ради точного кода ошибки — сам переход уже атомарен
func (r *Repository) conditionalUpdate(
	ctx context.Context,
	op string,
	builder squirrel.UpdateBuilder,
	id int64,
	mismatchErr func(status domain.SlotStatus) error,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 1 {
		return nil
	}

	slot, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("%w: %s - resolve failure cause: %v", ErrExecQuery, op, err)
	}

	return mismatchErr(slot.Status)
}

// scanSlotRow сканирует одну строку в слот
func (r *Repository) scanSlotRow(row *sql.Row) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.LocationID,
		&slot.StaffID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Status,
		&slot.BookingID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		var slot domain.TimeSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.LocationID,
			&slot.StaffID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Status,
			&slot.BookingID,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением уникальности
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
