package timeslot

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Заглушка драйвера database/sql: записывает выполненные запросы и отдает
// заранее подготовленные строки. Позволяет проверить, что условные
// обновления действительно несут предикат статуса в самом SQL, а не
// полагаются на предварительное чтение
type stubDB struct {
	execRows int64
	rows     [][]driver.Value
	calls    []recordedCall
}

type recordedCall struct {
	query string
	args  []driver.Value
}

func (db *stubDB) record(query string, args []driver.NamedValue) {
	values := make([]driver.Value, len(args))
	for i, arg := range args {
		values[i] = arg.Value
	}
	db.calls = append(db.calls, recordedCall{query: query, args: values})
}

type stubConnector struct {
	db *stubDB
}

func (c *stubConnector) Connect(context.Context) (driver.Conn, error) {
	return &stubConn{db: c.db}, nil
}

func (c *stubConnector) Driver() driver.Driver { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open is not supported")
}

type stubConn struct {
	db *stubDB
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare is not supported")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return nil, errors.New("begin is not supported")
}

func (c *stubConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.db.record(query, args)
	return driver.RowsAffected(c.db.execRows), nil
}

func (c *stubConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.db.record(query, args)
	return &stubRows{columns: slotColumns, rows: c.db.rows}, nil
}

type stubRows struct {
	columns []string
	rows    [][]driver.Value
	pos     int
}

func (r *stubRows) Columns() []string { return r.columns }

func (r *stubRows) Close() error { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

func newStubRepository(db *stubDB) *Repository {
	return NewRepository(sql.OpenDB(&stubConnector{db: db}))
}

func bookedSlotRow() []driver.Value {
	now := time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)
	return []driver.Value{
		int64(42),                                        // id
		int64(1),                                         // location_id
		nil,                                              // staff_id
		time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),    // slot_date
		"10:00",                                          // start_time
		"10:30",                                          // end_time
		"booked",                                         // status
		int64(777),                                       // booking_id
		now,                                              // created_at
		now,                                              // updated_at
	}
}

func TestBook_ConditionalOnAvailableStatus(t *testing.T) {
	db := &stubDB{execRows: 1}
	repo := newStubRepository(db)

	err := repo.Book(context.Background(), 42, 777)
	require.NoError(t, err)

	// Одна строка затронута — повторное чтение не выполняется
	require.Len(t, db.calls, 1)
	update := db.calls[0]

	// Предикат статуса входит в сам UPDATE: из N конкурирующих
	// бронирований одного слота пройдет ровно одно
	assert.Contains(t, update.query, "UPDATE time_slots")
	assert.Contains(t, update.query, "WHERE id = $3 AND status = $4")
	assert.Equal(t, []driver.Value{"booked", int64(777), int64(42), "available"}, update.args)
}

func TestBook_AlreadyBooked(t *testing.T) {
	// Ноль затронутых строк: конкурент успел забронировать первым.
	// Повторное чтение нужно только для точного кода ошибки
	db := &stubDB{execRows: 0, rows: [][]driver.Value{bookedSlotRow()}}
	repo := newStubRepository(db)

	err := repo.Book(context.Background(), 42, 888)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	require.Len(t, db.calls, 2)
	assert.Contains(t, db.calls[1].query, "SELECT")
}

func TestBook_SlotMissing(t *testing.T) {
	db := &stubDB{execRows: 0}
	repo := newStubRepository(db)

	err := repo.Book(context.Background(), 42, 888)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestRelease_ConditionalOnBookedStatus(t *testing.T) {
	db := &stubDB{execRows: 1}
	repo := newStubRepository(db)

	err := repo.Release(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].query, "WHERE id = $3 AND status = $4")
	assert.Equal(t, "booked", db.calls[0].args[3])
}

func TestUpdateInterval_GuardsBookedStatus(t *testing.T) {
	db := &stubDB{execRows: 1}
	repo := newStubRepository(db)

	staffID := int64(5)
	err := repo.UpdateInterval(
		context.Background(), 42, &staffID,
		time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), "11:00", "11:30",
	)
	require.NoError(t, err)

	require.Len(t, db.calls, 1)
	// Защита от редактирования забронированного слота живет в самом UPDATE
	assert.Contains(t, db.calls[0].query, "status <> $6")
	assert.Equal(t, "booked", db.calls[0].args[5])
}

func TestUpdateInterval_BookedConcurrently(t *testing.T) {
	db := &stubDB{execRows: 0, rows: [][]driver.Value{bookedSlotRow()}}
	repo := newStubRepository(db)

	staffID := int64(5)
	err := repo.UpdateInterval(
		context.Background(), 42, &staffID,
		time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), "11:00", "11:30",
	)
	assert.ErrorIs(t, err, ErrSlotBooked)
}

func TestUpdateInterval_DeletedConcurrently(t *testing.T) {
	db := &stubDB{execRows: 0}
	repo := newStubRepository(db)

	staffID := int64(5)
	err := repo.UpdateInterval(
		context.Background(), 42, &staffID,
		time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), "11:00", "11:30",
	)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDelete_BookedConcurrently(t *testing.T) {
	db := &stubDB{execRows: 0, rows: [][]driver.Value{bookedSlotRow()}}
	repo := newStubRepository(db)

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrSlotBooked)
	assert.Contains(t, db.calls[0].query, "status <> $2")
}
