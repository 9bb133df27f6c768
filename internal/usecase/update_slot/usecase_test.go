package update_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	slotRepository "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type slotRepoMock struct {
	slot        *domain.TimeSlot
	getErr      error
	overlapping []*domain.TimeSlot
	updateErr   error
	updated     bool
}

func (m *slotRepoMock) GetByID(_ context.Context, _ int64) (*domain.TimeSlot, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.slot, nil
}

func (m *slotRepoMock) FindOverlapping(_ context.Context, _ int64, _ *int64, _ time.Time, _, _ types.TimeString, _ *int64) ([]*domain.TimeSlot, error) {
	return m.overlapping, nil
}

func (m *slotRepoMock) UpdateInterval(_ context.Context, _ int64, staffID *int64, date time.Time, start, end types.TimeString) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = true
	m.slot.StaffID = staffID
	m.slot.Date = date
	m.slot.StartTime = start
	m.slot.EndTime = end
	return nil
}

type locationClientMock struct {
	location *locationservice.Location
	err      error
}

func (m *locationClientMock) GetLocation(_ context.Context, _ int64) (*locationservice.Location, error) {
	return m.location, m.err
}

type txManagerMock struct{}

func (txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func existingSlot() *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:         42,
		LocationID: 1,
		Date:       time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "10:30",
		Status:     domain.StatusAvailable,
	}
}

func validRequest() *Request {
	return &Request{
		PartnerID: 10,
		SlotID:    42,
		Date:      time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "11:00",
		EndTime:   "11:30",
	}
}

func newTestUseCase(repo *slotRepoMock, loc *locationservice.Location, locErr error) *UseCase {
	return NewUseCase(repo, &locationClientMock{location: loc, err: locErr}, txManagerMock{}, noopLogger{})
}

func TestExecute_UpdatesSlot(t *testing.T) {
	repo := &slotRepoMock{slot: existingSlot()}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, repo.updated)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "11:00", resp.StartTime.String())
	assert.Equal(t, "11:30", resp.EndTime.String())
	assert.Equal(t, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), resp.Date)
}

func TestExecute_SlotNotFound(t *testing.T) {
	repo := &slotRepoMock{getErr: slotRepository.ErrSlotNotFound}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_BookedSlotRejected(t *testing.T) {
	slot := existingSlot()
	slot.Status = domain.StatusBooked
	bookingID := int64(777)
	slot.BookingID = &bookingID

	repo := &slotRepoMock{slot: slot}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotBooked)
	assert.False(t, repo.updated)
}

func TestExecute_Overlap(t *testing.T) {
	repo := &slotRepoMock{
		slot:        existingSlot(),
		overlapping: []*domain.TimeSlot{{ID: 7, LocationID: 1, StartTime: "11:15", EndTime: "11:45"}},
	}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotOverlap)
	assert.False(t, repo.updated)
}

func TestExecute_DuplicateKeyMapsToOverlap(t *testing.T) {
	repo := &slotRepoMock{slot: existingSlot(), updateErr: slotRepository.ErrDuplicateSlot}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotOverlap)
}

func TestExecute_ConcurrentBookingRejected(t *testing.T) {
	// Статус проверен до транзакции, но слот забронировали до UPDATE:
	// репозиторий вернет ErrSlotBooked по нулю затронутых строк
	repo := &slotRepoMock{slot: existingSlot(), updateErr: slotRepository.ErrSlotBooked}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotBooked)
	assert.False(t, repo.updated)
}

func TestExecute_ConcurrentDeleteRejected(t *testing.T) {
	repo := &slotRepoMock{slot: existingSlot(), updateErr: slotRepository.ErrSlotNotFound}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &slotRepoMock{slot: existingSlot()}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 99}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.updated)
}

func TestExecute_Validation(t *testing.T) {
	repo := &slotRepoMock{slot: existingSlot()}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"start equals end", func(r *Request) { r.EndTime = r.StartTime }},
		{"start after end", func(r *Request) { r.StartTime = "12:00"; r.EndTime = "11:00" }},
		{"bad time format", func(r *Request) { r.EndTime = "25:00" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"zero slot id", func(r *Request) { r.SlotID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
