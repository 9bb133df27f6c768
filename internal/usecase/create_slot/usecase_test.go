package create_slot

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
	overlapping []*domain.TimeSlot
	createErr   error
	created     *domain.TimeSlot
}

func (m *slotRepoMock) FindOverlapping(_ context.Context, _ int64, _ *int64, _ time.Time, _, _ types.TimeString, _ *int64) ([]*domain.TimeSlot, error) {
	return m.overlapping, nil
}

func (m *slotRepoMock) Create(_ context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	slot.ID = 1001
	m.created = slot
	return slot, nil
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

func validRequest() *Request {
	return &Request{
		PartnerID:  10,
		LocationID: 1,
		Date:       time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		StartTime:  "14:00",
		EndTime:    "14:45",
	}
}

func newTestUseCase(repo *slotRepoMock, loc *locationservice.Location, locErr error) *UseCase {
	return NewUseCase(repo, &locationClientMock{location: loc, err: locErr}, txManagerMock{}, noopLogger{})
}

func TestExecute_CreatesSlot(t *testing.T) {
	repo := &slotRepoMock{}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1001), resp.ID)
	assert.Equal(t, string(domain.StatusAvailable), resp.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, "14:00", repo.created.StartTime.String())
}

func TestExecute_Overlap(t *testing.T) {
	repo := &slotRepoMock{
		overlapping: []*domain.TimeSlot{{ID: 5, LocationID: 1, StartTime: "14:30", EndTime: "15:00"}},
	}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotOverlap)
	assert.Nil(t, repo.created)
}

func TestExecute_DuplicateKeyMapsToOverlap(t *testing.T) {
	// Уникальный индекс БД сработал под гонкой - для вызывающего это тот же конфликт
	repo := &slotRepoMock{createErr: slotRepository.ErrDuplicateSlot}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotOverlap)
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &slotRepoMock{}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 99}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_LocationNotFound(t *testing.T) {
	repo := &slotRepoMock{}
	uc := newTestUseCase(repo, nil, locationservice.ErrLocationNotFound)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestExecute_Validation(t *testing.T) {
	repo := &slotRepoMock{}
	uc := newTestUseCase(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"start equals end", func(r *Request) { r.EndTime = r.StartTime }},
		{"start after end", func(r *Request) { r.StartTime = "15:00"; r.EndTime = "14:00" }},
		{"bad time format", func(r *Request) { r.StartTime = "9:00" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"zero location", func(r *Request) { r.LocationID = 0 }},
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
