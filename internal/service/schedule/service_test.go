package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule/models"
)

type hoursRepoMock struct {
	week       []*domain.OperatingHours
	replaceErr error
	replaced   []*domain.OperatingHours
}

func (m *hoursRepoMock) FindByLocationID(_ context.Context, _ int64) ([]*domain.OperatingHours, error) {
	return m.week, nil
}

func (m *hoursRepoMock) ReplaceForLocation(_ context.Context, _ int64, week []*domain.OperatingHours) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaced = week
	m.week = week
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

func (txManagerMock) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(repo *hoursRepoMock, loc *locationservice.Location, locErr error) *Service {
	return NewService(repo, &locationClientMock{location: loc, err: locErr}, txManagerMock{}, noopLogger{})
}

func validRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		PartnerID:  10,
		LocationID: 1,
		Days: []models.DayScheduleInput{
			{DayOfWeek: domain.Monday, OpenTime: "09:00", CloseTime: "18:00"},
			{DayOfWeek: domain.Saturday, OpenTime: "10:00", CloseTime: "16:00"},
			{DayOfWeek: domain.Sunday, IsClosed: true},
		},
	}
}

func TestGetByLocation(t *testing.T) {
	repo := &hoursRepoMock{
		week: []*domain.OperatingHours{
			{LocationID: 1, DayOfWeek: domain.Monday, OpenTime: "09:00", CloseTime: "18:00", UpdatedAt: time.Now()},
			{LocationID: 1, DayOfWeek: domain.Sunday, IsClosed: true, UpdatedAt: time.Now()},
		},
	}
	svc := newTestService(repo, nil, nil)

	resp, err := svc.GetByLocation(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, "09:00", resp.Days[0].OpenTime)
	assert.True(t, resp.Days[1].IsClosed)
	assert.Empty(t, resp.Days[1].OpenTime)
}

func TestGetByLocation_EmptySchedule(t *testing.T) {
	svc := newTestService(&hoursRepoMock{}, nil, nil)

	resp, err := svc.GetByLocation(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestReplaceWeek(t *testing.T) {
	repo := &hoursRepoMock{}
	svc := newTestService(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	resp, err := svc.ReplaceWeek(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, repo.replaced, 3)
	assert.Equal(t, domain.Monday, repo.replaced[0].DayOfWeek)
	assert.Len(t, resp.Days, 3)
}

func TestReplaceWeek_AccessDenied(t *testing.T) {
	repo := &hoursRepoMock{}
	svc := newTestService(repo, &locationservice.Location{ID: 1, PartnerID: 99}, nil)

	_, err := svc.ReplaceWeek(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.replaced)
}

func TestReplaceWeek_LocationNotFound(t *testing.T) {
	repo := &hoursRepoMock{}
	svc := newTestService(repo, nil, locationservice.ErrLocationNotFound)

	_, err := svc.ReplaceWeek(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestReplaceWeek_Validation(t *testing.T) {
	repo := &hoursRepoMock{}
	svc := newTestService(repo, &locationservice.Location{ID: 1, PartnerID: 10}, nil)

	tests := []struct {
		name    string
		mutate  func(*models.UpdateScheduleRequest)
		wantErr error
	}{
		{"duplicate day", func(r *models.UpdateScheduleRequest) {
			r.Days = append(r.Days, models.DayScheduleInput{DayOfWeek: domain.Monday, OpenTime: "10:00", CloseTime: "12:00"})
		}, ErrDuplicateDay},
		{"day out of range", func(r *models.UpdateScheduleRequest) {
			r.Days[0].DayOfWeek = 7
		}, ErrInvalidInput},
		{"open after close", func(r *models.UpdateScheduleRequest) {
			r.Days[0].OpenTime = "18:00"
			r.Days[0].CloseTime = "09:00"
		}, ErrInvalidInput},
		{"no days", func(r *models.UpdateScheduleRequest) {
			r.Days = nil
		}, ErrInvalidInput},
		{"closed day skips window check", func(r *models.UpdateScheduleRequest) {
			r.Days[0] = models.DayScheduleInput{DayOfWeek: domain.Monday, IsClosed: true}
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := svc.ReplaceWeek(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
