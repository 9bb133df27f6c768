package slots

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/locationservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	GetByRange(ctx context.Context, filter domain.SlotRangeFilter) ([]*domain.TimeSlot, error)
	Book(ctx context.Context, id int64, bookingID int64) error
	Release(ctx context.Context, id int64) error
	Block(ctx context.Context, id int64) error
	Unblock(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// LocationServiceClient интерфейс клиента для LocationService
type LocationServiceClient interface {
	GetLocation(ctx context.Context, locationID int64) (*locationservice.Location, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
