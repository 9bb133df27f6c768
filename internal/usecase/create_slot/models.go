package create_slot

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на ручное создание слота
type Request struct {
	PartnerID  int64            // ID партнера, выполняющего запрос
	LocationID int64            // ID локации
	StaffID    *int64           // Сотрудник (опционально)
	Date       time.Time        // Дата слота
	StartTime  types.TimeString // Время начала
	EndTime    types.TimeString // Время окончания
}

// Response модель ответа с созданным слотом
type Response struct {
	ID         int64
	LocationID int64
	StaffID    *int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
