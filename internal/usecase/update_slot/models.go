package update_slot

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на редактирование слота
type Request struct {
	PartnerID int64            // ID партнера, выполняющего запрос
	SlotID    int64            // ID редактируемого слота
	StaffID   *int64           // Новый сотрудник (опционально)
	Date      time.Time        // Новая дата слота
	StartTime types.TimeString // Новое время начала
	EndTime   types.TimeString // Новое время окончания
}

// Response модель ответа с обновленным слотом
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
