package generate_slots

import "time"

// Request модель запроса на генерацию слотов
type Request struct {
	PartnerID           int64     // ID партнера, выполняющего запрос (для проверки прав)
	LocationID          int64     // ID локации
	StartDate           time.Time // Начало диапазона (включительно)
	EndDate             time.Time // Конец диапазона (включительно)
	SlotDurationMinutes int       // Длительность слота в минутах
	StaffID             *int64    // Сотрудник (опционально)
}

// Response модель ответа генерации
type Response struct {
	LocationID   int64     // ID локации
	StartDate    time.Time // Начало диапазона
	EndDate      time.Time // Конец диапазона
	SlotsCreated int64     // Количество созданных слотов
	SlotsDeleted int64     // Количество удаленных незабронированных слотов
}
