package locationservice

// Location модель локации из LocationService
// PartnerID - владелец локации, используется для проверки прав доступа
type Location struct {
	ID        int64  `json:"id"`
	PartnerID int64  `json:"partner_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Timezone  string `json:"timezone"`
	IsActive  bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от LocationService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
