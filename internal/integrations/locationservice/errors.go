package locationservice

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("location not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("locationservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("locationservice client: invalid response")
)
