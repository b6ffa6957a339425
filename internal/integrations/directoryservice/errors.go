package directoryservice

import "errors"

var (
	// ErrIndividualNotFound возвращается, когда пользователь не найден
	ErrIndividualNotFound = errors.New("directoryservice client: individual not found")

	// ErrTeamNotFound возвращается, когда команда не найдена
	ErrTeamNotFound = errors.New("directoryservice client: team not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directoryservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("directoryservice client: invalid response")
)
