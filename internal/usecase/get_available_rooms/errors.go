package get_available_rooms

import "errors"

var (
	// ErrOutOfHours возвращается, когда запрошенный интервал выходит за рабочие часы
	ErrOutOfHours = errors.New("get_available_rooms: interval is outside business hours")

	// ErrInvalidInterval возвращается, когда конец интервала не позже начала
	ErrInvalidInterval = errors.New("get_available_rooms: end time must be after start time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_rooms: invalid input data")

	// ErrDataIntegrity возвращается при обнаружении пересечения активных броней
	// в комнате с эксклюзивным доступом
	ErrDataIntegrity = errors.New("get_available_rooms: stored bookings violate exclusivity")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_rooms: internal error")
)
