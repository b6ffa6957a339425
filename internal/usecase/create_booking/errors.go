package create_booking

import "errors"

var (
	// ErrMissingRequester возвращается, когда не указан ни пользователь, ни команда
	ErrMissingRequester = errors.New("create_booking: booking must have either an individual or a team")

	// ErrAmbiguousRequester возвращается, когда указаны и пользователь, и команда
	ErrAmbiguousRequester = errors.New("create_booking: booking cannot have both an individual and a team")

	// ErrOutOfHours возвращается, когда интервал выходит за рабочие часы 09:00-18:00
	ErrOutOfHours = errors.New("create_booking: bookings are only allowed between 09:00 and 18:00")

	// ErrInvalidInterval возвращается, когда конец интервала не позже начала
	ErrInvalidInterval = errors.New("create_booking: end time must be after start time")

	// ErrIneligibleRequester возвращается при несовместимости типа комнаты и заказчика:
	// private принимает только индивидуальные бронирования, conference только команды от 3 человек
	ErrIneligibleRequester = errors.New("create_booking: requester is not eligible for this room type")

	// ErrSlotConflict возвращается, когда интервал пересекается с существующим
	// активным бронированием эксклюзивной комнаты; содержит идентификатор конфликта
	ErrSlotConflict = errors.New("create_booking: time slot conflicts with an existing booking")

	// ErrCapacityExceeded возвращается, когда shared desk не вмещает заказчика;
	// содержит текущую занятость и вместимость
	ErrCapacityExceeded = errors.New("create_booking: shared desk capacity exceeded")

	// ErrRoomNotFound возвращается, когда комната не найдена или выключена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrIndividualNotFound возвращается, когда пользователь не найден в DirectoryService
	ErrIndividualNotFound = errors.New("create_booking: individual not found")

	// ErrTeamNotFound возвращается, когда команда не найдена в DirectoryService
	ErrTeamNotFound = errors.New("create_booking: team not found")

	// ErrDataIntegrity возвращается при обнаружении нарушенного инварианта в хранилище
	// (пересекающиеся активные бронирования эксклюзивной комнаты)
	// Фатальная ошибка консистентности: логируется и поднимается, не чинится молча
	ErrDataIntegrity = errors.New("create_booking: data integrity violation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
