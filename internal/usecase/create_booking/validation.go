package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// requesterIdentity разрешённый заказчик: ровно одно из полей заполнено
// (соответствует таггированному domain.Requester)
type requesterIdentity struct {
	Requester  domain.Requester
	Individual *domain.Individual
	Team       *domain.Team
}

// Name возвращает имя заказчика для денормализации в бронирование
func (r *requesterIdentity) Name() string {
	if r.Team != nil {
		return r.Team.Name
	}
	return r.Individual.Name
}

// OccupancySeats возвращает число мест shared desk, занимаемых заказчиком
func (r *requesterIdentity) OccupancySeats() int {
	if r.Team != nil {
		return domain.TeamOccupancy(*r.Team)
	}
	return domain.IndividualOccupancy(*r.Individual)
}

// validateRequest валидирует форму входных данных запроса
func validateRequest(req *Request) error {
	if req.RoomCode == "" {
		return fmt.Errorf("%w: roomCode is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// resolveRequesterRef превращает nullable пару полей запроса в таггированный
// domain.Requester (шаг 1 admission-проверок)
// Выполняется раньше всех остальных проверок: запрос одновременно с
// individualId и teamId отклоняется до любых обращений к хранилищу
func resolveRequesterRef(req *Request) (domain.Requester, error) {
	switch {
	case req.IndividualID == nil && req.TeamID == nil:
		return domain.Requester{}, ErrMissingRequester
	case req.IndividualID != nil && req.TeamID != nil:
		return domain.Requester{}, ErrAmbiguousRequester
	case req.IndividualID != nil:
		return domain.Requester{Kind: domain.RequesterIndividual, ID: *req.IndividualID}, nil
	default:
		return domain.Requester{Kind: domain.RequesterTeam, ID: *req.TeamID}, nil
	}
}

// validateBusinessHours проверяет рабочие часы (шаг 2 admission-проверок)
// Границы включительно: бронирование ровно 09:00-18:00 допустимо
func validateBusinessHours(interval domain.Interval) error {
	if interval.Start.IsBefore(domain.BusinessHoursOpen) || interval.End.IsAfter(domain.BusinessHoursClose) {
		return fmt.Errorf("%w: got %s-%s", ErrOutOfHours, interval.Start, interval.End)
	}
	return nil
}

// validateInterval проверяет порядок границ интервала (шаг 3 admission-проверок)
func validateInterval(interval domain.Interval) error {
	if !interval.End.IsAfter(interval.Start) {
		return fmt.Errorf("%w: got %s-%s", ErrInvalidInterval, interval.Start, interval.End)
	}
	return nil
}

// validateEligibility проверяет совместимость типа комнаты и заказчика,
// шаг 4 admission-проверок:
// - private: только индивидуальные бронирования
// - conference: только команды от MinConferenceTeamSize человек (дети учитываются)
// - shared desk: ограничений нет, работает только capacity
func validateEligibility(room *domain.Room, identity *requesterIdentity) error {
	switch {
	case room.IsPrivate():
		if identity.Team != nil {
			return fmt.Errorf("%w: private room %s can only be booked by an individual", ErrIneligibleRequester, room.Code)
		}

	case room.IsConference():
		if identity.Individual != nil {
			return fmt.Errorf("%w: conference room %s can only be booked by a team", ErrIneligibleRequester, room.Code)
		}
		if !identity.Team.IsEligibleForConferenceRoom() {
			return fmt.Errorf("%w: conference room %s requires a team of at least %d members, got %d",
				ErrIneligibleRequester, room.Code, domain.MinConferenceTeamSize, identity.Team.MemberCount())
		}
	}

	return nil
}

// validateConflicts проверяет конфликт с активными бронированиями (шаг 5):
// эксклюзивные комнаты отклоняют любое пересечение, shared desk только превышение capacity
// Попутно проверяется инвариант хранилища: пересекающиеся активные бронирования
// эксклюзивной комнаты означают повреждённые данные
func validateConflicts(room *domain.Room, bookings []*domain.Booking, interval domain.Interval, proposedSeats int) error {
	if room.IsExclusive() {
		if err := domain.CheckExclusiveIntegrity(bookings); err != nil {
			return fmt.Errorf("%w: room %s: %v", ErrDataIntegrity, room.Code, err)
		}

		overlapping := domain.FindOverlapping(bookings, interval, "")
		if len(overlapping) > 0 {
			return fmt.Errorf("%w: booking %s", ErrSlotConflict, overlapping[0].BookingID)
		}
		return nil
	}

	occupied := domain.CurrentOccupancy(bookings, interval, "")
	if occupied+proposedSeats > room.Capacity {
		return fmt.Errorf("%w: %d/%d seats taken, requested %d", ErrCapacityExceeded, occupied, room.Capacity, proposedSeats)
	}

	return nil
}

// validateBooking прогоняет полную цепочку admission-проверок в порядке
// шагов 1-5, останавливаясь на первой ошибке
// Вызывается внутри сериализуемой транзакции: при конфликте сериализации
// перезапуск транзакции повторяет всю цепочку, а не только запись
func validateBooking(req *Request, room *domain.Room, identity *requesterIdentity, bookings []*domain.Booking) error {
	// Шаг 1 (ровно один заказчик) выполнен при разрешении identity
	interval := domain.Interval{Start: req.StartTime, End: req.EndTime}

	if err := validateBusinessHours(interval); err != nil {
		return err
	}
	if err := validateInterval(interval); err != nil {
		return err
	}
	if err := validateEligibility(room, identity); err != nil {
		return err
	}
	return validateConflicts(room, bookings, interval, identity.OccupancySeats())
}
