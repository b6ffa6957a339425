package domain

import "github.com/m04kA/SMC-RoomBookingService/pkg/types"

// Business rules
const (
	// BusinessHoursOpen начало рабочего дня: бронирования не могут начинаться раньше
	BusinessHoursOpen types.TimeString = "09:00"

	// BusinessHoursClose конец рабочего дня: бронирования не могут заканчиваться позже
	BusinessHoursClose types.TimeString = "18:00"

	// MinConferenceTeamSize минимальный размер команды для конференц-зала
	MinConferenceTeamSize = 3

	// ChildAgeLimit возраст, до которого участник считается ребенком
	// Дети не занимают мест shared desk, но учитываются в размере команды
	ChildAgeLimit = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы бронирований, не участвующих в проверках конфликтов
// Используется при фильтрации активного набора бронирований
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}
