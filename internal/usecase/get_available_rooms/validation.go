package get_available_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// validateRequest проверяет форму входных данных
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}
	if req.RoomType != nil {
		if _, err := domain.ParseRoomType(string(*req.RoomType)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return nil
}

// validateBusinessHours проверяет, что интервал целиком в рабочих часах.
// Границы 09:00 и 18:00 включительно.
func validateBusinessHours(interval domain.Interval) error {
	if interval.Start.IsBefore(domain.BusinessHoursOpen) || interval.End.IsAfter(domain.BusinessHoursClose) {
		return fmt.Errorf("%w: %s-%s is outside %s-%s",
			ErrOutOfHours, interval.Start, interval.End,
			domain.BusinessHoursOpen, domain.BusinessHoursClose)
	}
	return nil
}

// validateInterval проверяет, что конец интервала строго позже начала
func validateInterval(interval domain.Interval) error {
	if !interval.End.IsAfter(interval.Start) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidInterval, interval.Start, interval.End)
	}
	return nil
}
