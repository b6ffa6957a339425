package get_available_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// roomAvailability вычисляет доступность одной комнаты на интервале.
// Возвращает (nil, nil), если комната недоступна.
func roomAvailability(room *domain.Room, bookings []*domain.Booking, interval domain.Interval) (*AvailableRoom, error) {
	if room.IsExclusive() {
		// Для эксклюзивных комнат активные брони не должны пересекаться между собой
		if err := domain.CheckExclusiveIntegrity(bookings); err != nil {
			return nil, fmt.Errorf("%w: room %s: %v", ErrDataIntegrity, room.Code, err)
		}
		if len(domain.FindOverlapping(bookings, interval, "")) > 0 {
			return nil, nil
		}
		return &AvailableRoom{
			RoomCode:          room.Code,
			RoomType:          room.Type,
			Capacity:          room.Capacity,
			OccupiedSeats:     0,
			AvailableCapacity: room.Capacity,
		}, nil
	}

	occupied := domain.CurrentOccupancy(bookings, interval, "")
	remaining := room.Capacity - occupied
	if remaining <= 0 {
		return nil, nil
	}
	return &AvailableRoom{
		RoomCode:          room.Code,
		RoomType:          room.Type,
		Capacity:          room.Capacity,
		OccupiedSeats:     occupied,
		AvailableCapacity: remaining,
	}, nil
}
