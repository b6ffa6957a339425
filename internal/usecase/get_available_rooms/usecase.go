package get_available_rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// UseCase use case для подбора доступных комнат на интервал
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Execute выполняет use case подбора доступных комнат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация формы входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableRooms: date=%s, interval=%s-%s, type=%v",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.RoomType)

	// 2. Рабочие часы и порядок границ интервала
	interval := domain.Interval{Start: req.StartTime, End: req.EndTime}
	if err := validateBusinessHours(interval); err != nil {
		uc.logger.Warn("GetAvailableRooms: %v", err)
		return nil, err
	}
	if err := validateInterval(interval); err != nil {
		uc.logger.Warn("GetAvailableRooms: %v", err)
		return nil, err
	}

	// 3. Активные комнаты каталога в порядке кода, с опциональным фильтром по типу
	rooms, err := uc.roomRepo.List(ctx, req.RoomType, true)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 4. Доступность каждой комнаты на интервале
	available := make([]AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		bookings, err := uc.bookingRepo.ListForRoomDate(ctx, room.ID, req.Date)
		if err != nil {
			uc.logger.Error("GetAvailableRooms: failed to list bookings for room %s: %v", room.Code, err)
			return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		entry, err := roomAvailability(room, bookings, interval)
		if err != nil {
			if errors.Is(err, ErrDataIntegrity) {
				uc.logger.Error("GetAvailableRooms: %v", err)
			}
			return nil, err
		}
		if entry != nil {
			available = append(available, *entry)
		}
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms available", len(available), len(rooms))

	return &Response{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Rooms:     available,
	}, nil
}
