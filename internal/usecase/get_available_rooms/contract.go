package get_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListForRoomDate получает все активные бронирования комнаты на дату
	ListForRoomDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error)
}

// RoomRepository интерфейс каталога комнат
type RoomRepository interface {
	// List получает комнаты с опциональным фильтром по типу, в порядке кода
	List(ctx context.Context, roomType *domain.RoomType, activeOnly bool) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
