package rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomRepository интерфейс каталога комнат
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByCode(ctx context.Context, code string) (*domain.Room, error)
	List(ctx context.Context, roomType *domain.RoomType, activeOnly bool) ([]*domain.Room, error)
	SetActive(ctx context.Context, code string, active bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
