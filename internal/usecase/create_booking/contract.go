package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/directoryservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListForRoomDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error)
}

// RoomRepository интерфейс каталога комнат
type RoomRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Room, error)
}

// DirectoryServiceClient интерфейс клиента для DirectoryService
type DirectoryServiceClient interface {
	GetIndividual(ctx context.Context, individualID int64) (*directoryservice.Individual, error)
	GetTeam(ctx context.Context, teamID int64) (*directoryservice.Team, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator генератор публичных идентификаторов бронирований
// Инжектируется, чтобы admission-логика оставалась детерминированной в тестах
type IDGenerator interface {
	NewBookingID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
