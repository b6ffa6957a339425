package get_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на подбор доступных комнат
type Request struct {
	Date      time.Time        // Дата, на которую ищутся комнаты (без времени)
	StartTime types.TimeString // Начало интересующего интервала
	EndTime   types.TimeString // Конец интересующего интервала
	RoomType  *domain.RoomType // Опциональный фильтр по типу комнаты
}

// Response модель ответа со списком доступных комнат
type Response struct {
	Date      time.Time        // Дата запроса
	StartTime types.TimeString // Начало интервала
	EndTime   types.TimeString // Конец интервала
	Rooms     []AvailableRoom  // Доступные комнаты в порядке кода
}

// AvailableRoom модель доступной комнаты на интервал
type AvailableRoom struct {
	RoomCode          string          // Код комнаты (например, "S01")
	RoomType          domain.RoomType // Тип комнаты
	Capacity          int             // Полная вместимость
	OccupiedSeats     int             // Занятые места на интервале
	AvailableCapacity int             // Свободные места на интервале
}
