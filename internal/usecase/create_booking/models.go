package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
// IndividualID и TeamID: nullable пара только на границе запроса,
// первая проверка admission превращает её в таггированный domain.Requester,
// и дальше код работает исключительно с ним
type Request struct {
	RoomCode  string           // Код комнаты (P01, C03, S02)
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала, например "10:00"
	EndTime   types.TimeString // Время конца, например "11:30"

	IndividualID *int64 // ID пользователя (ровно одно из двух полей)
	TeamID       *int64 // ID команды
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID string           // Публичный идентификатор бронирования
	RoomCode  string           // Код комнаты
	RoomType  string           // Тип комнаты
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
	Status    string           // Статус бронирования

	// Денормализованные данные заказчика
	RequesterKind  string // INDIVIDUAL или TEAM
	RequesterID    int64
	RequesterName  string
	OccupancySeats int // Занимаемые места shared desk (0 для ребенка)

	CreatedAt time.Time
}
