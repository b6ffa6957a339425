package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "ACTIVE"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// Booking represents a room reservation in the system
type Booking struct {
	ID        int64  // Внутренний суррогатный ключ
	BookingID string // Публичный непрозрачный идентификатор, выдается генератором при admission

	RoomID int64
	Date   time.Time // Дата бронирования (без времени)

	StartTime types.TimeString
	EndTime   types.TimeString

	RequesterKind RequesterKind
	RequesterID   int64

	// Denormalized data for history and capacity accounting
	RoomCode       string
	RoomType       RoomType
	RequesterName  string
	OccupancySeats int // Снимок occupancy на момент admission: взрослые команды / 1 / 0 для ребенка

	Status      BookingStatus
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in conflict and capacity checks
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the booking has run its course
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking may transition to Cancelled.
// The transition is one-way: cancelled and completed bookings stay terminal.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// Interval возвращает временной интервал бронирования
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// IsTeamBooking returns true if the booking was made for a team
func (b *Booking) IsTeamBooking() bool {
	return b.RequesterKind == RequesterTeam
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	Date            *time.Time     // Фильтр по дате (опционально)
	RoomID          *int64         // Фильтр по комнате (опционально)
	RoomType        *RoomType      // Фильтр по типу комнаты (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	RequesterKind   *RequesterKind // Фильтр по типу заказчика (опционально)
	RequesterID     *int64         // Фильтр по заказчику (опционально)
	IncludeInactive bool           // Включать ли отмененные и завершенные бронирования
}
