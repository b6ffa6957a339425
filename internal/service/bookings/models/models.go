package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidRequesterKind возвращается при некорректном типе заказчика
	ErrInvalidRequesterKind = errors.New("invalid requester kind")
)

// Request модели

// GetBookingsRequest запрос на получение бронирований с фильтрацией
type GetBookingsRequest struct {
	Date            *time.Time `json:"date,omitempty"`            // Фильтр по дате (опционально)
	RoomType        *string    `json:"roomType,omitempty"`        // Фильтр по типу комнаты (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	RequesterKind   *string    `json:"requesterKind,omitempty"`   // Фильтр по типу заказчика (опционально)
	RequesterID     *int64     `json:"requesterId,omitempty"`     // Фильтр по ID заказчика (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:            r.Date,
		RequesterID:     r.RequesterID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.RoomType != nil {
		roomType, err := domain.ParseRoomType(*r.RoomType)
		if err != nil {
			return filter, err
		}
		filter.RoomType = &roomType
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.RequesterKind != nil {
		kind, err := ToDomainRequesterKind(*r.RequesterKind)
		if err != nil {
			return filter, err
		}
		filter.RequesterKind = &kind
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	BookingID string `json:"bookingId"`
	RoomCode  string `json:"roomCode"`
	RoomType  string `json:"roomType"`
	Date      string `json:"date"`      // "2026-08-28"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:30"
	Status    string `json:"status"`

	// Денормализованные данные заказчика
	RequesterKind  string `json:"requesterKind"`
	RequesterID    int64  `json:"requesterId"`
	RequesterName  string `json:"requesterName"`
	OccupancySeats int    `json:"occupancySeats"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		BookingID:      b.BookingID,
		RoomCode:       b.RoomCode,
		RoomType:       string(b.RoomType),
		Date:           b.Date.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Status:         string(b.Status),
		RequesterKind:  string(b.RequesterKind),
		RequesterID:    b.RequesterID,
		RequesterName:  b.RequesterName,
		OccupancySeats: b.OccupancySeats,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusActive,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// ToDomainRequesterKind конвертирует строку в domain.RequesterKind с валидацией
func ToDomainRequesterKind(kind string) (domain.RequesterKind, error) {
	k := domain.RequesterKind(kind)

	switch k {
	case domain.RequesterIndividual, domain.RequesterTeam:
		return k, nil
	}

	return "", ErrInvalidRequesterKind
}
