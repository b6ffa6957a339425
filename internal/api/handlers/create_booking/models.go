package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomCode     string `json:"roomCode"`
	Date         string `json:"date"`      // "2026-08-28"
	StartTime    string `json:"startTime"` // "10:00"
	EndTime      string `json:"endTime"`   // "11:30"
	IndividualID *int64 `json:"individualId,omitempty"`
	TeamID       *int64 `json:"teamId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID      string `json:"bookingId"`
	RoomCode       string `json:"roomCode"`
	RoomType       string `json:"roomType"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Status         string `json:"status"`
	RequesterKind  string `json:"requesterKind"`
	RequesterID    int64  `json:"requesterId"`
	RequesterName  string `json:"requesterName"`
	OccupancySeats int    `json:"occupancySeats"`
	CreatedAt      string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomCode:     r.RoomCode,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		IndividualID: r.IndividualID,
		TeamID:       r.TeamID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:      resp.BookingID,
		RoomCode:       resp.RoomCode,
		RoomType:       resp.RoomType,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Status:         resp.Status,
		RequesterKind:  resp.RequesterKind,
		RequesterID:    resp.RequesterID,
		RequesterName:  resp.RequesterName,
		OccupancySeats: resp.OccupancySeats,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
