package get_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getAvailableRooms "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// AvailableRoomResponse HTTP модель доступной комнаты
type AvailableRoomResponse struct {
	RoomCode          string `json:"roomCode"`
	RoomType          string `json:"roomType"`
	Capacity          int    `json:"capacity"`
	OccupiedSeats     int    `json:"occupiedSeats"`
	AvailableCapacity int    `json:"availableCapacity"`
}

// AvailableRoomsResponse HTTP модель списка доступных комнат
type AvailableRoomsResponse struct {
	Date      string                  `json:"date"`
	StartTime string                  `json:"startTime"`
	EndTime   string                  `json:"endTime"`
	Rooms     []AvailableRoomResponse `json:"rooms"`
}

// ToUseCaseRequest собирает запрос use case из query параметров
func ToUseCaseRequest(dateStr, startStr, endStr, roomTypeStr string) (*getAvailableRooms.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(endStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableRooms.Request{
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}

	if roomTypeStr != "" {
		roomType, err := domain.ParseRoomType(roomTypeStr)
		if err != nil {
			return nil, err
		}
		req.RoomType = &roomType
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]AvailableRoomResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, AvailableRoomResponse{
			RoomCode:          room.RoomCode,
			RoomType:          string(room.RoomType),
			Capacity:          room.Capacity,
			OccupiedSeats:     room.OccupiedSeats,
			AvailableCapacity: room.AvailableCapacity,
		})
	}

	return &AvailableRoomsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Rooms:     rooms,
	}
}
