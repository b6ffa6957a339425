package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	Code     string `json:"code"`
	RoomType string `json:"roomType"`
	Capacity int    `json:"capacity"`
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	Code      string    `json:"code"`
	RoomType  string    `json:"roomType"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		Code:      r.Code,
		RoomType:  string(r.Type),
		Capacity:  r.Capacity,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}
