package domain

import (
	"fmt"
	"time"
)

// RoomType represents the category of a room in the workspace inventory
type RoomType string

const (
	RoomTypePrivate    RoomType = "PRIVATE"
	RoomTypeConference RoomType = "CONFERENCE"
	RoomTypeShared     RoomType = "SHARED"
)

// ParseRoomType парсит тип комнаты из строки запроса
func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomTypePrivate, RoomTypeConference, RoomTypeShared:
		return RoomType(s), nil
	default:
		return "", fmt.Errorf("unknown room type: %q", s)
	}
}

// Room represents a bookable room in the fixed workspace inventory
type Room struct {
	ID       int64
	Code     string // Уникальный код комнаты (P01, C03, S02)
	Type     RoomType
	Capacity int // Для shared desk число мест, для остальных вместимость
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPrivate returns true if the room is a private room
func (r *Room) IsPrivate() bool {
	return r.Type == RoomTypePrivate
}

// IsConference returns true if the room is a conference room
func (r *Room) IsConference() bool {
	return r.Type == RoomTypeConference
}

// IsShared returns true if the room is a shared desk
func (r *Room) IsShared() bool {
	return r.Type == RoomTypeShared
}

// IsExclusive returns true if a single active booking occupies the whole room.
// Private and conference rooms are exclusive regardless of numeric capacity;
// only shared desks count concurrent occupancy against capacity.
func (r *Room) IsExclusive() bool {
	return r.Type == RoomTypePrivate || r.Type == RoomTypeConference
}
