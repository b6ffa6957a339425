package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр бронирований из query параметров
func ToServiceRequest(query url.Values) (*models.GetBookingsRequest, error) {
	req := &models.GetBookingsRequest{}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if roomType := query.Get("roomType"); roomType != "" {
		req.RoomType = &roomType
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if kind := query.Get("requesterKind"); kind != "" {
		req.RequesterKind = &kind
	}

	if idStr := query.Get("requesterId"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RequesterID = &id
	}

	if inactiveStr := query.Get("includeInactive"); inactiveStr != "" {
		includeInactive, err := strconv.ParseBool(inactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
