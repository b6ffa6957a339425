package list_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms"
)

const (
	msgInvalidQueryParams = "некорректные параметры фильтрации"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
// Query params: roomType (optional), includeInactive (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var roomType *string
	if typeStr := query.Get("roomType"); typeStr != "" {
		roomType = &typeStr
	}

	includeInactive := false
	if inactiveStr := query.Get("includeInactive"); inactiveStr != "" {
		parsed, err := strconv.ParseBool(inactiveStr)
		if err != nil {
			h.logger.Warn("GET /rooms - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)
			return
		}
		includeInactive = parsed
	}

	result, err := h.service.List(r.Context(), roomType, includeInactive)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms - Invalid room type: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms - %d rooms retrieved", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
