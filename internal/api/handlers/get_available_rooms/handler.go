package get_available_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_rooms"
)

const (
	msgMissingDate     = "дата обязательна"
	msgMissingInterval = "startTime и endTime обязательны"
	msgInvalidQuery    = "некорректные параметры запроса, ожидается YYYY-MM-DD и HH:MM"
	msgOutOfHours      = "интервал выходит за рабочие часы 09:00-18:00"
	msgInvalidInterval = "время конца должно быть позже времени начала"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available
// Query params: date (required, YYYY-MM-DD), startTime и endTime (required, HH:MM), roomType (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/available - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	startStr := query.Get("startTime")
	endStr := query.Get("endTime")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /rooms/available - Missing interval bounds")
		handlers.RespondBadRequest(w, msgMissingInterval)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, startStr, endStr, query.Get("roomType"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrOutOfHours):
			h.logger.Warn("GET /rooms/available - Out of hours: interval=%s-%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, getAvailableRooms.ErrInvalidInterval):
			h.logger.Warn("GET /rooms/available - Invalid interval: interval=%s-%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /rooms/available - Failed to get available rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rooms/available - %d rooms available for %s %s-%s",
		len(result.Rooms), dateStr, startStr, endStr)
	handlers.RespondJSON(w, http.StatusOK, response)
}
