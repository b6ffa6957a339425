package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingRequester    = "необходимо указать individualId или teamId"
	msgAmbiguousRequester  = "нельзя указывать individualId и teamId одновременно"
	msgOutOfHours          = "интервал выходит за рабочие часы 09:00-18:00"
	msgInvalidInterval     = "время конца должно быть позже времени начала"
	msgIneligibleRequester = "заказчик не подходит для этого типа комнаты"
	msgSlotConflict        = "комната занята на выбранный интервал"
	msgCapacityExceeded    = "недостаточно свободных мест в комнате"
	msgRoomNotFound        = "комната не найдена"
	msgIndividualNotFound  = "пользователь не найден"
	msgTeamNotFound        = "команда не найдена"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrMissingRequester):
			h.logger.Warn("POST /bookings - Missing requester: room=%s", req.RoomCode)
			handlers.RespondBadRequest(w, msgMissingRequester)

		case errors.Is(err, createBooking.ErrAmbiguousRequester):
			h.logger.Warn("POST /bookings - Ambiguous requester: room=%s", req.RoomCode)
			handlers.RespondBadRequest(w, msgAmbiguousRequester)

		case errors.Is(err, createBooking.ErrOutOfHours):
			h.logger.Warn("POST /bookings - Out of hours: room=%s, interval=%s-%s",
				req.RoomCode, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: room=%s, interval=%s-%s",
				req.RoomCode, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrIneligibleRequester):
			h.logger.Warn("POST /bookings - Ineligible requester: room=%s, error=%v", req.RoomCode, err)
			handlers.RespondBadRequest(w, msgIneligibleRequester)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: room=%s, interval=%s-%s",
				req.RoomCode, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: room=%s, interval=%s-%s",
				req.RoomCode, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room=%s", req.RoomCode)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrIndividualNotFound):
			h.logger.Warn("POST /bookings - Individual not found: room=%s", req.RoomCode)
			handlers.RespondNotFound(w, msgIndividualNotFound)

		case errors.Is(err, createBooking.ErrTeamNotFound):
			h.logger.Warn("POST /bookings - Team not found: room=%s", req.RoomCode)
			handlers.RespondNotFound(w, msgTeamNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room=%s, error=%v", req.RoomCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room=%s",
		result.BookingID, result.RoomCode)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
