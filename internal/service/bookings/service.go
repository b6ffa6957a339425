package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByBookingID получает бронирование по публичному идентификатору
func (s *Service) GetByBookingID(ctx context.Context, bookingID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByBookingID: fetching booking %s", bookingID)

	booking, err := s.bookingRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByBookingID: booking %s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByBookingID: repository error for booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
//
// Примеры использования:
// - Все активные бронирования: List(ctx, &GetBookingsRequest{})
// - Бронирования на дату: указать Date
// - Бронирования команд: указать RequesterKind = "TEAM"
// - Включая отменённые: IncludeInactive = true
func (s *Service) List(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	if req == nil {
		req = &models.GetBookingsRequest{}
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет активное бронирование.
// Переход статуса односторонний: отменённое бронирование нельзя вернуть в активное.
func (s *Service) Cancel(ctx context.Context, bookingID string) error {
	s.logger.Info("Cancel: cancelling booking %s", bookingID)

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByBookingID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if booking.IsCancelled() {
			return ErrAlreadyCancelled
		}
		if !booking.CanBeCancelled() {
			return fmt.Errorf("%w: status=%s", ErrCannotCancel, booking.Status)
		}

		return s.bookingRepo.Cancel(ctx, bookingID)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("Cancel: booking %s not found", bookingID)
		case errors.Is(err, ErrAlreadyCancelled):
			s.logger.Warn("Cancel: booking %s is already cancelled", bookingID)
		case errors.Is(err, ErrCannotCancel):
			s.logger.Warn("Cancel: booking %s cannot be cancelled: %v", bookingID, err)
		default:
			s.logger.Error("Cancel: failed to cancel booking %s: %v", bookingID, err)
		}
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking %s", bookingID)
	return nil
}
