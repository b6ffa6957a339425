package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

// Service сервис для работы с каталогом комнат
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Create создает новую комнату в каталоге
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room code=%s, type=%s, capacity=%d", req.Code, req.RoomType, req.Capacity)

	roomType, err := domain.ParseRoomType(req.RoomType)
	if err != nil {
		s.logger.Warn("Create: invalid room type %s", req.RoomType)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Code == "" {
		s.logger.Warn("Create: empty room code")
		return nil, fmt.Errorf("%w: room code is required", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		s.logger.Warn("Create: invalid capacity %d for room %s", req.Capacity, req.Code)
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	// Приватные комнаты одноместные
	if roomType == domain.RoomTypePrivate && req.Capacity != 1 {
		s.logger.Warn("Create: private room %s must have capacity 1, got %d", req.Code, req.Capacity)
		return nil, fmt.Errorf("%w: private rooms have capacity 1", ErrInvalidInput)
	}

	room := &domain.Room{
		Code:     req.Code,
		Type:     roomType,
		Capacity: req.Capacity,
		IsActive: true,
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateCode) {
			s.logger.Warn("Create: room code=%s already exists", req.Code)
			return nil, ErrRoomAlreadyExists
		}
		s.logger.Error("Create: repository error for room code=%s: %v", req.Code, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room code=%s", created.Code)
	return models.FromDomainRoom(created), nil
}

// GetByCode получает комнату по коду
func (s *Service) GetByCode(ctx context.Context, code string) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByCode: room code=%s not found", code)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByCode: repository error for room code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// List получает комнаты каталога с опциональным фильтром по типу
func (s *Service) List(ctx context.Context, roomType *string, includeInactive bool) (*models.RoomListResponse, error) {
	var domainType *domain.RoomType
	if roomType != nil {
		parsed, err := domain.ParseRoomType(*roomType)
		if err != nil {
			s.logger.Warn("List: invalid room type %s", *roomType)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		domainType = &parsed
	}

	rooms, err := s.roomRepo.List(ctx, domainType, !includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// SetActive включает или выключает комнату в каталоге.
// Выключенная комната не участвует в новых бронированиях, существующие не трогаются.
func (s *Service) SetActive(ctx context.Context, code string, active bool) error {
	s.logger.Info("SetActive: setting room code=%s active=%t", code, active)

	if err := s.roomRepo.SetActive(ctx, code, active); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("SetActive: room code=%s not found", code)
			return ErrRoomNotFound
		}
		s.logger.Error("SetActive: repository error for room code=%s: %v", code, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	return nil
}
