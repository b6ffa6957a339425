package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	directoryClient "github.com/m04kA/SMC-RoomBookingService/internal/integrations/directoryservice"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

// UseCase use case для создания бронирования (admission-путь)
// Единственный способ появления бронирования в системе: запись, прошедшая
// мимо этих проверок, считается нарушением консистентности данных
type UseCase struct {
	bookingRepo     BookingRepository
	roomRepo        RoomRepository
	directoryClient DirectoryServiceClient
	txManager       TransactionManager
	idGenerator     IDGenerator
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	directoryClient DirectoryServiceClient,
	txManager TransactionManager,
	idGenerator IDGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		roomRepo:        roomRepo,
		directoryClient: directoryClient,
		txManager:       txManager,
		idGenerator:     idGenerator,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов и запись выполняются одной сериализуемой транзакцией
// на (комната, дата): конкурентные admission не могут вместе нарушить
// инварианты disjointness и capacity
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s, date=%s, interval=%s-%s",
		req.RoomCode, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация формы входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Ровно один заказчик: nullable пара превращается в таггированный Requester
	// Выполняется до любых обращений к каталогу и хранилищу
	requester, err := resolveRequesterRef(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: requester check failed: %v", err)
		return nil, err
	}

	// 3. Рабочие часы и порядок границ интервала, проверяются до обращений
	// к DirectoryService и каталогу: некорректный по форме запрос отклоняется
	// одинаково независимо от существования заказчика и комнаты
	interval := domain.Interval{Start: req.StartTime, End: req.EndTime}
	if err := validateBusinessHours(interval); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}
	if err := validateInterval(interval); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 4. Разрешаем заказчика через DirectoryService
	identity, err := uc.resolveIdentity(ctx, requester)
	if err != nil {
		return nil, err
	}

	// 5. Получаем комнату из каталога
	room, err := uc.roomRepo.GetByCode(ctx, req.RoomCode)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room %s not found", req.RoomCode)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room %s: %v", req.RoomCode, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// Выключенные комнаты не участвуют в бронировании
	if !room.IsActive {
		uc.logger.Warn("CreateBooking: room %s is inactive", req.RoomCode)
		return nil, ErrRoomNotFound
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Проверка конфликтов и запись в сериализуемой транзакции
	// При конфликте сериализации транзакция перезапускается целиком:
	// повторяется вся цепочка проверок над свежим набором бронирований
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Активные бронирования комнаты на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.ListForRoomDate(txCtx, room.ID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Полная цепочка admission-проверок (шаги 2-5 политики)
		if err := validateBooking(req, room, identity, bookings); err != nil {
			if errors.Is(err, ErrDataIntegrity) {
				uc.logger.Error("CreateBooking: %v", err)
			} else {
				uc.logger.Warn("CreateBooking: admission rejected: %v", err)
			}
			return err
		}

		// 6.3. Создаем бронирование с денормализацией данных заказчика
		booking := &domain.Booking{
			BookingID:     uc.idGenerator.NewBookingID(),
			RoomID:        room.ID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			RequesterKind: requester.Kind,
			RequesterID:   requester.ID,
			// Денормализация для истории и подсчета occupancy
			RoomCode:       room.Code,
			RoomType:       room.Type,
			RequesterName:  identity.Name(),
			OccupancySeats: identity.OccupancySeats(),
			Status:         domain.StatusActive,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking %s (room=%s, seats=%d)",
		result.BookingID, result.RoomCode, result.OccupancySeats)

	return &Response{
		BookingID:      result.BookingID,
		RoomCode:       result.RoomCode,
		RoomType:       string(result.RoomType),
		Date:           result.Date,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Status:         string(result.Status),
		RequesterKind:  string(result.RequesterKind),
		RequesterID:    result.RequesterID,
		RequesterName:  result.RequesterName,
		OccupancySeats: result.OccupancySeats,
		CreatedAt:      result.CreatedAt,
	}, nil
}

// resolveIdentity разрешает заказчика через DirectoryService
// Для команды загружается состав с возрастами участников, он нужен
// eligibility-проверке и подсчету занимаемых мест
func (uc *UseCase) resolveIdentity(ctx context.Context, requester domain.Requester) (*requesterIdentity, error) {
	switch requester.Kind {
	case domain.RequesterTeam:
		team, err := uc.directoryClient.GetTeam(ctx, requester.ID)
		if err != nil {
			if errors.Is(err, directoryClient.ErrTeamNotFound) {
				uc.logger.Warn("CreateBooking: team id=%d not found", requester.ID)
				return nil, ErrTeamNotFound
			}
			uc.logger.Error("CreateBooking: failed to get team id=%d: %v", requester.ID, err)
			return nil, fmt.Errorf("%w: failed to get team: %v", ErrInternal, err)
		}
		domainTeam := team.ToDomain()
		return &requesterIdentity{Requester: requester, Team: &domainTeam}, nil

	default:
		individual, err := uc.directoryClient.GetIndividual(ctx, requester.ID)
		if err != nil {
			if errors.Is(err, directoryClient.ErrIndividualNotFound) {
				uc.logger.Warn("CreateBooking: individual id=%d not found", requester.ID)
				return nil, ErrIndividualNotFound
			}
			uc.logger.Error("CreateBooking: failed to get individual id=%d: %v", requester.ID, err)
			return nil, fmt.Errorf("%w: failed to get individual: %v", ErrInternal, err)
		}
		domainIndividual := individual.ToDomain()
		return &requesterIdentity{Requester: requester, Individual: &domainIndividual}, nil
	}
}
