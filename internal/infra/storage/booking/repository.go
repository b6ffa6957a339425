package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

// bookingColumns полный набор колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"booking_id",
	"room_id",
	"booking_date",
	"start_time",
	"end_time",
	"requester_kind",
	"requester_id",
	"room_code",
	"room_type",
	"requester_name",
	"occupancy_seats",
	"status",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Admission-путь всегда вызывает Create внутри сериализуемой транзакции вместе
// с проверкой конфликтов, иначе две конкурентные записи могут пройти проверку
// по устаревшему снимку и вместе нарушить инварианты комнаты.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_id",
			"room_id",
			"booking_date",
			"start_time",
			"end_time",
			"requester_kind",
			"requester_id",
			"room_code",
			"room_type",
			"requester_name",
			"occupancy_seats",
			"status",
		).
		Values(
			booking.BookingID,
			booking.RoomID,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.RequesterKind,
			booking.RequesterID,
			booking.RoomCode,
			booking.RoomType,
			booking.RequesterName,
			booking.OccupancySeats,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBookingID, booking.BookingID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByBookingID получает бронирование по публичному идентификатору
func (r *Repository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByBookingID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListForRoomDate получает активные бронирования комнаты на дату,
// отсортированные по времени начала
//
// Это рабочий набор Slot Conflict Engine: проверка пересечений и подсчет
// occupancy выполняются в памяти над этим набором.
// Внутри транзакции добавляет FOR UPDATE: admission-путь блокирует строки
// комнаты на дату, сериализуя конкурентные проверки (комнаты и даты между
// собой независимы и обрабатываются параллельно)
func (r *Repository) ListForRoomDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"status": domain.StatusActive}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForRoomDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForRoomDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по дате, комнате, типу комнаты, статусу и заказчику
// По умолчанию возвращает только активные бронирования
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.RoomType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_type": *filter.RoomType})
	}
	if filter.RequesterKind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"requester_kind": *filter.RequesterKind})
	}
	if filter.RequesterID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"requester_id": *filter.RequesterID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	if filter.Date != nil {
		// Для конкретной даты сортируем по комнате и времени начала
		selectBuilder = selectBuilder.OrderBy("room_code ASC, start_time ASC")
	} else {
		// Без даты сортируем по дате и времени (сначала новые)
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel переводит бронирование в статус CANCELLED и фиксирует время отмены
// Переход односторонний: WHERE по статусу гарантирует, что уже отмененное
// или завершенное бронирование не будет изменено повторно
func (r *Repository) Cancel(ctx context.Context, bookingID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"booking_id": bookingID}).
		Where(squirrel.Eq{"status": domain.StatusActive}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime
	var cancelledAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BookingID,
		&booking.RoomID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.RequesterKind,
		&booking.RequesterID,
		&booking.RoomCode,
		&booking.RoomType,
		&booking.RequesterName,
		&booking.OccupancySeats,
		&booking.Status,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isUniqueViolation определяет нарушение уникального ограничения Postgres
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
