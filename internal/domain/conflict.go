package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// ErrIntegrityViolation возвращается, когда в хранилище обнаружены два
// пересекающихся активных бронирования эксклюзивной комнаты.
// Это фатальное нарушение консистентности данных: оно логируется и
// поднимается наверх, но никогда не исправляется молча.
var ErrIntegrityViolation = errors.New("domain: overlapping active bookings found in exclusive room")

// Interval полуоткрытый временной интервал [Start, End) в рамках одного дня
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps проверяет пересечение двух интервалов
// Используются строгие неравенства: интервалы, граничащие по одной точке
// (конец одного равен началу другого), НЕ пересекаются
//
// Примеры:
// - [09:00, 10:00) и [10:00, 11:00) → НЕТ пересечения (граничат)
// - [09:00, 10:30) и [10:00, 11:00) → ЕСТЬ пересечение (10:00-10:30)
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && i.End.IsAfter(other.Start)
}

// FindOverlapping возвращает активные бронирования из набора, чьи интервалы
// пересекаются с interval. Набор bookings содержит активные бронирования одной
// комнаты на одну дату (выборку по комнате и дате делает репозиторий,
// сортировка по start_time сохраняется). excludeBookingID позволяет исключить
// одно бронирование, используется при ревалидации существующей записи.
//
// Чистая функция без побочных эффектов: не требует живого хранилища
func FindOverlapping(bookings []*Booking, interval Interval, excludeBookingID string) []*Booking {
	overlapping := make([]*Booking, 0)

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if excludeBookingID != "" && booking.BookingID == excludeBookingID {
			continue
		}
		if booking.Interval().Overlaps(interval) {
			overlapping = append(overlapping, booking)
		}
	}

	return overlapping
}

// CurrentOccupancy возвращает суммарное число занятых мест shared desk
// в интервале interval: сумма OccupancySeats по пересекающимся активным
// бронированиям
func CurrentOccupancy(bookings []*Booking, interval Interval, excludeBookingID string) int {
	total := 0
	for _, booking := range FindOverlapping(bookings, interval, excludeBookingID) {
		total += booking.OccupancySeats
	}
	return total
}

// CheckExclusiveIntegrity проверяет инвариант эксклюзивной комнаты:
// активные бронирования одной комнаты на одну дату попарно не пересекаются.
// Нарушение означает, что данные в хранилище повреждены (например, запись
// прошла мимо admission-пути)
func CheckExclusiveIntegrity(bookings []*Booking) error {
	active := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}

	// Сортировка по началу интервала: достаточно сравнить соседей
	sort.Slice(active, func(i, j int) bool {
		return active[i].StartTime.IsBefore(active[j].StartTime)
	})

	for i := 1; i < len(active); i++ {
		prev, curr := active[i-1], active[i]
		if prev.Interval().Overlaps(curr.Interval()) {
			return fmt.Errorf("%w: bookings %s and %s", ErrIntegrityViolation, prev.BookingID, curr.BookingID)
		}
	}

	return nil
}
