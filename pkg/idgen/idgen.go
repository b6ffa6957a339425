package idgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generator генератор уникальных идентификаторов бронирований
// Вынесен за интерфейс, чтобы admission-логика оставалась детерминированной в тестах
type Generator interface {
	NewBookingID() string
}

// UUIDGenerator генератор на основе UUID v4
// Идентификатор непрозрачный: уникальность и стабильность гарантируются, формат нет
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator создает генератор с опциональным префиксом (например, "BK")
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// NewBookingID возвращает новый уникальный идентификатор бронирования
func (g *UUIDGenerator) NewBookingID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if g.prefix == "" {
		return id
	}
	return fmt.Sprintf("%s-%s", g.prefix, id)
}
