package directoryservice

import "github.com/m04kA/SMC-RoomBookingService/internal/domain"

// Individual модель пользователя из DirectoryService
type Individual struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"` // M, F, O
}

// Team модель команды из DirectoryService
type Team struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Members   []Individual `json:"members"`
	CreatedBy int64        `json:"created_by"`
}

// ErrorResponse модель ошибки от DirectoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует пользователя в доменную модель
func (i *Individual) ToDomain() domain.Individual {
	name := i.FirstName
	if i.LastName != "" {
		if name != "" {
			name += " "
		}
		name += i.LastName
	}
	return domain.Individual{
		ID:   i.ID,
		Name: name,
		Age:  i.Age,
	}
}

// ToDomain конвертирует команду в доменную модель
func (t *Team) ToDomain() domain.Team {
	members := make([]domain.Individual, len(t.Members))
	for idx, m := range t.Members {
		members[idx] = m.ToDomain()
	}
	return domain.Team{
		ID:        t.ID,
		Name:      t.Name,
		Members:   members,
		CreatedBy: t.CreatedBy,
	}
}
