package directoryservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с DirectoryService
// DirectoryService служит источником данных о пользователях и командах (Booker Identity):
// состав команды и возраст участников нужны admission-логике для проверки
// eligibility и подсчета занимаемых мест
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента DirectoryService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetIndividual получает пользователя по идентификатору
func (c *Client) GetIndividual(ctx context.Context, individualID int64) (*Individual, error) {
	url := fmt.Sprintf("%s/internal/individuals/%d", c.baseURL, individualID)

	var individual Individual
	if err := c.getJSON(ctx, url, &individual, ErrIndividualNotFound); err != nil {
		return nil, err
	}

	return &individual, nil
}

// GetTeam получает команду по идентификатору вместе со списком участников
func (c *Client) GetTeam(ctx context.Context, teamID int64) (*Team, error) {
	url := fmt.Sprintf("%s/internal/teams/%d", c.baseURL, teamID)

	var team Team
	if err := c.getJSON(ctx, url, &team, ErrTeamNotFound); err != nil {
		return nil, err
	}

	return &team, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFoundErr возвращается на 404 от сервиса
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid identifier format", ErrInvalidResponse)
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
