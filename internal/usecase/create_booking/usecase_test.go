package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
	listErr  error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingRepo) ListForRoomDate(_ context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.RoomID == roomID && b.Date.Equal(date) && b.IsActive() {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeRoomRepo struct {
	rooms map[string]*domain.Room
}

func (f *fakeRoomRepo) GetByCode(_ context.Context, code string) (*domain.Room, error) {
	room, ok := f.rooms[code]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeDirectoryClient struct {
	individuals map[int64]*directoryservice.Individual
	teams       map[int64]*directoryservice.Team
}

func (f *fakeDirectoryClient) GetIndividual(_ context.Context, id int64) (*directoryservice.Individual, error) {
	individual, ok := f.individuals[id]
	if !ok {
		return nil, directoryservice.ErrIndividualNotFound
	}
	return individual, nil
}

func (f *fakeDirectoryClient) GetTeam(_ context.Context, id int64) (*directoryservice.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, directoryservice.ErrTeamNotFound
	}
	return team, nil
}

// fakeTxManager выполняет замыкание без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeIDGen struct {
	counter int
}

func (f *fakeIDGen) NewBookingID() string {
	f.counter++
	return fmt.Sprintf("BK-%04d", f.counter)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Тестовое окружение

type fixture struct {
	uc          *UseCase
	bookingRepo *fakeBookingRepo
	txManager   *fakeTxManager
}

func newFixture() *fixture {
	bookingRepository := &fakeBookingRepo{}
	txManager := &fakeTxManager{}

	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{
		"P01": {ID: 1, Code: "P01", Type: domain.RoomTypePrivate, Capacity: 1, IsActive: true},
		"C01": {ID: 2, Code: "C01", Type: domain.RoomTypeConference, Capacity: 8, IsActive: true},
		"S01": {ID: 3, Code: "S01", Type: domain.RoomTypeShared, Capacity: 4, IsActive: true},
		"P09": {ID: 4, Code: "P09", Type: domain.RoomTypePrivate, Capacity: 1, IsActive: false},
	}}

	directory := &fakeDirectoryClient{
		individuals: map[int64]*directoryservice.Individual{
			100: {ID: 100, FirstName: "Anna", LastName: "Petrova", Age: 29},
			101: {ID: 101, FirstName: "Boris", LastName: "Ivanov", Age: 35},
			102: {ID: 102, FirstName: "Kira", LastName: "Ivanova", Age: 7},
		},
		teams: map[int64]*directoryservice.Team{
			200: {ID: 200, Name: "Platform", Members: []directoryservice.Individual{
				{ID: 1, Age: 30}, {ID: 2, Age: 28}, {ID: 3, Age: 40},
			}},
			201: {ID: 201, Name: "Duo", Members: []directoryservice.Individual{
				{ID: 1, Age: 30}, {ID: 2, Age: 28},
			}},
			202: {ID: 202, Name: "Family", Members: []directoryservice.Individual{
				{ID: 1, Age: 30}, {ID: 2, Age: 28}, {ID: 3, Age: 5},
			}},
		},
	}

	uc := NewUseCase(bookingRepository, rooms, directory, txManager, &fakeIDGen{}, nopLogger{})
	return &fixture{uc: uc, bookingRepo: bookingRepository, txManager: txManager}
}

func testDate() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func request(roomCode, start, end string) *Request {
	return &Request{
		RoomCode:  roomCode,
		Date:      testDate(),
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func individualRequest(roomCode, start, end string, id int64) *Request {
	req := request(roomCode, start, end)
	req.IndividualID = ptr.Ptr(id)
	return req
}

func teamRequest(roomCode, start, end string, id int64) *Request {
	req := request(roomCode, start, end)
	req.TeamID = ptr.Ptr(id)
	return req
}

// Тесты

func TestExecute_RequesterValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("missing requester", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, request("P01", "10:00", "11:00"))
		assert.ErrorIs(t, err, ErrMissingRequester)
	})

	t.Run("ambiguous requester", func(t *testing.T) {
		req := request("P01", "10:00", "11:00")
		req.IndividualID = ptr.Ptr(int64(100))
		req.TeamID = ptr.Ptr(int64(200))
		_, err := f.uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrAmbiguousRequester)
	})

	t.Run("ambiguous requester wins over later checks", func(t *testing.T) {
		// Запрос с двумя заказчиками и заведомо конфликтным интервалом:
		// отклоняется именно проверка заказчика, до конфликтов дело не доходит
		_, err := f.uc.Execute(ctx, individualRequest("P01", "10:00", "11:00", 100))
		require.NoError(t, err)

		req := request("P01", "10:00", "11:00")
		req.IndividualID = ptr.Ptr(int64(101))
		req.TeamID = ptr.Ptr(int64(200))
		_, err = f.uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrAmbiguousRequester)
	})
}

func TestExecute_BusinessHours(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"before opening", "08:00", "09:30", ErrOutOfHours},
		{"after closing", "17:30", "18:30", ErrOutOfHours},
		{"entirely outside", "07:00", "08:00", ErrOutOfHours},
		{"exactly business hours", "09:00", "18:00", nil},
		{"at opening boundary", "09:00", "10:00", nil},
		{"at closing boundary", "17:00", "18:00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Чистим хранилище между кейсами, чтобы успешные брони не конфликтовали
			f.bookingRepo.bookings = nil

			_, err := f.uc.Execute(ctx, individualRequest("P01", tt.start, tt.end, 100))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExecute_InvalidInterval(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("zero length interval", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, individualRequest("P01", "10:00", "10:00", 100))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("reversed interval", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, individualRequest("P01", "11:00", "10:00", 100))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("hours are checked before interval order", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, individualRequest("P01", "08:00", "07:00", 100))
		assert.ErrorIs(t, err, ErrOutOfHours)
	})
}

func TestExecute_Eligibility(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("team cannot book private room", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, teamRequest("P01", "10:00", "11:00", 200))
		assert.ErrorIs(t, err, ErrIneligibleRequester)
	})

	t.Run("individual cannot book conference room", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, individualRequest("C01", "10:00", "11:00", 100))
		assert.ErrorIs(t, err, ErrIneligibleRequester)
	})

	t.Run("team of two cannot book conference room", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, teamRequest("C01", "10:00", "11:00", 201))
		assert.ErrorIs(t, err, ErrIneligibleRequester)
	})

	t.Run("children count toward conference eligibility", func(t *testing.T) {
		resp, err := f.uc.Execute(ctx, teamRequest("C01", "10:00", "11:00", 202))
		require.NoError(t, err)
		// 2 взрослых + 1 ребенок: команда проходит, мест занято два
		assert.Equal(t, 2, resp.OccupancySeats)
	})

	t.Run("individual books private room", func(t *testing.T) {
		resp, err := f.uc.Execute(ctx, individualRequest("P01", "10:00", "11:00", 100))
		require.NoError(t, err)
		assert.Equal(t, "P01", resp.RoomCode)
		assert.Equal(t, string(domain.StatusActive), resp.Status)
		assert.Equal(t, "Anna Petrova", resp.RequesterName)
		assert.Equal(t, 1, resp.OccupancySeats)
	})
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, individualRequest("P01", "10:00", "11:00", 100))
	require.NoError(t, err)

	t.Run("overlapping interval is rejected", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, individualRequest("P01", "10:30", "11:30", 101))
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("touching interval is admitted", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, individualRequest("P01", "11:00", "12:00", 101))
		assert.NoError(t, err)
	})

	t.Run("conflict check runs inside transaction", func(t *testing.T) {
		calls := f.txManager.calls
		_, err := f.uc.Execute(ctx, individualRequest("P01", "12:00", "13:00", 100))
		require.NoError(t, err)
		assert.Equal(t, calls+1, f.txManager.calls)
	})
}

func TestExecute_SharedCapacity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// S01 вмещает 4 места: две команды по 2 взрослых занимают всё
	_, err := f.uc.Execute(ctx, teamRequest("S01", "10:00", "12:00", 201))
	require.NoError(t, err)
	_, err = f.uc.Execute(ctx, teamRequest("S01", "11:00", "13:00", 202))
	require.NoError(t, err)

	t.Run("full desk rejects next requester", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, individualRequest("S01", "11:00", "12:00", 100))
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("free interval on same desk is admitted", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, individualRequest("S01", "13:00", "14:00", 100))
		assert.NoError(t, err)
	})

	t.Run("child occupies no seat on a full desk", func(t *testing.T) {
		resp, err := f.uc.Execute(ctx, individualRequest("S01", "11:00", "12:00", 102))
		require.NoError(t, err)
		assert.Equal(t, 0, resp.OccupancySeats)
	})
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	t.Run("unknown room", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, individualRequest("X99", "10:00", "11:00", 100))
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("inactive room behaves as missing", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, individualRequest("P09", "10:00", "11:00", 100))
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("unknown individual", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, individualRequest("P01", "10:00", "11:00", 999))
		assert.ErrorIs(t, err, ErrIndividualNotFound)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, teamRequest("C01", "10:00", "11:00", 999))
		assert.ErrorIs(t, err, ErrTeamNotFound)
	})
}

func TestExecute_IntegrityViolation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Два пересекающихся активных бронирования эксклюзивной комнаты,
	// записанных мимо admission-пути
	f.bookingRepo.bookings = []*domain.Booking{
		{BookingID: "BK-A", RoomID: 1, Date: testDate(), StartTime: "10:00", EndTime: "11:30",
			OccupancySeats: 1, Status: domain.StatusActive},
		{BookingID: "BK-B", RoomID: 1, Date: testDate(), StartTime: "11:00", EndTime: "12:00",
			OccupancySeats: 1, Status: domain.StatusActive},
	}

	_, err := f.uc.Execute(ctx, individualRequest("P01", "14:00", "15:00", 100))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestExecute_DisjointnessIsPreserved(t *testing.T) {
	// Прогон случайных интервалов через admission: множество активных
	// бронирований приватной комнаты всегда остаётся попарно непересекающимся
	f := newFixture()
	ctx := context.Background()

	starts := []string{"09:00", "09:30", "10:00", "10:15", "11:00", "12:45", "13:00", "14:30", "16:00", "17:00"}
	durations := []int{30, 45, 60, 90, 120}

	for i, start := range starts {
		for _, dur := range durations {
			startTS := types.TimeString(start)
			endTS, err := startTS.AddMinutes(dur)
			require.NoError(t, err)

			req := individualRequest("P01", start, endTS.String(), 100)
			if i%2 == 0 {
				req = individualRequest("P01", start, endTS.String(), 101)
			}
			// Ошибки admission допустимы, интерес в инварианте хранилища
			_, _ = f.uc.Execute(ctx, req)
		}
	}

	active := make([]*domain.Booking, 0)
	for _, b := range f.bookingRepo.bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}
	require.NotEmpty(t, active)
	assert.NoError(t, domain.CheckExclusiveIntegrity(active))
}
