package get_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

type fakeBookingRepo struct {
	byRoom map[int64][]*domain.Booking
}

func (f *fakeBookingRepo) ListForRoomDate(_ context.Context, roomID int64, _ time.Time) ([]*domain.Booking, error) {
	return f.byRoom[roomID], nil
}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context, roomType *domain.RoomType, activeOnly bool) ([]*domain.Room, error) {
	result := make([]*domain.Room, 0)
	for _, room := range f.rooms {
		if roomType != nil && room.Type != *roomType {
			continue
		}
		if activeOnly && !room.IsActive {
			continue
		}
		result = append(result, room)
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(id string, start, end string, seats int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		BookingID:      id,
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
		OccupancySeats: seats,
		Status:         status,
	}
}

func newFixture(bookings map[int64][]*domain.Booking) *UseCase {
	rooms := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, Code: "C01", Type: domain.RoomTypeConference, Capacity: 8, IsActive: true},
		{ID: 2, Code: "P01", Type: domain.RoomTypePrivate, Capacity: 1, IsActive: true},
		{ID: 3, Code: "P02", Type: domain.RoomTypePrivate, Capacity: 1, IsActive: false},
		{ID: 4, Code: "S01", Type: domain.RoomTypeShared, Capacity: 4, IsActive: true},
	}}
	return NewUseCase(&fakeBookingRepo{byRoom: bookings}, rooms, nopLogger{})
}

func availabilityRequest(start, end string) *Request {
	return &Request{
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := newFixture(nil)
	ctx := context.Background()

	t.Run("out of hours", func(t *testing.T) {
		_, err := uc.Execute(ctx, availabilityRequest("08:00", "10:00"))
		assert.ErrorIs(t, err, ErrOutOfHours)
	})

	t.Run("reversed interval", func(t *testing.T) {
		_, err := uc.Execute(ctx, availabilityRequest("12:00", "11:00"))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("full business day is allowed", func(t *testing.T) {
		_, err := uc.Execute(ctx, availabilityRequest("09:00", "18:00"))
		assert.NoError(t, err)
	})
}

func TestExecute_EmptyCatalog(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeRoomRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), availabilityRequest("10:00", "11:00"))
	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
}

func TestExecute_Availability(t *testing.T) {
	ctx := context.Background()

	t.Run("all rooms free, ordered by code, inactive excluded", func(t *testing.T) {
		uc := newFixture(nil)

		resp, err := uc.Execute(ctx, availabilityRequest("10:00", "11:00"))
		require.NoError(t, err)
		require.Len(t, resp.Rooms, 3)
		assert.Equal(t, "C01", resp.Rooms[0].RoomCode)
		assert.Equal(t, "P01", resp.Rooms[1].RoomCode)
		assert.Equal(t, "S01", resp.Rooms[2].RoomCode)
	})

	t.Run("busy exclusive room is omitted", func(t *testing.T) {
		uc := newFixture(map[int64][]*domain.Booking{
			2: {booking("BK-1", "10:00", "11:00", 1, domain.StatusActive)},
		})

		resp, err := uc.Execute(ctx, availabilityRequest("10:30", "11:30"))
		require.NoError(t, err)
		codes := make([]string, 0)
		for _, room := range resp.Rooms {
			codes = append(codes, room.RoomCode)
		}
		assert.Equal(t, []string{"C01", "S01"}, codes)
	})

	t.Run("touching interval keeps exclusive room available", func(t *testing.T) {
		uc := newFixture(map[int64][]*domain.Booking{
			2: {booking("BK-1", "10:00", "11:00", 1, domain.StatusActive)},
		})

		resp, err := uc.Execute(ctx, availabilityRequest("11:00", "12:00"))
		require.NoError(t, err)
		require.Len(t, resp.Rooms, 3)
	})

	t.Run("shared desk reports residual capacity", func(t *testing.T) {
		uc := newFixture(map[int64][]*domain.Booking{
			4: {
				booking("BK-1", "10:00", "12:00", 2, domain.StatusActive),
				booking("BK-2", "10:00", "11:00", 1, domain.StatusActive),
			},
		})

		resp, err := uc.Execute(ctx, availabilityRequest("10:00", "11:00"))
		require.NoError(t, err)

		var shared *AvailableRoom
		for i := range resp.Rooms {
			if resp.Rooms[i].RoomCode == "S01" {
				shared = &resp.Rooms[i]
			}
		}
		require.NotNil(t, shared)
		assert.Equal(t, 3, shared.OccupiedSeats)
		assert.Equal(t, 1, shared.AvailableCapacity)
	})

	t.Run("full shared desk is omitted", func(t *testing.T) {
		uc := newFixture(map[int64][]*domain.Booking{
			4: {booking("BK-1", "10:00", "12:00", 4, domain.StatusActive)},
		})

		resp, err := uc.Execute(ctx, availabilityRequest("10:00", "11:00"))
		require.NoError(t, err)
		for _, room := range resp.Rooms {
			assert.NotEqual(t, "S01", room.RoomCode)
		}
	})

	t.Run("cancelled booking frees the slot", func(t *testing.T) {
		uc := newFixture(map[int64][]*domain.Booking{
			2: {booking("BK-1", "10:00", "11:00", 1, domain.StatusCancelled)},
			4: {booking("BK-2", "09:00", "18:00", 4, domain.StatusCancelled)},
		})

		resp, err := uc.Execute(ctx, availabilityRequest("10:00", "11:00"))
		require.NoError(t, err)
		require.Len(t, resp.Rooms, 3)
		for _, room := range resp.Rooms {
			assert.Equal(t, 0, room.OccupiedSeats)
			assert.Equal(t, room.Capacity, room.AvailableCapacity)
		}
	})

	t.Run("room type filter is passed through", func(t *testing.T) {
		uc := newFixture(nil)

		req := availabilityRequest("10:00", "11:00")
		req.RoomType = ptr.Ptr(domain.RoomTypePrivate)

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Rooms, 1)
		assert.Equal(t, "P01", resp.Rooms[0].RoomCode)
	})
}

func TestExecute_IntegrityViolation(t *testing.T) {
	uc := newFixture(map[int64][]*domain.Booking{
		2: {
			booking("BK-1", "10:00", "11:30", 1, domain.StatusActive),
			booking("BK-2", "11:00", "12:00", 1, domain.StatusActive),
		},
	})

	_, err := uc.Execute(context.Background(), availabilityRequest("14:00", "15:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataIntegrity)
}
