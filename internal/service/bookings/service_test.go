package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

type fakeRepo struct {
	bookings map[string]*domain.Booking
}

func (f *fakeRepo) GetByBookingID(_ context.Context, bookingID string) (*domain.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.RequesterKind != nil && b.RequesterKind != *filter.RequesterKind {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeRepo) Cancel(_ context.Context, bookingID string) error {
	b, ok := f.bookings[bookingID]
	if !ok || !b.IsActive() {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancelledAt = &now
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeRepo) {
	repo := &fakeRepo{bookings: map[string]*domain.Booking{
		"BK-1": {
			BookingID:     "BK-1",
			RoomCode:      "P01",
			RoomType:      domain.RoomTypePrivate,
			Date:          time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			StartTime:     "10:00",
			EndTime:       "11:00",
			RequesterKind: domain.RequesterIndividual,
			RequesterID:   100,
			Status:        domain.StatusActive,
		},
		"BK-2": {
			BookingID:     "BK-2",
			RoomCode:      "C01",
			RoomType:      domain.RoomTypeConference,
			RequesterKind: domain.RequesterTeam,
			RequesterID:   200,
			Status:        domain.StatusCompleted,
		},
	}}
	return NewService(repo, fakeTxManager{}, nopLogger{}), repo
}

func TestGetByBookingID(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	t.Run("existing booking", func(t *testing.T) {
		resp, err := svc.GetByBookingID(ctx, "BK-1")
		require.NoError(t, err)
		assert.Equal(t, "BK-1", resp.BookingID)
		assert.Equal(t, "P01", resp.RoomCode)
		assert.Equal(t, "ACTIVE", resp.Status)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.GetByBookingID(ctx, "BK-404")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestList(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	t.Run("active only by default", func(t *testing.T) {
		resp, err := svc.List(ctx, &models.GetBookingsRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "BK-1", resp.Bookings[0].BookingID)
	})

	t.Run("include inactive", func(t *testing.T) {
		resp, err := svc.List(ctx, &models.GetBookingsRequest{IncludeInactive: true})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("filter by requester kind", func(t *testing.T) {
		resp, err := svc.List(ctx, &models.GetBookingsRequest{
			RequesterKind:   ptr.Ptr("TEAM"),
			IncludeInactive: true,
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "BK-2", resp.Bookings[0].BookingID)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		_, err := svc.List(ctx, &models.GetBookingsRequest{Status: ptr.Ptr("UNKNOWN")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	t.Run("active booking is cancelled", func(t *testing.T) {
		svc, repo := newService()

		err := svc.Cancel(context.Background(), "BK-1")
		require.NoError(t, err)

		cancelled := repo.bookings["BK-1"]
		assert.Equal(t, domain.StatusCancelled, cancelled.Status)
		assert.NotNil(t, cancelled.CancelledAt)
	})

	t.Run("second cancel is rejected", func(t *testing.T) {
		svc, _ := newService()

		require.NoError(t, svc.Cancel(context.Background(), "BK-1"))
		err := svc.Cancel(context.Background(), "BK-1")
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		svc, _ := newService()

		err := svc.Cancel(context.Background(), "BK-2")
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, _ := newService()

		err := svc.Cancel(context.Background(), "BK-404")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
