package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

func makeBooking(id string, start, end string, seats int, status BookingStatus) *Booking {
	return &Booking{
		BookingID:      id,
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
		OccupancySeats: seats,
		Status:         status,
	}
}

func makeInterval(start, end string) Interval {
	return Interval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Interval
		b        Interval
		overlaps bool
	}{
		{
			name:     "touching intervals do not overlap",
			a:        makeInterval("09:00", "10:00"),
			b:        makeInterval("10:00", "11:00"),
			overlaps: false,
		},
		{
			name:     "touching intervals reversed order",
			a:        makeInterval("10:00", "11:00"),
			b:        makeInterval("09:00", "10:00"),
			overlaps: false,
		},
		{
			name:     "partial overlap",
			a:        makeInterval("09:00", "10:30"),
			b:        makeInterval("10:00", "11:00"),
			overlaps: true,
		},
		{
			name:     "one contains the other",
			a:        makeInterval("09:00", "12:00"),
			b:        makeInterval("10:00", "11:00"),
			overlaps: true,
		},
		{
			name:     "identical intervals",
			a:        makeInterval("10:00", "11:00"),
			b:        makeInterval("10:00", "11:00"),
			overlaps: true,
		},
		{
			name:     "disjoint with a gap",
			a:        makeInterval("09:00", "10:00"),
			b:        makeInterval("11:00", "12:00"),
			overlaps: false,
		},
		{
			name:     "single minute of overlap",
			a:        makeInterval("09:00", "10:01"),
			b:        makeInterval("10:00", "11:00"),
			overlaps: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a))
		})
	}
}

func TestFindOverlapping(t *testing.T) {
	bookings := []*Booking{
		makeBooking("BK-1", "09:00", "10:00", 1, StatusActive),
		makeBooking("BK-2", "10:00", "11:00", 1, StatusActive),
		makeBooking("BK-3", "10:30", "12:00", 1, StatusCancelled),
		makeBooking("BK-4", "14:00", "15:00", 1, StatusActive),
	}

	t.Run("touching boundary is free", func(t *testing.T) {
		got := FindOverlapping(bookings, makeInterval("11:00", "12:00"), "")
		assert.Empty(t, got)
	})

	t.Run("cancelled bookings are ignored", func(t *testing.T) {
		got := FindOverlapping(bookings, makeInterval("11:00", "12:00"), "")
		assert.Empty(t, got)

		got = FindOverlapping(bookings, makeInterval("11:30", "12:00"), "")
		assert.Empty(t, got)
	})

	t.Run("overlapping active bookings are returned", func(t *testing.T) {
		got := FindOverlapping(bookings, makeInterval("09:30", "10:30"), "")
		require.Len(t, got, 2)
		assert.Equal(t, "BK-1", got[0].BookingID)
		assert.Equal(t, "BK-2", got[1].BookingID)
	})

	t.Run("excluded booking is skipped", func(t *testing.T) {
		got := FindOverlapping(bookings, makeInterval("14:00", "15:00"), "BK-4")
		assert.Empty(t, got)
	})
}

func TestCurrentOccupancy(t *testing.T) {
	bookings := []*Booking{
		makeBooking("BK-1", "09:00", "12:00", 2, StatusActive),
		makeBooking("BK-2", "10:00", "11:00", 1, StatusActive),
		makeBooking("BK-3", "10:00", "11:00", 3, StatusCancelled),
		makeBooking("BK-4", "12:00", "13:00", 1, StatusActive),
	}

	tests := []struct {
		name     string
		interval Interval
		want     int
	}{
		{"no overlap", makeInterval("13:00", "14:00"), 0},
		{"single overlap", makeInterval("11:00", "12:00"), 2},
		{"two overlapping bookings sum up", makeInterval("10:00", "11:00"), 3},
		{"cancelled seats do not count", makeInterval("10:30", "10:45"), 3},
		{"touching boundary counts nothing", makeInterval("13:00", "18:00"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentOccupancy(bookings, tt.interval, ""))
		})
	}
}

func TestCheckExclusiveIntegrity(t *testing.T) {
	t.Run("disjoint active bookings pass", func(t *testing.T) {
		bookings := []*Booking{
			makeBooking("BK-2", "11:00", "12:00", 1, StatusActive),
			makeBooking("BK-1", "09:00", "10:00", 1, StatusActive),
			makeBooking("BK-3", "10:00", "11:00", 1, StatusActive),
		}
		assert.NoError(t, CheckExclusiveIntegrity(bookings))
	})

	t.Run("overlapping active bookings violate integrity", func(t *testing.T) {
		bookings := []*Booking{
			makeBooking("BK-1", "09:00", "10:30", 1, StatusActive),
			makeBooking("BK-2", "10:00", "11:00", 1, StatusActive),
		}
		err := CheckExclusiveIntegrity(bookings)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIntegrityViolation)
	})

	t.Run("overlap with cancelled booking is fine", func(t *testing.T) {
		bookings := []*Booking{
			makeBooking("BK-1", "09:00", "10:30", 1, StatusCancelled),
			makeBooking("BK-2", "10:00", "11:00", 1, StatusActive),
		}
		assert.NoError(t, CheckExclusiveIntegrity(bookings))
	})

	t.Run("empty set passes", func(t *testing.T) {
		assert.NoError(t, CheckExclusiveIntegrity(nil))
	})
}
