package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"18:00", "18:00", false},
		{"00:00", "00:00", false},
		{"23:59", "23:59", false},
		{"9:00", "", true},
		{"25:00", "", true},
		{"09:60", "", true},
		{"0900", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"18:00", 1080},
		{"23:59", 1439},
		{"24:00", 1440},
	}

	for _, tt := range tests {
		got, err := tt.input.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Minutes(%s)", tt.input)
	}

	_, err := TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("11:00").IsBefore("10:00"))

	assert.True(t, TimeString("11:00").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
	assert.False(t, TimeString("09:00").IsAfter("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	// Конец суток представим как 24:00
	got, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:00").AddMinutes(61)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30"))
	assert.Equal(t, TimeString("10:30"), ts)

	// TIME колонки Postgres отдают секунды
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("11:45:59")))
	assert.Equal(t, TimeString("11:45"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 8, 28, 14, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
