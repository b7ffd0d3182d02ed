package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "24:00", want: EndOfDay},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "10:61", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		add     int
		want    TimeString
		wantErr bool
	}{
		{name: "within hour", start: "10:00", add: 30, want: "10:30"},
		{name: "crosses hour", start: "10:45", add: 30, want: "11:15"},
		{name: "exactly midnight", start: "23:30", add: 30, want: EndOfDay},
		{name: "past midnight", start: "23:45", add: 30, wantErr: true},
		{name: "zero", start: "10:00", add: 0, want: "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.add)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrCrossesMidnight)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
	assert.True(t, TimeString("23:30").IsBefore(EndOfDay))
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("01:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 90, m)

	m, err = EndOfDay.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1440, m)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 3, 2, 15, 45, 12, 0, time.UTC)

	got, err := TimeString("09:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC), got)
}

func TestNewTimeString(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 7, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:07"), NewTimeString(now))
}
