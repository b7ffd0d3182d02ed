package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[logs]
file = "stdout"
level = "debug"

[booking]
simulated_latency_ms = 250
meeting_link = "https://example.com/room"

[availability]
working_days = [1, 3, 5]
working_hours_start = "08:00"
working_hours_end = "16:00"
buffer_time_minutes = 0
min_notice_hours = 4
max_advance_booking_days = 14
allowed_durations = [30, 60]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.Booking.SimulatedLatency())
	assert.Equal(t, "https://example.com/room", cfg.Booking.MeetingLink)

	settings, err := cfg.Availability.ToDomainSettings()
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, settings.WorkingDays)
	assert.Equal(t, types.TimeString("08:00"), settings.WorkingHours.Start)
	assert.Equal(t, types.TimeString("16:00"), settings.WorkingHours.End)
	assert.Equal(t, 0, settings.BufferTimeMinutes)
	assert.Equal(t, 4, settings.MinNoticeHours)
	assert.Equal(t, 14, settings.MaxAdvanceBookingDays)
	assert.Equal(t, []int{30, 60}, settings.AllowedDurations)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8081
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "stdout", cfg.Logs.File)
	assert.False(t, cfg.Metrics.Enabled)

	settings, err := cfg.Availability.ToDomainSettings()
	require.NoError(t, err)
	assert.Equal(t, 2, settings.MinNoticeHours)
	assert.Equal(t, 30, settings.MaxAdvanceBookingDays)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "working hours inverted",
			content: `
[availability]
working_hours_start = "17:00"
working_hours_end = "09:00"
`,
		},
		{
			name: "empty allowed durations",
			content: `
[availability]
allowed_durations = []
`,
		},
		{
			name: "weekday out of range",
			content: `
[availability]
working_days = [7]
`,
		},
		{
			name: "negative latency",
			content: `
[booking]
simulated_latency_ms = -5
`,
		},
		{
			name: "bad time format",
			content: `
[availability]
working_hours_start = "9am"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
