package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Booking      BookingConfig      `toml:"booking"`
	Availability AvailabilityConfig `toml:"availability"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BookingConfig настройки хранилища бронирований
type BookingConfig struct {
	// SimulatedLatencyMS искусственная задержка мутаций (мс), имитация
	// сетевого вызова будущего бэкенда
	SimulatedLatencyMS int `toml:"simulated_latency_ms"`

	// MeetingLink фиксированная ссылка-заглушка на видеовстречу
	MeetingLink string `toml:"meeting_link"`
}

// SimulatedLatency возвращает задержку как time.Duration
func (c *BookingConfig) SimulatedLatency() time.Duration {
	return time.Duration(c.SimulatedLatencyMS) * time.Millisecond
}

// AvailabilityConfig стартовые настройки доступности
type AvailabilityConfig struct {
	WorkingDays           []int  `toml:"working_days"` // 0=воскресенье .. 6=суббота
	WorkingHoursStart     string `toml:"working_hours_start"`
	WorkingHoursEnd       string `toml:"working_hours_end"`
	BufferTimeMinutes     int    `toml:"buffer_time_minutes"`
	MinNoticeHours        int    `toml:"min_notice_hours"`
	MaxAdvanceBookingDays int    `toml:"max_advance_booking_days"`
	AllowedDurations      []int  `toml:"allowed_durations"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "stdout",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "scheduling-service",
			Path:        "/metrics",
		},
		Booking: BookingConfig{
			SimulatedLatencyMS: 0,
			MeetingLink:        "https://meet.google.com/abc-defg-hij",
		},
		Availability: AvailabilityConfig{
			WorkingDays:           []int{1, 2, 3, 4, 5},
			WorkingHoursStart:     domain.DefaultWorkingHours.Start.String(),
			WorkingHoursEnd:       domain.DefaultWorkingHours.End.String(),
			BufferTimeMinutes:     domain.DefaultBufferTimeMinutes,
			MinNoticeHours:        domain.DefaultMinNoticeHours,
			MaxAdvanceBookingDays: domain.DefaultMaxAdvanceBookingDays,
			AllowedDurations:      append([]int(nil), domain.DefaultAllowedDurations...),
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in (0, 65535]", ErrInvalidConfig)
	}
	if c.Booking.SimulatedLatencyMS < 0 {
		return fmt.Errorf("%w: booking.simulated_latency_ms must be non-negative", ErrInvalidConfig)
	}
	if _, err := c.Availability.ToDomainSettings(); err != nil {
		return err
	}
	return nil
}

// ToDomainSettings конвертирует секцию availability в доменные настройки
func (c *AvailabilityConfig) ToDomainSettings() (*domain.AvailabilitySettings, error) {
	start, err := types.NewTimeStringFromString(c.WorkingHoursStart)
	if err != nil {
		return nil, fmt.Errorf("%w: availability.working_hours_start: %v", ErrInvalidConfig, err)
	}
	end, err := types.NewTimeStringFromString(c.WorkingHoursEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: availability.working_hours_end: %v", ErrInvalidConfig, err)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: availability working hours start must be before end", ErrInvalidConfig)
	}

	if len(c.AllowedDurations) == 0 {
		return nil, fmt.Errorf("%w: availability.allowed_durations must not be empty", ErrInvalidConfig)
	}
	for _, d := range c.AllowedDurations {
		if d <= 0 {
			return nil, fmt.Errorf("%w: availability.allowed_durations must be positive", ErrInvalidConfig)
		}
	}

	days := make([]time.Weekday, 0, len(c.WorkingDays))
	for _, d := range c.WorkingDays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("%w: availability.working_days must be in [0, 6]", ErrInvalidConfig)
		}
		days = append(days, time.Weekday(d))
	}

	if c.BufferTimeMinutes < domain.MinBufferTimeMinutes || c.BufferTimeMinutes > domain.MaxBufferTimeMinutes {
		return nil, fmt.Errorf("%w: availability.buffer_time_minutes out of range", ErrInvalidConfig)
	}
	if c.MinNoticeHours < domain.MinNoticeHoursLowerBound || c.MinNoticeHours > domain.MinNoticeHoursUpperBound {
		return nil, fmt.Errorf("%w: availability.min_notice_hours out of range", ErrInvalidConfig)
	}
	if c.MaxAdvanceBookingDays < 0 || c.MaxAdvanceBookingDays > domain.MaxAdvanceBookingUpper {
		return nil, fmt.Errorf("%w: availability.max_advance_booking_days out of range", ErrInvalidConfig)
	}

	return &domain.AvailabilitySettings{
		WorkingDays:           days,
		WorkingHours:          domain.WorkingHours{Start: start, End: end},
		BufferTimeMinutes:     c.BufferTimeMinutes,
		MinNoticeHours:        c.MinNoticeHours,
		MaxAdvanceBookingDays: c.MaxAdvanceBookingDays,
		AllowedDurations:      append([]int(nil), c.AllowedDurations...),
	}, nil
}
