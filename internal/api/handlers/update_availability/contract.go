package update_availability

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
