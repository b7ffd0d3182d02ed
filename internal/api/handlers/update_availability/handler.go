package update_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSettings    = "некорректные настройки доступности"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	settings, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /availability - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /availability - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability - Settings updated successfully")
	handlers.RespondJSON(w, http.StatusOK, settings)
}
