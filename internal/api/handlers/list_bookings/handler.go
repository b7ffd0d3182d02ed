package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date=YYYY-MM-DD&status=confirmed&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}

	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		date, err := time.Parse(domain.DateFormat, rawDate)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid date %q: %v", rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Returned %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
