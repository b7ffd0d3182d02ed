package get_available_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const (
	msgMissingDate = "не указана дата, ожидается параметр date=YYYY-MM-DD"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	schedule ScheduleService
	logger   Logger
}

func NewHandler(schedule ScheduleService, logger Logger) *Handler {
	return &Handler{
		schedule: schedule,
		logger:   logger,
	}
}

// Handle GET /api/v1/schedule/slots?date=YYYY-MM-DD&onlyAvailable=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /schedule/slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /schedule/slots - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	onlyAvailable := r.URL.Query().Get("onlyAvailable") == "true"

	var slots []domain.TimeSlot
	if onlyAvailable {
		slots, err = h.schedule.AvailableSlots(r.Context(), date)
	} else {
		slots, err = h.schedule.GridSlots(r.Context(), date)
	}
	if err != nil {
		h.logger.Error("GET /schedule/slots - Failed to generate slots for %s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/slots - Returned %d slots for %s (onlyAvailable=%t)",
		len(slots), rawDate, onlyAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromDomainSlots(rawDate, slots))
}
