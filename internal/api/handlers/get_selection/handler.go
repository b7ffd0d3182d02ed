package get_selection

import (
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
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

// Handle GET /api/v1/schedule/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := FromDomainSelection(h.schedule.SelectedDate(), h.schedule.SelectedSlot(), h.schedule.Slots())
	handlers.RespondJSON(w, http.StatusOK, resp)
}
