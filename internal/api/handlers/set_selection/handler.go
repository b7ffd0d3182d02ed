package set_selection

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoDateSelected     = "сначала выберите дату"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotAvailable   = "слот недоступен для выбора"
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

// Handle PUT /api/v1/schedule/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			h.logger.Warn("PUT /schedule/selection - Invalid date %q: %v", *req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}

		if _, err := h.schedule.SetSelectedDate(r.Context(), date); err != nil {
			h.logger.Error("PUT /schedule/selection - Failed to select date %s: %v", *req.Date, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	switch {
	case req.SlotID != nil:
		if _, err := h.schedule.SetSelectedSlot(*req.SlotID); err != nil {
			switch {
			case errors.Is(err, schedule.ErrNoDateSelected):
				h.logger.Warn("PUT /schedule/selection - No date selected")
				handlers.RespondBadRequest(w, msgNoDateSelected)

			case errors.Is(err, schedule.ErrSlotNotFound):
				h.logger.Warn("PUT /schedule/selection - Slot not found: slot_id=%s", *req.SlotID)
				handlers.RespondNotFound(w, msgSlotNotFound)

			case errors.Is(err, schedule.ErrSlotNotAvailable):
				h.logger.Warn("PUT /schedule/selection - Slot not available: slot_id=%s", *req.SlotID)
				handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

			default:
				h.logger.Error("PUT /schedule/selection - Failed to select slot: slot_id=%s, error=%v",
					*req.SlotID, err)
				handlers.RespondInternalError(w)
			}
			return
		}

	case req.Date == nil:
		// Пустой запрос: сбрасываем выбранный слот
		h.schedule.ClearSelectedSlot()
	}

	h.logger.Info("PUT /schedule/selection - Selection updated")
	resp := FromDomainSelection(h.schedule.SelectedDate(), h.schedule.SelectedSlot(), h.schedule.Slots())
	handlers.RespondJSON(w, http.StatusOK, resp)
}
