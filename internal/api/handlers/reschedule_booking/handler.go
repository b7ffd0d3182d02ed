package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	rescheduleBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_booking"
)

const (
	msgMissingBookingID   = "не указан ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound           = "бронирование не найдено"
	msgCannotReschedule   = "бронирование не может быть перенесено"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgInvalidBookingDate = "некорректная дата бронирования"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgDayNotAvailable    = "выбранный день недоступен для бронирования"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrCannotReschedule):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Cannot reschedule: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgCannotReschedule)

		case errors.Is(err, rescheduleBooking.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot not available: booking_id=%s, date=%s, time=%s",
				bookingID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, rescheduleBooking.ErrInvalidDate):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, rescheduleBooking.ErrDateTooFarInFuture):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, rescheduleBooking.ErrDayNotAvailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Day not available: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDayNotAvailable)

		case errors.Is(err, rescheduleBooking.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid time slot: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, rescheduleBooking.ErrTooLateToBook):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Too late to book: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled successfully: booking_id=%s, date=%s, time=%s",
		bookingID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
