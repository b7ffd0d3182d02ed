package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	schedule    ScheduleState
	metrics     MetricsRecorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	schedule ScheduleState,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		schedule:    schedule,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по дате и статусу.
// По умолчанию отменённые бронирования не возвращаются.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, date=%v, status=%v, includeInactive=%t",
		req.Date, req.Status, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Запись не удаляется: статус становится cancelled, слоты дня освобождаются.
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s has status %s", id, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to cancel booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	s.metrics.BookingCancelled()

	// Освобождённые слоты возвращаются в сетку
	if err := s.schedule.Regenerate(ctx, booking.BookingDate); err != nil {
		s.logger.Error("Cancel: failed to regenerate slots for %s: %v",
			booking.BookingDate.Format("2006-01-02"), err)
	}

	return nil
}
