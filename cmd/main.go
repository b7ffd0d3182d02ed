package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_booking"
	getSelectionHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_selection"
	listBookingsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_bookings"
	rescheduleBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/reschedule_booking"
	setSelectionHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/set_selection"
	updateAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_availability"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	settingsRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/meetlink"
	availabilityService "github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	scheduleService "github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
	generateSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/generate_slots"
	rescheduleBookingUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_booking"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Стартовые настройки доступности из конфигурации
	defaultSettings, err := cfg.Availability.ToDomainSettings()
	if err != nil {
		log.Fatal("Failed to build availability settings: %v", err)
	}

	// Инициализируем хранилища
	bookingRepository := bookingRepo.NewRepository(cfg.Booking.SimulatedLatency())
	settingsRepository := settingsRepo.NewRepository(defaultSettings)
	txMgr := txmanager.NewTransactionManager()
	log.Info("In-memory storage initialized (simulated latency: %s)", cfg.Booking.SimulatedLatency())

	// Провайдер ссылок на видеовстречи (пока заглушка)
	meetLinkProvider := meetlink.NewStatic(cfg.Booking.MeetingLink)

	// Инициализируем use cases и сервисы.
	// Расписание зависит от генератора слотов, остальные сервисы зависят от расписания.
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(generateSlotsUseCase, log)

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		scheduleSvc,
		metricsCollector,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		settingsRepository,
		scheduleSvc,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		meetLinkProvider,
		scheduleSvc,
		txMgr,
		metricsCollector,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		scheduleSvc,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(scheduleSvc, log)
	getSelection := getSelectionHandler.NewHandler(scheduleSvc, log)
	setSelection := setSelectionHandler.NewHandler(scheduleSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Расписание ---
	// Сетка слотов на дату
	api.HandleFunc("/schedule/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Текущий выбор даты и слота
	api.HandleFunc("/schedule/selection", getSelection.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/selection", setSelection.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перенос бронирования на другой слот
	api.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// --- Настройки доступности ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", updateAvailability.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
