package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	// HTTPRequestsTotal количество HTTP запросов по методу, маршруту и статусу
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration длительность обработки HTTP запросов
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInFlight количество запросов в обработке
	HTTPRequestsInFlight prometheus.Gauge

	// BookingsCreatedTotal количество созданных бронирований
	BookingsCreatedTotal prometheus.Counter

	// BookingsCancelledTotal количество отменённых бронирований
	BookingsCancelledTotal prometheus.Counter

	// BookingsRescheduledTotal количество перенесённых бронирований
	BookingsRescheduledTotal prometheus.Counter

	// BookingConflictsTotal количество бронирований, отклонённых из-за
	// конфликта слотов
	BookingConflictsTotal prometheus.Counter
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		HTTPRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being served.",
			ConstLabels: constLabels,
		}),

		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created.",
			ConstLabels: constLabels,
		}),

		BookingsCancelledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Total number of bookings cancelled.",
			ConstLabels: constLabels,
		}),

		BookingsRescheduledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_rescheduled_total",
			Help:        "Total number of bookings rescheduled.",
			ConstLabels: constLabels,
		}),

		BookingConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Total number of booking attempts rejected due to a slot conflict.",
			ConstLabels: constLabels,
		}),
	}
}

// Методы-регистраторы жизненного цикла бронирований. Безопасны при nil
// получателе: когда метрики выключены, коллектор не создаётся.

// BookingCreated увеличивает счетчик созданных бронирований
func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.Inc()
}

// BookingCancelled увеличивает счетчик отменённых бронирований
func (m *Metrics) BookingCancelled() {
	if m == nil {
		return
	}
	m.BookingsCancelledTotal.Inc()
}

// BookingRescheduled увеличивает счетчик перенесённых бронирований
func (m *Metrics) BookingRescheduled() {
	if m == nil {
		return
	}
	m.BookingsRescheduledTotal.Inc()
}

// BookingConflictRejected увеличивает счетчик отклонённых из-за конфликта
// бронирований
func (m *Metrics) BookingConflictRejected() {
	if m == nil {
		return
	}
	m.BookingConflictsTotal.Inc()
}
