package metrics

import (
	"time"

	"room-booking/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
)

// BookingMetrics observes booking attempts by outcome.
type BookingMetrics struct {
	attempts  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	committed prometheus.Gauge
}

func NewBookingMetrics(registerer prometheus.Registerer) *BookingMetrics {
	return &BookingMetrics{
		attempts: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "room_booking_attempts_total",
			Help: "Booking attempts by outcome kind",
		}, []string{"kind"}), "room_booking_attempts_total"),
		latency: register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "room_booking_attempt_duration_seconds",
			Help:    "Time spent deciding a booking attempt, including slot lock wait",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"kind"}), "room_booking_attempt_duration_seconds"),
		committed: register(registerer, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "room_booking_committed_bookings",
			Help: "Bookings held in the store",
		}), "room_booking_committed_bookings"),
	}
}

func (m *BookingMetrics) ObserveAttempt(kind string, d time.Duration) {
	m.attempts.WithLabelValues(kind).Inc()
	m.latency.WithLabelValues(kind).Observe(d.Seconds())
	if kind == commands.KindCommitted {
		m.committed.Inc()
	}
}

// SetCommitted aligns the gauge with the store, e.g. at startup.
func (m *BookingMetrics) SetCommitted(n int) {
	m.committed.Set(float64(n))
}
