package bootstrap

import (
	"room-booking/internal/infra/repository"
	"room-booking/internal/metrics"
	"room-booking/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		// /metrics serves the default registry
		func() prometheus.Registerer { return prometheus.DefaultRegisterer },
		metrics.NewHTTPMetrics,
		fx.Annotate(
			metrics.NewBookingMetrics,
			fx.As(fx.Self()),
			fx.As(new(commands.AttemptRecorder)),
		),
	),
	fx.Invoke(func(m *metrics.BookingMetrics, store *repository.BookingStore) {
		m.SetCommitted(store.Count())
	}),
)
