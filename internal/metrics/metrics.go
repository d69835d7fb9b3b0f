// Package metrics — Prometheus-счётчики бота, отдаются health-сервером
// на /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Sweeps = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_sweeps_total",
			Help: "Full instrument sweeps completed",
		},
	)

	Signals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_signals_total",
			Help: "Crossover signals produced",
		},
		[]string{"side"}, // LONG|SHORT
	)

	OrdersPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_orders_placed_total",
			Help: "Orders placed",
		},
		[]string{"kind"}, // entry|take_profit|stop_loss|breakeven
	)

	OrdersCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_orders_cancelled_total",
			Help: "Protective orders cancelled by housekeeping",
		},
	)

	RemoteErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_remote_errors_total",
			Help: "Remote API failures by class",
		},
		[]string{"class"}, // transient|rejected
	)

	OpenPositions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bot_open_positions",
			Help: "Open positions observed on the last sweep",
		},
	)
)

func init() {
	prometheus.MustRegister(
		Sweeps,
		Signals,
		OrdersPlaced,
		OrdersCancelled,
		RemoteErrors,
		OpenPositions,
	)
}
