package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	StatusTransitions   *prometheus.CounterVec
	ParticipationToggle *prometheus.CounterVec
	FavouriteToggle     *prometheus.CounterVec
	NotificationsSent   *prometheus.CounterVec
	DeliveryFailures    *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ritmo_http_requests_total",
				Help: "Total number of HTTP requests by route and status class",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ritmo_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		StatusTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ritmo_event_status_transitions_total",
				Help: "Event status transitions by target status",
			},
			[]string{"status"},
		),
		ParticipationToggle: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ritmo_participation_toggles_total",
				Help: "Participation joins and leaves",
			},
			[]string{"action"},
		),
		FavouriteToggle: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ritmo_favourite_toggles_total",
				Help: "Favourite additions and removals",
			},
			[]string{"action"},
		),
		NotificationsSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ritmo_notifications_created_total",
				Help: "In-app notifications created by type",
			},
			[]string{"type"},
		),
		DeliveryFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ritmo_delivery_failures_total",
				Help: "Failed best-effort side effects by kind",
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.StatusTransitions,
		m.ParticipationToggle,
		m.FavouriteToggle,
		m.NotificationsSent,
		m.DeliveryFailures,
	)

	return m
}

// NewNop returns collectors registered on a throwaway registry, for tests and tools.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
