package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "bookings_created_total",
			Help:      "Count of bookings created through the public funnel.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "booking_conflicts_total",
			Help:      "Count of submissions rejected because the slot was taken.",
		},
	)

	bookingStatusChanged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "booking_status_changed_total",
			Help:      "Count of booking status transitions.",
		},
		[]string{"status"},
	)

	availabilityFailOpen = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "availability_fail_open_total",
			Help:      "Count of availability requests degraded to all-open after an upstream fetch error.",
		},
		[]string{"source"},
	)

	visitsTracked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "visits_tracked_total",
			Help:      "Count of site visits accepted for recording.",
		},
	)

	visitsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon_booking",
			Name:      "visits_dropped_total",
			Help:      "Count of site visits dropped because the recording queue was full.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingCreated,
			bookingConflicts,
			bookingStatusChanged,
			availabilityFailOpen,
			visitsTracked,
			visitsDropped,
		)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingConflict() {
	bookingConflicts.Inc()
}

func IncBookingStatusChanged(status string) {
	bookingStatusChanged.WithLabelValues(status).Inc()
}

func IncAvailabilityFailOpen(source string) {
	availabilityFailOpen.WithLabelValues(source).Inc()
}

func IncVisitTracked() {
	visitsTracked.Inc()
}

func IncVisitDropped() {
	visitsDropped.Inc()
}
