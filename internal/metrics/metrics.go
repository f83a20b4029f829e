package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_bookings_created_total",
		Help: "Bookings successfully created.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_booking_conflicts_total",
		Help: "Booking attempts rejected by conflict validation.",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salon_booking_status_transitions_total",
		Help: "Booking status transitions by target status.",
	}, []string{"status"})

	SlotQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salon_availability_queries_total",
		Help: "Availability slot computations served.",
	})
)
