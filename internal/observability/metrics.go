package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_service",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_service",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations per activity.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_service",
		Subsystem: "roster",
		Name:      "rejections_total",
		Help:      "Number of rejected roster mutations grouped by operation and reason.",
	}, []string{"operation", "reason"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activity_service",
		Subsystem: "roster",
		Name:      "size",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})

	publishErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_service",
		Subsystem: "events",
		Name:      "publish_errors_total",
		Help:      "Number of roster event delivery failures per topic.",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter, rosterSizeGauge, publishErrorCounter)
}

// RecordSignup counts a successful signup and updates the roster gauge.
func RecordSignup(activity string, size int) {
	signupCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(size))
}

// RecordUnregister counts a successful unregistration and updates the roster gauge.
func RecordUnregister(activity string, size int) {
	unregisterCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(size))
}

// RecordRejection counts a rejected mutation.
func RecordRejection(operation, reason string) {
	rejectionCounter.WithLabelValues(operation, reason).Inc()
}

// SetRosterSize primes the roster gauge, e.g. with the seeded state at startup.
func SetRosterSize(activity string, size int) {
	rosterSizeGauge.WithLabelValues(activity).Set(float64(size))
}

// RecordPublishError counts a failed roster event delivery.
func RecordPublishError(topic string) {
	publishErrorCounter.WithLabelValues(topic).Inc()
}

// SignupCounter exposes the per-activity signup counter so callers (e.g. tests)
// can read it back.
func SignupCounter(activity string) prometheus.Counter {
	return signupCounter.WithLabelValues(activity)
}
