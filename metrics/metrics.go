package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	prometheusMetrics sync.Once

	drawsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seedrand",
			Subsystem: "engine",
			Name:      "draws_total",
			Help:      "Number of bounded values drawn from engines, by engine width.",
		},
		[]string{"width"})
	draws32 = drawsTotal.WithLabelValues("32")
	draws64 = drawsTotal.WithLabelValues("64")

	rejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seedrand",
			Subsystem: "engine",
			Name:      "rejected_requests_total",
			Help:      "Number of draw and sequence requests rejected before advancing an engine, by reason.",
		},
		[]string{"reason"})

	sequencesProduced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "seedrand",
			Subsystem: "sequence",
			Name:      "produced_total",
			Help:      "Number of sequence streams produced.",
		})
	valuesEmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "seedrand",
			Subsystem: "sequence",
			Name:      "values_emitted_total",
			Help:      "Number of sequence values handed to stream consumers.",
		})
	streamsClosedEarly = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "seedrand",
			Subsystem: "sequence",
			Name:      "closed_early_total",
			Help:      "Number of sequence streams closed before all values were emitted.",
		})
)

// Register adds the collectors to the default Prometheus registry. It is
// safe to call more than once.
func Register() {
	prometheusMetrics.Do(func() {
		prometheus.MustRegister(drawsTotal)
		prometheus.MustRegister(rejectedTotal)
		prometheus.MustRegister(sequencesProduced)
		prometheus.MustRegister(valuesEmitted)
		prometheus.MustRegister(streamsClosedEarly)
	})
}

// Draws counts n values drawn from an engine of the given bit width.
func Draws(width int, n int) {
	if width == 64 {
		draws64.Add(float64(n))
	} else {
		draws32.Add(float64(n))
	}
}

// Rejected counts a request refused for reason ("range", "overflow").
func Rejected(reason string) {
	rejectedTotal.WithLabelValues(reason).Inc()
}

func SequenceProduced() {
	sequencesProduced.Inc()
}

func ValuesEmitted(n int) {
	valuesEmitted.Add(float64(n))
}

func StreamClosedEarly() {
	streamsClosedEarly.Inc()
}
