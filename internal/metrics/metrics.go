package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOpen   = "open"
	ResultClosed = "closed"
	ResultError  = "error"
)

// Recorder counts opening-hours evaluations.
type Recorder struct {
	evaluations *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewRecorder registers the collectors on reg. A nil reg keeps them
// unregistered, which is what tests want.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "time_manager",
			Name:      "evaluations_total",
			Help:      "Opening-hours evaluations by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "time_manager",
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent loading schedules and evaluating them.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(r.evaluations, r.duration)
	}
	return r
}

func (r *Recorder) Evaluation(result string, seconds float64) {
	if r == nil {
		return
	}
	r.evaluations.WithLabelValues(result).Inc()
	r.duration.Observe(seconds)
}

// Evaluations exposes the counter for assertions.
func (r *Recorder) Evaluations() *prometheus.CounterVec {
	return r.evaluations
}
