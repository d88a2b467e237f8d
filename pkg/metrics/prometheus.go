package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Parse outcomes used as the "outcome" label
const (
	OutcomeOK              = "ok"
	OutcomeInputError      = "input_error"
	OutcomeUnexpectedError = "unexpected_error"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ParseRequests  *prometheus.CounterVec
	SegmentsParsed prometheus.Counter
	LinesSkipped   *prometheus.CounterVec
	ParseDuration  prometheus.Histogram
}

// NewMetrics creates prometheus metrics registered on reg.
// A nil reg registers on the default registerer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ParseRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_requests_total",
			Help:      "The total number of PNR parse requests by outcome",
		}, []string{"outcome"}),
		SegmentsParsed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "segments_parsed_total",
			Help:      "The total number of itinerary segments extracted",
		}),
		LinesSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_skipped_total",
			Help:      "The total number of itinerary lines skipped",
		}, []string{"reason"}),
		ParseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Time taken to parse a PNR",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
	}
}
