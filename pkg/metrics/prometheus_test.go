package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := NewMetrics("pnr_parser", reg)

	m.ParseRequests.WithLabelValues(OutcomeOK).Inc()
	m.ParseRequests.WithLabelValues(OutcomeInputError).Add(2)
	m.SegmentsParsed.Add(3)
	m.LinesSkipped.WithLabelValues("grammar_mismatch").Inc()
	m.ParseDuration.Observe(0.001)

	require.Equal(t, float64(1), testutil.ToFloat64(m.ParseRequests.WithLabelValues(OutcomeOK)))
	require.Equal(t, float64(2), testutil.ToFloat64(m.ParseRequests.WithLabelValues(OutcomeInputError)))
	require.Equal(t, float64(3), testutil.ToFloat64(m.SegmentsParsed))

	count, err := testutil.GatherAndCount(reg, "pnr_parser_parse_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNewMetricsSeparateRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		NewMetrics("a", prometheus.NewRegistry())
		NewMetrics("a", prometheus.NewRegistry())
	})
}
