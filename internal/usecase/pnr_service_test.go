package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"pnr-parser-service/internal/domain/entity"
	"pnr-parser-service/pkg/logger"
	"pnr-parser-service/pkg/metrics"
	"pnr-parser-service/pkg/pnr"
)

type stubAuditRepo struct {
	saved []*entity.ParseAudit
	err   error
}

func (s *stubAuditRepo) Save(_ context.Context, audit *entity.ParseAudit) error {
	s.saved = append(s.saved, audit)
	return s.err
}

func (s *stubAuditRepo) CountByOutcome(context.Context, time.Time) (map[string]int64, error) {
	return nil, s.err
}

type panickingStrategy struct{}

func (panickingStrategy) Name() string { return "panicking" }

func (panickingStrategy) ParseSegment(string) pnr.SegmentResult {
	panic("boom")
}

func newTestService(t *testing.T, segments pnr.SegmentParser, repo *stubAuditRepo) (*PNRService, *metrics.Metrics) {
	t.Helper()
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	svc := NewPNRService(pnr.NewParser(segments, nil), repo, m, logger.NewNop())
	return svc, m
}

func TestPNRServiceParse(t *testing.T) {
	t.Run("Should parse and audit a valid PNR", func(t *testing.T) {
		repo := &stubAuditRepo{}
		svc, m := newTestService(t, pnr.GrammarStrategy{}, repo)

		raw := "ABC123\nSMITH/JOHN MR\n1 AA 100 Y 01JAN JFKLAX 0800 1100 MEAL\nREMARKS\n2 AA 200 Y 02JAN LAXJFK 0900 1700"
		res, err := svc.Parse(context.Background(), "req-1", raw)
		require.NoError(t, err)
		require.Len(t, res.PNR.Itinerary, 2)

		require.Len(t, repo.saved, 1)
		audit := repo.saved[0]
		require.Equal(t, "req-1", audit.RequestID)
		require.Equal(t, entity.OutcomeOK, audit.Outcome)
		require.Equal(t, "grammar", audit.Strategy)
		require.Equal(t, 5, audit.LineCount)
		require.Equal(t, 2, audit.SegmentCount)
		require.Equal(t, 1, audit.SkippedCount)
		require.Equal(t, map[string]int{"grammar_mismatch": 1}, audit.SkipReasons)
		require.Equal(t, len(raw), audit.InputBytes)
		require.False(t, audit.CreatedAt.IsZero())

		require.Equal(t, float64(1), testutil.ToFloat64(m.ParseRequests.WithLabelValues(metrics.OutcomeOK)))
		require.Equal(t, float64(2), testutil.ToFloat64(m.SegmentsParsed))
		require.Equal(t, float64(1), testutil.ToFloat64(m.LinesSkipped.WithLabelValues("grammar_mismatch")))
	})
	t.Run("Should return input errors unchanged", func(t *testing.T) {
		repo := &stubAuditRepo{}
		svc, m := newTestService(t, nil, repo)

		res, err := svc.Parse(context.Background(), "req-2", "ABC123\nSMITHJOHN")
		require.ErrorIs(t, err, pnr.ErrInvalidNameFormat)
		require.Nil(t, res)

		require.Len(t, repo.saved, 1)
		require.Equal(t, entity.OutcomeInputError, repo.saved[0].Outcome)
		require.Equal(t, "invalid_name_format", repo.saved[0].ErrorKind)
		require.Equal(t, float64(1), testutil.ToFloat64(m.ParseRequests.WithLabelValues(metrics.OutcomeInputError)))
	})
	t.Run("Should classify empty input", func(t *testing.T) {
		repo := &stubAuditRepo{}
		svc, _ := newTestService(t, nil, repo)

		_, err := svc.Parse(context.Background(), "req-3", "\n\n")
		require.ErrorIs(t, err, pnr.ErrEmptyInput)
		require.Equal(t, "empty_input", repo.saved[0].ErrorKind)
	})
	t.Run("Should turn a panic into an unexpected error", func(t *testing.T) {
		repo := &stubAuditRepo{}
		svc, m := newTestService(t, panickingStrategy{}, repo)

		res, err := svc.Parse(context.Background(), "req-4", "ABC123\nSMITH/JOHN\n1 AA 100")
		require.Nil(t, res)

		var unexpected *pnr.UnexpectedError
		require.True(t, errors.As(err, &unexpected))
		require.Contains(t, err.Error(), "boom")
		require.Equal(t, entity.OutcomeUnexpectedError, repo.saved[0].Outcome)
		require.Equal(t, float64(1), testutil.ToFloat64(m.ParseRequests.WithLabelValues(metrics.OutcomeUnexpectedError)))
	})
	t.Run("Should not fail the request when the audit fails", func(t *testing.T) {
		repo := &stubAuditRepo{err: errors.New("mongo down")}
		svc, _ := newTestService(t, nil, repo)

		res, err := svc.Parse(context.Background(), "req-5", "ABC123")
		require.NoError(t, err)
		require.Equal(t, "ABC123", res.PNR.RecordLocator)
	})
	t.Run("Should audit even when the request context is cancelled", func(t *testing.T) {
		repo := &stubAuditRepo{}
		svc, _ := newTestService(t, nil, repo)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.Parse(ctx, "req-6", "ABC123")
		require.NoError(t, err)
		require.Len(t, repo.saved, 1)
	})
}
