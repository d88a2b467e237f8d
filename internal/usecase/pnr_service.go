package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pnr-parser-service/internal/domain/entity"
	"pnr-parser-service/internal/domain/repository"
	"pnr-parser-service/pkg/logger"
	"pnr-parser-service/pkg/metrics"
	"pnr-parser-service/pkg/pnr"
)

const auditTimeout = 2 * time.Second

// PNRService runs the PNR parser for one request and records metrics and an audit entry
type PNRService struct {
	parser    *pnr.Parser
	auditRepo repository.ParseAuditRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
	now       func() time.Time
}

// NewPNRService creates a new PNR service
func NewPNRService(
	parser *pnr.Parser,
	auditRepo repository.ParseAuditRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *PNRService {
	return &PNRService{
		parser:    parser,
		auditRepo: auditRepo,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Parse parses raw PNR text. Input errors are returned as is so callers can
// match them with pnr.IsInputError; a panic inside the parser comes back as
// *pnr.UnexpectedError.
func (s *PNRService) Parse(ctx context.Context, requestID, raw string) (*pnr.Result, error) {
	start := s.now()
	log := s.logger.With("requestId", requestID)

	result, err := s.safeParse(raw)
	elapsed := s.now().Sub(start)

	s.metrics.ParseDuration.Observe(elapsed.Seconds())
	audit := &entity.ParseAudit{
		RequestID:  requestID,
		Strategy:   s.parser.Strategy(),
		InputBytes: len(raw),
		DurationMs: float64(elapsed.Microseconds()) / 1000,
	}

	switch {
	case err == nil:
		audit.Outcome = entity.OutcomeOK
		audit.LineCount = result.Lines
		audit.SegmentCount = len(result.PNR.Itinerary)
		audit.SkippedCount = len(result.Skipped)
		audit.SkipReasons = countSkipReasons(result.Skipped)

		s.metrics.ParseRequests.WithLabelValues(metrics.OutcomeOK).Inc()
		s.metrics.SegmentsParsed.Add(float64(len(result.PNR.Itinerary)))
		for reason, n := range audit.SkipReasons {
			s.metrics.LinesSkipped.WithLabelValues(reason).Add(float64(n))
		}
		log.Info("Parsed PNR",
			"segments", audit.SegmentCount,
			"skipped", audit.SkippedCount,
			"durationMs", audit.DurationMs)
	case pnr.IsInputError(err):
		audit.Outcome = entity.OutcomeInputError
		audit.ErrorKind = errorKind(err)
		s.metrics.ParseRequests.WithLabelValues(metrics.OutcomeInputError).Inc()
		log.Warn("Rejected PNR input", "error", err)
	default:
		audit.Outcome = entity.OutcomeUnexpectedError
		audit.ErrorKind = errorKind(err)
		s.metrics.ParseRequests.WithLabelValues(metrics.OutcomeUnexpectedError).Inc()
		log.Error("Failed to parse PNR", "error", err)
	}

	s.saveAudit(ctx, log, audit)

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PNRService) safeParse(raw string) (result *pnr.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &pnr.UnexpectedError{Op: "parse pnr", Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	return s.parser.Parse(raw)
}

// saveAudit stores the audit entry. Audit failures are logged only.
func (s *PNRService) saveAudit(ctx context.Context, log logger.Logger, audit *entity.ParseAudit) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()

	audit.CreatedAt = s.now().UTC()
	if err := s.auditRepo.Save(ctx, audit); err != nil {
		log.Error("Failed to save parse audit", "error", err)
	}
}

func countSkipReasons(skipped []pnr.SkippedLine) map[string]int {
	if len(skipped) == 0 {
		return nil
	}
	reasons := make(map[string]int)
	for _, line := range skipped {
		reasons[string(line.Reason)]++
	}
	return reasons
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, pnr.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, pnr.ErrInvalidNameFormat):
		return "invalid_name_format"
	default:
		return "unexpected"
	}
}
