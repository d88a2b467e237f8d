package repository

import (
	"context"
	"time"

	"pnr-parser-service/internal/domain/entity"
)

// ParseAuditRepository defines the interface for parse audit storage
type ParseAuditRepository interface {
	Save(ctx context.Context, audit *entity.ParseAudit) error
	CountByOutcome(ctx context.Context, since time.Time) (map[string]int64, error)
}
