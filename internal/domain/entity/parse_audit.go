// internal/domain/entity/parse_audit.go
package entity

import (
	"time"
)

// Parse audit outcomes
const (
	OutcomeOK              = "OK"
	OutcomeInputError      = "INPUT_ERROR"
	OutcomeUnexpectedError = "UNEXPECTED_ERROR"
)

// ParseAudit is the operational record of one parse request. It never holds
// PNR content, only counts and timings.
type ParseAudit struct {
	ID           string         `bson:"_id,omitempty"`
	RequestID    string         `bson:"requestId"`
	Strategy     string         `bson:"strategy"`
	Outcome      string         `bson:"outcome"`
	ErrorKind    string         `bson:"errorKind,omitempty"`
	InputBytes   int            `bson:"inputBytes"`
	LineCount    int            `bson:"lineCount"`
	SegmentCount int            `bson:"segmentCount"`
	SkippedCount int            `bson:"skippedCount"`
	SkipReasons  map[string]int `bson:"skipReasons,omitempty"`
	DurationMs   float64        `bson:"durationMs"`
	CreatedAt    time.Time      `bson:"createdAt"`
}
