// Package pnr extracts the record locator, passenger name and itinerary
// segments from airline PNR text.
package pnr

import (
	"errors"
	"unicode/utf8"

	"pnr-parser-service/pkg/logger"
)

var errInvalidEncoding = errors.New("input is not valid UTF-8")

// Parser turns raw PNR text into a ParsedPNR using a single segment strategy.
// A Parser holds no mutable state and may be shared between goroutines.
type Parser struct {
	segments SegmentParser
	logger   logger.Logger
}

// NewParser creates a parser. A nil strategy selects DefaultStrategy and a nil
// logger discards skip diagnostics.
func NewParser(segments SegmentParser, log logger.Logger) *Parser {
	if segments == nil {
		segments, _ = StrategyByName(DefaultStrategy)
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Parser{
		segments: segments,
		logger:   log,
	}
}

// Strategy returns the name of the segment strategy in use
func (p *Parser) Strategy() string {
	return p.segments.Name()
}

// Parse normalizes raw and extracts the record locator, the passenger name
// and the itinerary. Lines 3 onwards that are not segments are skipped and
// reported in Result.Skipped; they never fail the parse.
func (p *Parser) Parse(raw string) (*Result, error) {
	if !utf8.ValidString(raw) {
		return nil, &UnexpectedError{Op: "parse pnr", Err: errInvalidEncoding}
	}

	cleaned := Normalize(raw)
	lines, err := SplitLines(cleaned)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Cleaned: cleaned,
		Lines:   len(lines),
		PNR: ParsedPNR{
			RecordLocator: lines[0],
			Itinerary:     []Segment{},
		},
	}

	if len(lines) > 1 {
		name, err := ParsePassengerName(lines[1])
		if err != nil {
			return nil, err
		}
		result.PNR.PassengerName = name
	}

	for i := 2; i < len(lines); i++ {
		res := p.segments.ParseSegment(lines[i])
		if !res.OK() {
			p.logger.Warn("Skipping itinerary line",
				"line", i+1,
				"reason", string(res.Skip),
				"strategy", p.segments.Name(),
				"text", lines[i])
			result.Skipped = append(result.Skipped, SkippedLine{
				Line:   i + 1,
				Text:   lines[i],
				Reason: res.Skip,
			})
			continue
		}
		result.PNR.Itinerary = append(result.PNR.Itinerary, res.Segment)
	}

	p.logger.Debug("Parsed PNR",
		"recordLocator", result.PNR.RecordLocator,
		"segments", len(result.PNR.Itinerary),
		"skipped", len(result.Skipped))

	return result, nil
}

var defaultParser = NewParser(nil, nil)

// ParsePNR parses raw with the default strategy and no logging
func ParsePNR(raw string) (*ParsedPNR, error) {
	res, err := defaultParser.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &res.PNR, nil
}
