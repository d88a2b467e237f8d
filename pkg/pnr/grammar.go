package pnr

import (
	"regexp"
	"strings"
)

// segmentGrammar matches a full itinerary line, e.g.
//
//	1 AA 100 Y 01JAN M JFKLAX HK1 0800 1100 MEAL
//
// Cabin class, day and status are optional.
var segmentGrammar = regexp.MustCompile(`^` +
	`(?P<segment>\d+)\s+` +
	`(?P<airline>[A-Z]{2})\s+` +
	`(?P<flight>\d+)\s+` +
	`(?:(?P<cabin>[FJCYWS])\s+)?` +
	`(?P<date>\d{2}[A-Z]{3})\s+` +
	`(?:(?P<day>[A-Z])\s+)?` +
	`(?P<route>[A-Z]{6})\s+` +
	`(?:(?P<status>[A-Z0-9]{2,3})\s+)?` +
	`(?P<departure>\d{4})\s+` +
	`(?P<arrival>\d{4})` +
	`(?:\s+(?P<extra>.*))?$`)

var (
	grammarSegment   = segmentGrammar.SubexpIndex("segment")
	grammarAirline   = segmentGrammar.SubexpIndex("airline")
	grammarFlight    = segmentGrammar.SubexpIndex("flight")
	grammarCabin     = segmentGrammar.SubexpIndex("cabin")
	grammarDate      = segmentGrammar.SubexpIndex("date")
	grammarDay       = segmentGrammar.SubexpIndex("day")
	grammarRoute     = segmentGrammar.SubexpIndex("route")
	grammarStatus    = segmentGrammar.SubexpIndex("status")
	grammarDeparture = segmentGrammar.SubexpIndex("departure")
	grammarArrival   = segmentGrammar.SubexpIndex("arrival")
	grammarExtra     = segmentGrammar.SubexpIndex("extra")
)

// GrammarStrategy accepts only lines that satisfy the full segment grammar.
// It is the only strategy that captures day and status.
type GrammarStrategy struct{}

func (GrammarStrategy) Name() string { return StrategyGrammar }

func (GrammarStrategy) ParseSegment(line string) SegmentResult {
	m := segmentGrammar.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return skip(SkipGrammarMismatch)
	}

	seg := Segment{
		SegmentNumber: m[grammarSegment],
		AirlineCode:   m[grammarAirline],
		FlightNumber:  m[grammarFlight],
		CabinClass:    m[grammarCabin],
		Date:          m[grammarDate],
		Day:           m[grammarDay],
		Route:         m[grammarRoute],
		Status:        m[grammarStatus],
		DepartureTime: m[grammarDeparture],
		ArrivalTime:   m[grammarArrival],
		ExtraInfo:     strings.TrimSpace(m[grammarExtra]),
	}
	splitRoute(&seg)
	return accept(seg)
}
