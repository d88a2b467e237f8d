package pnr

import "strings"

const minSegmentTokens = 5

// PositionalStrategy reads fields by whitespace token position. It accepts
// looser input than GrammarStrategy: any line with at least five tokens is
// taken as a segment and missing trailing fields are left empty. Status and
// day are never filled.
type PositionalStrategy struct{}

func (PositionalStrategy) Name() string { return StrategyPositional }

func (PositionalStrategy) ParseSegment(line string) SegmentResult {
	parts := strings.Fields(line)
	if len(parts) < minSegmentTokens {
		return skip(SkipTooFewTokens)
	}

	seg := Segment{
		SegmentNumber: parts[0],
		AirlineCode:   parts[1],
		FlightNumber:  parts[2],
	}

	// With a cabin class in slot 3 everything after it shifts right by one.
	rest := parts[3:]
	if IsCabinClass(rest[0]) {
		seg.CabinClass = rest[0]
		rest = rest[1:]
	}

	seg.Date = token(rest, 0)
	seg.Route = token(rest, 1)
	seg.DepartureTime = token(rest, 2)
	seg.ArrivalTime = token(rest, 3)
	if len(rest) > 4 {
		seg.ExtraInfo = strings.Join(rest[4:], " ")
	}

	splitRoute(&seg)
	return accept(seg)
}

func token(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}
