package pnr

// ParsedPNR is the structured form of a single PNR text block
type ParsedPNR struct {
	RecordLocator string        `json:"record_locator"`
	PassengerName PassengerName `json:"passenger_name"`
	Itinerary     []Segment     `json:"itinerary"`
}

// PassengerName holds the components of the name line.
// Absent components are empty strings.
type PassengerName struct {
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Title     string `json:"title"`
}

// Segment is one itinerary line. Codes are kept verbatim and not checked
// against any airline or airport table.
type Segment struct {
	SegmentNumber     string `json:"segment_number"`
	AirlineCode       string `json:"airline_code"`
	FlightNumber      string `json:"flight_number"`
	CabinClass        string `json:"cabin_class"`
	Date              string `json:"date"`
	Day               string `json:"day"`
	Route             string `json:"route"`
	DepartureLocation string `json:"departure_location"`
	ArrivalLocation   string `json:"arrival_location"`
	Status            string `json:"status"`
	DepartureTime     string `json:"departure_time"`
	ArrivalTime       string `json:"arrival_time"`
	ExtraInfo         string `json:"extra_info"`
}

// SkipReason explains why an itinerary line produced no segment
type SkipReason string

const (
	SkipTooFewTokens    SkipReason = "too_few_tokens"
	SkipGrammarMismatch SkipReason = "grammar_mismatch"
)

// SegmentResult is the outcome of parsing one itinerary line: either a
// Segment or a SkipReason, never both.
type SegmentResult struct {
	Segment Segment
	Skip    SkipReason
}

// OK reports whether the line produced a segment
func (r SegmentResult) OK() bool {
	return r.Skip == ""
}

func accept(seg Segment) SegmentResult {
	return SegmentResult{Segment: seg}
}

func skip(reason SkipReason) SegmentResult {
	return SegmentResult{Skip: reason}
}

// SkippedLine records an itinerary line that was dropped
type SkippedLine struct {
	Line   int        // 1-based position among non-blank lines
	Text   string
	Reason SkipReason
}

// Result is what Parser.Parse returns on success
type Result struct {
	PNR     ParsedPNR
	Cleaned string
	Skipped []SkippedLine
	// Lines is the number of non-blank lines after splitting.
	Lines int
}

var cabinClasses = map[string]struct{}{
	"F": {}, "J": {}, "C": {}, "Y": {}, "W": {}, "S": {},
}

// IsCabinClass reports whether value is one of F, J, C, Y, W or S
func IsCabinClass(value string) bool {
	_, ok := cabinClasses[value]
	return ok
}

// splitRoute fills the departure and arrival locations from the route.
// A route shorter than three characters goes entirely to departure.
func splitRoute(seg *Segment) {
	switch {
	case seg.Route == "":
		seg.DepartureLocation = ""
		seg.ArrivalLocation = ""
	case len(seg.Route) <= 3:
		seg.DepartureLocation = seg.Route
		seg.ArrivalLocation = ""
	default:
		seg.DepartureLocation = seg.Route[:3]
		seg.ArrivalLocation = seg.Route[3:]
	}
}
