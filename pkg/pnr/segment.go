package pnr

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy names accepted by StrategyByName
const (
	StrategyGrammar    = "grammar"
	StrategyPositional = "positional"
)

// DefaultStrategy is used when no strategy is configured
const DefaultStrategy = StrategyGrammar

// SegmentParser turns one itinerary line into a SegmentResult.
// Implementations must be safe for concurrent use.
type SegmentParser interface {
	Name() string
	ParseSegment(line string) SegmentResult
}

var strategies = map[string]SegmentParser{
	StrategyGrammar:    GrammarStrategy{},
	StrategyPositional: PositionalStrategy{},
}

// StrategyByName returns the named segment parser. An empty name selects
// DefaultStrategy.
func StrategyByName(name string) (SegmentParser, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultStrategy
	}
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (one of %q)", ErrUnknownStrategy, name, StrategyNames())
	}
	return s, nil
}

// StrategyNames lists the registered strategy names in sorted order
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
