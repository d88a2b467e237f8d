package pnr

import (
	"fmt"
	"strings"
)

// passengerIndexPrefix is the passenger association index some systems put
// in front of the surname. Only "1.1" is recognised.
const passengerIndexPrefix = "1.1"

// ParsePassengerName parses a "LAST/FIRST TITLE" line. An empty line gives an
// empty name; a line without "/" is rejected.
func ParsePassengerName(line string) (PassengerName, error) {
	var name PassengerName

	line = strings.TrimSpace(line)
	if line == "" {
		return name, nil
	}

	parts := strings.Split(line, "/")
	if len(parts) < 2 {
		return name, fmt.Errorf("%w: %q", ErrInvalidNameFormat, line)
	}

	lastName := strings.TrimSpace(parts[0])
	if strings.HasPrefix(lastName, passengerIndexPrefix) {
		lastName = strings.TrimSpace(lastName[len(passengerIndexPrefix):])
	}
	name.LastName = lastName

	firstAndTitle := strings.Split(parts[1], " ")
	name.FirstName = strings.TrimSpace(firstAndTitle[0])
	if len(firstAndTitle) > 1 {
		name.Title = strings.TrimSpace(firstAndTitle[1])
	}

	return name, nil
}
