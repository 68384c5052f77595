package navdata

import (
	"fmt"
	"strings"
)

// Minimum number of comma-separated fields per table row.
const (
	airportFields = 5
	runwayFields  = 9
	navaidFields  = 4
	fixFields     = 3
)

func splitRow(line string, min int) ([]string, error) {
	tokens := strings.Split(line, ",")
	if len(tokens) < min {
		return nil, fmt.Errorf("expected %d fields, got %d in '%s'", min, len(tokens), line)
	}
	return tokens, nil
}

func parseAirportRow(line string, num int) (Airport, error) {
	tokens, err := splitRow(line, airportFields)
	if err != nil {
		return Airport{}, err
	}
	return Airport{
		ICAO:      tokens[0],
		Frequency: tokens[1],
		Latitude:  tokens[2],
		Longitude: tokens[3],
		Type:      tokens[4],
		Line:      num,
	}, nil
}

func parseRunwayRow(line string, num int) (Runway, error) {
	tokens, err := splitRow(line, runwayFields)
	if err != nil {
		return Runway{}, err
	}
	return Runway{
		Runway1:  tokens[0],
		Runway2:  tokens[1],
		Heading1: tokens[2],
		Heading2: tokens[3],
		Lat1:     tokens[4],
		Lon1:     tokens[5],
		Lat2:     tokens[6],
		Lon2:     tokens[7],
		Airport:  tokens[8],
		Line:     num,
	}, nil
}

func parseNavaidRow(line string, num int, kind NavaidKind) (Navaid, error) {
	tokens, err := splitRow(line, navaidFields)
	if err != nil {
		return Navaid{}, err
	}
	return Navaid{
		Kind:      kind,
		Ident:     tokens[0],
		Frequency: tokens[1],
		Latitude:  tokens[2],
		Longitude: tokens[3],
		Line:      num,
	}, nil
}

func parseFixRow(line string, num int) (Fix, error) {
	tokens, err := splitRow(line, fixFields)
	if err != nil {
		return Fix{}, err
	}
	return Fix{
		Ident:     tokens[0],
		Latitude:  tokens[1],
		Longitude: tokens[2],
		Line:      num,
	}, nil
}
