package sectorfile

import (
	"fmt"
	"strings"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
	"github.com/jamiedatty/London-Control-Sim-Parser/navdata"
)

// Minimum whitespace-separated tokens per data line.
const (
	airportTokens = 5
	runwayTokens  = 9
	navaidTokens  = 4
	fixTokens     = 3
)

// NavDataSections are the sections Extract reads.
var NavDataSections = []string{SectionAirport, SectionRunway, SectionVOR, SectionNDB, SectionFixes}

// Extract builds navigation records from scanned sections. Lines with too
// few tokens are dropped and recorded in diags under filename.
func Extract(secs *Sections, filename string, diags *londonctrl.Diagnostics) *navdata.Data {
	data := &navdata.Data{}

	data.Airports = extract(secs.Lines(SectionAirport), SectionAirport, filename, diags, parseAirport)
	data.Runways = extract(secs.Lines(SectionRunway), SectionRunway, filename, diags, parseRunway)
	data.VORs = extract(secs.Lines(SectionVOR), SectionVOR, filename, diags, func(tokens []string) (navdata.Navaid, error) {
		return parseNavaid(tokens, navdata.KindVOR)
	})
	data.NDBs = extract(secs.Lines(SectionNDB), SectionNDB, filename, diags, func(tokens []string) (navdata.Navaid, error) {
		return parseNavaid(tokens, navdata.KindNDB)
	})
	data.Fixes = extract(secs.Lines(SectionFixes), SectionFixes, filename, diags, parseFix)

	return data
}

// ParseFile scans path for the navigation sections and extracts them.
func ParseFile(path string, diags *londonctrl.Diagnostics) (*navdata.Data, error) {
	secs, err := ScanFile(path, CollectAll(NavDataSections...))
	if err != nil {
		return nil, err
	}
	return Extract(secs, path, diags), nil
}

func extract[T any](lines []Line, section, filename string, diags *londonctrl.Diagnostics, parse func([]string) (T, error)) []T {
	l := log.WithField("section", section)
	records := make([]T, 0, len(lines))
	for _, line := range lines {
		rec, err := parse(strings.Fields(line.Text))
		if err != nil {
			l.WithError(err).WithField("line", line.Num).Debug("skipping record")
			diags.Addf(filename, line.Num, londonctrl.KindShortRecord, "[%s] %v: '%s'", section, err, line.Text)
			continue
		}
		records = append(records, rec)
	}
	return records
}

func tooShort(tokens []string, min int) error {
	if len(tokens) < min {
		return fmt.Errorf("expected %d tokens, got %d", min, len(tokens))
	}
	return nil
}

// EGLL 118.500 N051.28.39.000 W000.27.41.000 D
func parseAirport(tokens []string) (navdata.Airport, error) {
	if err := tooShort(tokens, airportTokens); err != nil {
		return navdata.Airport{}, err
	}
	return navdata.Airport{
		ICAO:      tokens[0],
		Frequency: tokens[1],
		Latitude:  tokens[2],
		Longitude: tokens[3],
		Type:      tokens[4],
	}, nil
}

// 09L 27R 089 269 N051.28.39.000 W000.29.02.000 N051.28.40.000 W000.26.00.000 EGLL
func parseRunway(tokens []string) (navdata.Runway, error) {
	if err := tooShort(tokens, runwayTokens); err != nil {
		return navdata.Runway{}, err
	}
	return navdata.Runway{
		Runway1:  tokens[0],
		Runway2:  tokens[1],
		Heading1: tokens[2],
		Heading2: tokens[3],
		Lat1:     tokens[4],
		Lon1:     tokens[5],
		Lat2:     tokens[6],
		Lon2:     tokens[7],
		Airport:  tokens[8],
	}, nil
}

// LON 113.600 N051.29.12.000 W000.28.00.000
func parseNavaid(tokens []string, kind navdata.NavaidKind) (navdata.Navaid, error) {
	if err := tooShort(tokens, navaidTokens); err != nil {
		return navdata.Navaid{}, err
	}
	return navdata.Navaid{
		Kind:      kind,
		Ident:     tokens[0],
		Frequency: tokens[1],
		Latitude:  tokens[2],
		Longitude: tokens[3],
	}, nil
}

// BARTN N053.18.00.000 W002.40.00.000
//
// A two-token line keeps its second token as the latitude and leaves the
// longitude empty, so the table row still carries it.
func parseFix(tokens []string) (navdata.Fix, error) {
	if len(tokens) == 2 {
		return navdata.Fix{Ident: tokens[0], Latitude: tokens[1]}, nil
	}
	if err := tooShort(tokens, fixTokens); err != nil {
		return navdata.Fix{}, err
	}
	return navdata.Fix{
		Ident:     tokens[0],
		Latitude:  tokens[1],
		Longitude: tokens[2],
	}, nil
}
