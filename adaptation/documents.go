package adaptation

import (
	"strconv"
)

// Fixed values the client expects but the sector file does not carry.
const (
	defaultElevation          = "0"
	defaultTransitionAltitude = "6000"
	defaultCountry            = "GB"
	defaultRunwayLength       = "0"
	defaultRunwayWidth        = "45"
	fixTypeWaypoint           = "WAYPOINT"
)

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// AirportsDocument renders airports.ini, one section per ICAO code.
func AirportsDocument(airports []ResolvedAirport) *Document {
	doc := NewDocument()
	for _, a := range airports {
		doc.Set(a.ICAO,
			Field{"Name", "Airport " + a.ICAO},
			Field{"Frequency", a.Frequency},
			Field{"Latitude", formatDegrees(a.Position.Lat())},
			Field{"Longitude", formatDegrees(a.Position.Lon())},
			Field{"Elevation", defaultElevation},
			Field{"TransitionAltitude", defaultTransitionAltitude},
			Field{"Country", defaultCountry},
		)
	}
	return doc
}

// RunwaysDocument renders runways.ini with sections named
// "<AIRPORT>_<RUNWAY>".
func RunwaysDocument(runways []ResolvedRunway) *Document {
	doc := NewDocument()
	for _, r := range runways {
		doc.Set(r.Key(),
			Field{"Airport", r.Airport},
			Field{"Identifier", r.Runway1},
			Field{"Heading", r.Heading1},
			Field{"Latitude", formatDegrees(r.Start.Lat())},
			Field{"Longitude", formatDegrees(r.Start.Lon())},
			Field{"OppositeIdentifier", r.Runway2},
			Field{"OppositeHeading", r.Heading2},
			Field{"OppositeLatitude", formatDegrees(r.End.Lat())},
			Field{"OppositeLongitude", formatDegrees(r.End.Lon())},
			Field{"Length", defaultRunwayLength},
			Field{"Width", defaultRunwayWidth},
		)
	}
	return doc
}

// NavaidsDocument renders navaids.ini: VORs first, then NDBs. An NDB
// sharing an identifier with a VOR replaces it.
func NavaidsDocument(vors, ndbs []ResolvedNavaid) *Document {
	doc := NewDocument()
	for _, group := range [][]ResolvedNavaid{vors, ndbs} {
		for _, n := range group {
			kind := n.Kind.String()
			doc.Set(n.Ident,
				Field{"Type", kind},
				Field{"Name", kind + " " + n.Ident},
				Field{"Frequency", n.Frequency},
				Field{"Latitude", formatDegrees(n.Position.Lat())},
				Field{"Longitude", formatDegrees(n.Position.Lon())},
				Field{"Elevation", defaultElevation},
			)
		}
	}
	return doc
}

// FixesDocument renders fixes.ini.
func FixesDocument(fixes []ResolvedFix) *Document {
	doc := NewDocument()
	for _, f := range fixes {
		doc.Set(f.Ident,
			Field{"Name", "Fix " + f.Ident},
			Field{"Latitude", formatDegrees(f.Position.Lat())},
			Field{"Longitude", formatDegrees(f.Position.Lon())},
			Field{"Type", fixTypeWaypoint},
		)
	}
	return doc
}
