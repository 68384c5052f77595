package adaptation

import (
	"github.com/paulmach/orb"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
	"github.com/jamiedatty/London-Control-Sim-Parser/coords"
	"github.com/jamiedatty/London-Control-Sim-Parser/navdata"
)

type (
	ResolvedAirport struct {
		navdata.Airport
		Position orb.Point
	}

	ResolvedRunway struct {
		navdata.Runway
		Start orb.Point
		End   orb.Point
	}

	ResolvedNavaid struct {
		navdata.Navaid
		Position orb.Point
	}

	ResolvedFix struct {
		navdata.Fix
		Position orb.Point
	}

	// Resolved holds the records with their coordinates decoded. A
	// coordinate that cannot be decoded becomes 0 on that axis.
	Resolved struct {
		Airports []ResolvedAirport
		Runways  []ResolvedRunway
		VORs     []ResolvedNavaid
		NDBs     []ResolvedNavaid
		Fixes    []ResolvedFix
	}
)

// Resolve decodes every coordinate once, recording each failure in
// diags against the table row the record came from. Fixes whose latitude has no N/S hemisphere are left out.
func Resolve(data *navdata.Data, diags *londonctrl.Diagnostics) *Resolved {
	res := &Resolved{
		Airports: make([]ResolvedAirport, 0, len(data.Airports)),
		Runways:  make([]ResolvedRunway, 0, len(data.Runways)),
		VORs:     make([]ResolvedNavaid, 0, len(data.VORs)),
		NDBs:     make([]ResolvedNavaid, 0, len(data.NDBs)),
		Fixes:    make([]ResolvedFix, 0, len(data.Fixes)),
	}

	for _, a := range data.Airports {
		res.Airports = append(res.Airports, ResolvedAirport{
			Airport:  a,
			Position: decode(navdata.AirportsFile, a.Line, a.ICAO, a.Latitude, a.Longitude, diags),
		})
	}
	for _, r := range data.Runways {
		res.Runways = append(res.Runways, ResolvedRunway{
			Runway: r,
			Start:  decode(navdata.RunwaysFile, r.Line, r.Key(), r.Lat1, r.Lon1, diags),
			End:    decode(navdata.RunwaysFile, r.Line, r.Key(), r.Lat2, r.Lon2, diags),
		})
	}
	for _, n := range data.VORs {
		res.VORs = append(res.VORs, ResolvedNavaid{
			Navaid:   n,
			Position: decode(navdata.VORsFile, n.Line, n.Ident, n.Latitude, n.Longitude, diags),
		})
	}
	for _, n := range data.NDBs {
		res.NDBs = append(res.NDBs, ResolvedNavaid{
			Navaid:   n,
			Position: decode(navdata.NDBsFile, n.Line, n.Ident, n.Latitude, n.Longitude, diags),
		})
	}
	for _, f := range data.Fixes {
		if !coords.HasLatitudePrefix(f.Latitude) {
			diags.Addf(navdata.FixesFile, f.Line, londonctrl.KindCoordinate, "fix %s: latitude '%s' has no N/S hemisphere", f.Ident, f.Latitude)
			continue
		}
		res.Fixes = append(res.Fixes, ResolvedFix{
			Fix:      f,
			Position: decode(navdata.FixesFile, f.Line, f.Ident, f.Latitude, f.Longitude, diags),
		})
	}

	return res
}

func decode(file string, line int, ident, lat, lon string, diags *londonctrl.Diagnostics) orb.Point {
	y, err := coords.Decimal(lat)
	if err != nil {
		diags.Addf(file, line, londonctrl.KindCoordinate, "%s: %v", ident, err)
	}
	x, err := coords.Decimal(lon)
	if err != nil {
		diags.Addf(file, line, londonctrl.KindCoordinate, "%s: %v", ident, err)
	}
	return orb.Point{x, y}
}

// Stations returns the map candidates: airports, fixes and VORs.
func (r *Resolved) Stations() Stations {
	var s Stations
	for _, a := range r.Airports {
		s.Airports = append(s.Airports, Station{Ident: a.ICAO, Position: a.Position})
	}
	for _, f := range r.Fixes {
		s.Fixes = append(s.Fixes, Station{Ident: f.Ident, Position: f.Position})
	}
	for _, v := range r.VORs {
		s.VORs = append(s.VORs, Station{Ident: v.Ident, Position: v.Position})
	}
	return s
}
