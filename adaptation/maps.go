package adaptation

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"path"

	"github.com/paulmach/orb"
)

const (
	// kmPerDegree is the length of one degree of latitude, rounded.
	kmPerDegree = 111.
	// rangeFactor widens each map so stations just outside the nominal
	// range still show.
	rangeFactor = 1.5

	mapsDirName       = "maps"
	rangeRingDistance = 20
	createdLayout     = "2006-01-02 15:04:05"
)

// DefaultCoverage is used when no station position could be decoded.
var DefaultCoverage = orb.Bound{Min: orb.Point{-11, 49}, Max: orb.Point{3, 61}}

type (
	// Station is a named position that may be drawn on a sector map.
	Station struct {
		Ident    string
		Position orb.Point
	}

	// Stations are the candidates for every map.
	Stations struct {
		Airports []Station
		Fixes    []Station
		VORs     []Station
	}

	// MapContents is what one sector map shows.
	MapContents struct {
		Region   MapRegion
		Airports []Station
		Fixes    []Station
		VORs     []Station
	}
)

// Distance approximates the distance in kilometres between two points on
// a flat projection scaled by the cosine of their mean latitude. It is
// only good enough to declutter maps.
func Distance(a, b orb.Point) float64 {
	dLat := math.Abs(a.Lat()-b.Lat()) * kmPerDegree
	meanLat := (a.Lat() + b.Lat()) / 2 * math.Pi / 180
	dLon := math.Abs(a.Lon()-b.Lon()) * kmPerDegree * math.Cos(meanLat)
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// Contains reports whether p lies within 1.5 times the map range of its
// centre, boundary included.
func (m MapRegion) Contains(p orb.Point) bool {
	return Distance(p, m.Center()) <= m.Range*rangeFactor
}

// Coverage returns the bounding box of all stations, or false when there
// are none.
func (s Stations) Coverage() (orb.Bound, bool) {
	var mp orb.MultiPoint
	for _, group := range [][]Station{s.Airports, s.Fixes, s.VORs} {
		for _, st := range group {
			mp = append(mp, st.Position)
		}
	}
	if len(mp) == 0 {
		return DefaultCoverage, false
	}
	return mp.Bound(), true
}

// Filter selects the stations shown on the map, keeping input order.
func (m MapRegion) Filter(s Stations) MapContents {
	within := func(stations []Station) []Station {
		var res []Station
		for _, st := range stations {
			if m.Contains(st.Position) {
				res = append(res, st)
			}
		}
		return res
	}
	return MapContents{
		Region:   m,
		Airports: within(s.Airports),
		Fixes:    within(s.Fixes),
		VORs:     within(s.VORs),
	}
}

// MapFileName is the path of a sector map relative to the output dir.
func MapFileName(name string) string {
	return path.Join(mapsDirName, name+".ini")
}

// WriteMap renders maps/<NAME>.ini.
func WriteMap(w io.Writer, mc MapContents, sectorFile, created string) error {
	bw := bufio.NewWriter(w)
	m := mc.Region

	fmt.Fprintf(bw, "; %s Position Map\n", m.Name)
	fmt.Fprintf(bw, "; %s\n", m.Description)
	fmt.Fprintf(bw, "; Auto-generated from UK navigation data\n")
	fmt.Fprintf(bw, "; Created: %s\n\n", created)

	fmt.Fprintf(bw, "[General]\nName=%s\nDescription=%s\nSectorFile=%s\n\n", m.Name, m.Description, sectorFile)

	fmt.Fprintf(bw, "[Display]\nCenterLatitude=%.6f\nCenterLongitude=%.6f\nDefaultRange=%s\n",
		m.CenterLat, m.CenterLon, m.RangeString())
	fmt.Fprintf(bw, "RangeRings=true\nRangeRingDistance=%d\n\n", rangeRingDistance)

	writeStations := func(stations []Station) {
		for _, st := range stations {
			fmt.Fprintf(bw, "%s=%.6f,%.6f\n", st.Ident, st.Position.Lat(), st.Position.Lon())
		}
	}

	fmt.Fprintf(bw, "[Airports]\n")
	writeStations(mc.Airports)
	fmt.Fprintf(bw, "\n[Fixes]\n")
	writeStations(mc.Fixes)
	fmt.Fprintf(bw, "\n[VORs]\n")
	writeStations(mc.VORs)

	return bw.Flush()
}

// WriteMapsIndex renders maps.ini, which points the client at every
// sector map.
func WriteMapsIndex(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "; Main Maps Configuration\n; Maps for UK Sectors\n\n")
	fmt.Fprintf(bw, "[General]\nDefaultMap=%s\nSectorFile=%s\n\n", t.DefaultMap, t.SectorFile)
	fmt.Fprintf(bw, "[Maps]\n")
	for _, m := range t.Maps {
		fmt.Fprintf(bw, "%s=%s\n", m.Name, MapFileName(m.Name))
	}

	return bw.Flush()
}
