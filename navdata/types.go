package navdata

// Reference (sector file lines these records come from):
// [AIRPORT] EGLL 118.500 N051.28.39.000 W000.27.41.000 D
// [RUNWAY]  09L 27R 089 269 N051.28.39.000 W000.29.02.000 N051.28.40.000 W000.26.00.000 EGLL
// [VOR]     LON 113.600 N051.29.12.000 W000.28.00.000
// [NDB]     BIG 414.000 N051.19.54.000 E000.02.07.000
// [FIXES]   BARTN N053.18.00.000 W002.40.00.000
//
// All fields are kept as the raw strings found in the sector file.
// Coordinates are decoded only when the adaptation files are built.
// Line is the table row a record was read from; it is zero for records
// taken straight from a sector file and is never written out.

type (
	Airport struct {
		ICAO      string `json:"icao"`
		Frequency string `json:"frequency"`
		Latitude  string `json:"lat"`
		Longitude string `json:"lng"`
		Type      string `json:"type"`
		Line      int    `json:"-"`
	}

	Runway struct {
		Runway1  string `json:"rwy1"`
		Runway2  string `json:"rwy2"`
		Heading1 string `json:"hdg1"`
		Heading2 string `json:"hdg2"`
		Lat1     string `json:"lat1"`
		Lon1     string `json:"lon1"`
		Lat2     string `json:"lat2"`
		Lon2     string `json:"lon2"`
		Airport  string `json:"airport"`
		Line     int    `json:"-"`
	}

	NavaidKind int

	// Navaid is a VOR or an NDB.
	Navaid struct {
		Kind      NavaidKind `json:"kind"`
		Ident     string     `json:"ident"`
		Frequency string     `json:"frequency"`
		Latitude  string     `json:"lat"`
		Longitude string     `json:"lng"`
		Line      int        `json:"-"`
	}

	Fix struct {
		Ident     string `json:"ident"`
		Latitude  string `json:"lat"`
		Longitude string `json:"lng"`
		Line      int    `json:"-"`
	}

	// Data is everything extracted from one sector file.
	Data struct {
		Airports []Airport
		Runways  []Runway
		VORs     []Navaid
		NDBs     []Navaid
		Fixes    []Fix
	}
)

const (
	KindVOR NavaidKind = iota
	KindNDB
)

func (k NavaidKind) String() string {
	if k == KindNDB {
		return "NDB"
	}
	return "VOR"
}

// Key returns the runways.ini section name, e.g. "EGLL_09L".
func (r Runway) Key() string {
	return r.Airport + "_" + r.Runway1
}

func (a Airport) row() []string {
	return []string{a.ICAO, a.Frequency, a.Latitude, a.Longitude, a.Type}
}

func (r Runway) row() []string {
	return []string{r.Runway1, r.Runway2, r.Heading1, r.Heading2, r.Lat1, r.Lon1, r.Lat2, r.Lon2, r.Airport}
}

func (n Navaid) row() []string {
	return []string{n.Ident, n.Frequency, n.Latitude, n.Longitude}
}

func (f Fix) row() []string {
	return []string{f.Ident, f.Latitude, f.Longitude}
}
