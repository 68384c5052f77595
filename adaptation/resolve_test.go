package adaptation

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
	"github.com/jamiedatty/London-Control-Sim-Parser/navdata"
)

func TestResolve(t *testing.T) {
	data := &navdata.Data{
		Airports: []navdata.Airport{
			{ICAO: "EGLL", Frequency: "118.500", Latitude: "N051.28.39.000", Longitude: "W000.27.41.000"},
			{ICAO: "EGXX", Latitude: "bogus", Longitude: "E001.00.00.000"},
		},
		VORs: []navdata.Navaid{{Kind: navdata.KindVOR, Ident: "LON", Latitude: "N051.29.12.000", Longitude: "W000.28.00.000"}},
		Fixes: []navdata.Fix{
			{Ident: "BARTN", Latitude: "N053.18.00.000", Longitude: "W002.40.00.000"},
			{Ident: "ODD", Latitude: "053.18.00.000", Longitude: "W002.40.00.000"},
		},
	}
	diags := &londonctrl.Diagnostics{}

	res := Resolve(data, diags)

	if len(res.Airports) != 2 {
		t.Fatalf("expected 2 airports, got %d", len(res.Airports))
	}
	egll := res.Airports[0].Position
	if math.Abs(egll.Lat()-51.4775) > 1e-9 || math.Abs(egll.Lon()+0.461389) > 1e-6 {
		t.Errorf("unexpected EGLL position %v", egll)
	}

	// only the broken axis is zeroed
	egxx := res.Airports[1].Position
	if egxx.Lat() != 0 || egxx.Lon() != 1 {
		t.Errorf("expected (0, 1), got %v", egxx)
	}

	if len(res.Fixes) != 1 || res.Fixes[0].Ident != "BARTN" {
		t.Errorf("fix without hemisphere must be dropped, got %+v", res.Fixes)
	}
	if n := diags.Count(londonctrl.KindCoordinate); n != 2 {
		t.Errorf("expected 2 coordinate diagnostics, got %d: %s", n, diags)
	}

	s := res.Stations()
	if len(s.Airports) != 2 || len(s.Fixes) != 1 || len(s.VORs) != 1 {
		t.Errorf("unexpected stations %+v", s)
	}
}

func TestResolveReportsTableRow(t *testing.T) {
	dir := t.TempDir()
	fixes := strings.Join([]string{
		navdata.FixesHeader,
		"BARTN,N053.18.00.000,W002.40.00.000",
		"OCK,N051.18.18.000,W000.26.50.000",
		"",
		"BADLON,N051.00.00.000,W000.26",
		"ODD,053.18.00.000,W002.40.00.000",
	}, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, navdata.FixesFile), []byte(fixes), 0o644); err != nil {
		t.Fatal(err)
	}
	airports := navdata.AirportsHeader + "\nEGXX,000.000,N51.28,W000.27.41.000,D\n"
	if err := os.WriteFile(filepath.Join(dir, navdata.AirportsFile), []byte(airports), 0o644); err != nil {
		t.Fatal(err)
	}

	data := navdata.ReadDir(dir, nil)
	diags := &londonctrl.Diagnostics{}
	Resolve(data, diags)

	type testcase struct {
		file string
		line int
	}

	exp := []testcase{
		{navdata.AirportsFile, 2},
		{navdata.FixesFile, 5},
		{navdata.FixesFile, 6},
	}
	entries := diags.Entries()
	if len(entries) != len(exp) {
		t.Fatalf("expected %d diagnostics, got %d:\n%s", len(exp), len(entries), diags)
	}
	for i, tc := range exp {
		d := entries[i]
		if d.Kind != londonctrl.KindCoordinate || d.File != tc.file || d.Line != tc.line {
			t.Errorf("expected bad coordinate at %s:%d, got %s", tc.file, tc.line, d)
		}
	}
}

func TestDocuments(t *testing.T) {
	data := &navdata.Data{
		Airports: []navdata.Airport{{ICAO: "EGLL", Frequency: "118.500", Latitude: "N051.28.39.000", Longitude: "W000.27.41.000"}},
		Runways: []navdata.Runway{{
			Runway1: "09L", Runway2: "27R", Heading1: "089", Heading2: "269",
			Lat1: "N051.28.39.000", Lon1: "W000.29.02.000", Lat2: "N051.28.40.000", Lon2: "W000.26.00.000",
			Airport: "EGLL",
		}},
		VORs:  []navdata.Navaid{{Kind: navdata.KindVOR, Ident: "BIG", Frequency: "115.100", Latitude: "N051.19.51.000", Longitude: "E000.02.05.000"}},
		NDBs:  []navdata.Navaid{{Kind: navdata.KindNDB, Ident: "BIG", Frequency: "414.000", Latitude: "N051.19.54.000", Longitude: "E000.02.07.000"}},
		Fixes: []navdata.Fix{{Ident: "BARTN", Latitude: "N053.18.00.000", Longitude: "W002.40.00.000"}},
	}
	res := Resolve(data, nil)

	type testcase struct {
		doc     *Document
		section string
		key     string
		exp     string
	}

	airports := AirportsDocument(res.Airports)
	runways := RunwaysDocument(res.Runways)
	navaids := NavaidsDocument(res.VORs, res.NDBs)
	fixes := FixesDocument(res.Fixes)

	var testcases = []testcase{
		{airports, "EGLL", "Name", "Airport EGLL"},
		{airports, "EGLL", "Frequency", "118.500"},
		{airports, "EGLL", "Latitude", "51.477500"},
		{airports, "EGLL", "TransitionAltitude", "6000"},
		{airports, "EGLL", "Country", "GB"},
		{runways, "EGLL_09L", "Identifier", "09L"},
		{runways, "EGLL_09L", "OppositeIdentifier", "27R"},
		{runways, "EGLL_09L", "OppositeHeading", "269"},
		{runways, "EGLL_09L", "Width", "45"},
		{navaids, "BIG", "Type", "NDB"},
		{navaids, "BIG", "Name", "NDB BIG"},
		{navaids, "BIG", "Frequency", "414.000"},
		{fixes, "BARTN", "Name", "Fix BARTN"},
		{fixes, "BARTN", "Latitude", "53.300000"},
		{fixes, "BARTN", "Longitude", "-2.666667"},
		{fixes, "BARTN", "Type", "WAYPOINT"},
	}

	for _, tc := range testcases {
		v, found := tc.doc.Get(tc.section, tc.key)
		if !found {
			t.Errorf("[%s] %s not found", tc.section, tc.key)
			continue
		}
		if v != tc.exp {
			t.Errorf("[%s] %s: expected %s, got %s", tc.section, tc.key, tc.exp, v)
		}
	}

	if navaids.Len() != 1 {
		t.Errorf("NDB must replace the VOR with the same ident, got %d sections", navaids.Len())
	}
}
