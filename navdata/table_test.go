package navdata

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
)

var testData = &Data{
	Airports: []Airport{{ICAO: "EGLL", Frequency: "118.500", Latitude: "N051.28.39.000", Longitude: "W000.27.41.000", Type: "D"}},
	Runways: []Runway{{
		Runway1: "09L", Runway2: "27R", Heading1: "089", Heading2: "269",
		Lat1: "N051.28.39.000", Lon1: "W000.29.02.000", Lat2: "N051.28.40.000", Lon2: "W000.26.00.000",
		Airport: "EGLL",
	}},
	VORs:  []Navaid{{Kind: KindVOR, Ident: "LON", Frequency: "113.600", Latitude: "N051.29.12.000", Longitude: "W000.28.00.000"}},
	NDBs:  []Navaid{{Kind: KindNDB, Ident: "BIG", Frequency: "414.000", Latitude: "N051.19.54.000", Longitude: "E000.02.07.000"}},
	Fixes: []Fix{{Ident: "BARTN", Latitude: "N053.18.00.000", Longitude: "W002.40.00.000"}},
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, AirportsHeader, testData.Airports); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exp := "ICAO,Frequency,Latitude,Longitude,Type\nEGLL,118.500,N051.28.39.000,W000.27.41.000,D\n"
	if buf.String() != exp {
		t.Errorf("expected %q, got %q", exp, buf.String())
	}
}

func TestWriteDirLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nav_data")
	if err := WriteDir(dir, testData); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type testcase struct {
		file  string
		lines []string
	}

	var testcases = []testcase{
		{AirportsFile, []string{AirportsHeader, "EGLL,118.500,N051.28.39.000,W000.27.41.000,D"}},
		{RunwaysFile, []string{RunwaysHeader, "09L,27R,089,269,N051.28.39.000,W000.29.02.000,N051.28.40.000,W000.26.00.000,EGLL"}},
		{VORsFile, []string{NavaidsHeader, "LON,113.600,N051.29.12.000,W000.28.00.000"}},
		{NDBsFile, []string{NavaidsHeader, "BIG,414.000,N051.19.54.000,E000.02.07.000"}},
		{FixesFile, []string{FixesHeader, "BARTN,N053.18.00.000,W002.40.00.000"}},
	}

	for _, tc := range testcases {
		raw, err := os.ReadFile(filepath.Join(dir, tc.file))
		if err != nil {
			t.Errorf("[%s] %v", tc.file, err)
			continue
		}
		exp := strings.Join(tc.lines, "\n") + "\n"
		if string(raw) != exp {
			t.Errorf("[%s] expected %q, got %q", tc.file, exp, string(raw))
		}
	}
}

func TestReadDirRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDir(dir, testData); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var diags londonctrl.Diagnostics
	data := ReadDir(dir, &diags)
	if diags.Len() != 0 {
		t.Errorf("expected no diagnostics, got:\n%s", diags.String())
	}

	// every table holds a single row right below its header
	expAirport := testData.Airports[0]
	expAirport.Line = 2
	expRunway := testData.Runways[0]
	expRunway.Line = 2
	expVOR := testData.VORs[0]
	expVOR.Line = 2
	expNDB := testData.NDBs[0]
	expNDB.Line = 2
	expFix := testData.Fixes[0]
	expFix.Line = 2

	if len(data.Airports) != 1 || data.Airports[0] != expAirport {
		t.Errorf("airports don't match: %+v", data.Airports)
	}
	if len(data.Runways) != 1 || data.Runways[0] != expRunway {
		t.Errorf("runways don't match: %+v", data.Runways)
	}
	if len(data.VORs) != 1 || data.VORs[0] != expVOR {
		t.Errorf("vors don't match: %+v", data.VORs)
	}
	if len(data.NDBs) != 1 || data.NDBs[0] != expNDB {
		t.Errorf("ndbs don't match: %+v", data.NDBs)
	}
	if len(data.Fixes) != 1 || data.Fixes[0] != expFix {
		t.Errorf("fixes don't match: %+v", data.Fixes)
	}
}

func TestReadDirMissingTables(t *testing.T) {
	var diags londonctrl.Diagnostics
	data := ReadDir(t.TempDir(), &diags)

	if len(data.Airports)+len(data.Runways)+len(data.VORs)+len(data.NDBs)+len(data.Fixes) != 0 {
		t.Errorf("expected no records from an empty directory")
	}
	if n := diags.Count(londonctrl.KindMissingFile); n != 5 {
		t.Errorf("expected 5 missing tables, got %d", n)
	}
}

func TestReadTableSkipsShortRows(t *testing.T) {
	src := strings.Join([]string{
		FixesHeader,
		"BARTN,N053.18.00.000,W002.40.00.000",
		"",
		"SHORT,N053.18.00.000",
		"  OCK,N051.18.18.000,W000.26.50.000  ",
		"TWOTK,N053.18.00.000W002.40.00.000,",
	}, "\n")

	var diags londonctrl.Diagnostics
	fixes, err := ReadTable(strings.NewReader(src), FixesFile, &diags, parseFixRow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exp := []Fix{
		{Ident: "BARTN", Latitude: "N053.18.00.000", Longitude: "W002.40.00.000", Line: 2},
		{Ident: "OCK", Latitude: "N051.18.18.000", Longitude: "W000.26.50.000", Line: 5},
		{Ident: "TWOTK", Latitude: "N053.18.00.000W002.40.00.000", Line: 6},
	}
	if len(fixes) != len(exp) {
		t.Fatalf("expected %d fixes, got %d: %+v", len(exp), len(fixes), fixes)
	}
	for i := range exp {
		if fixes[i] != exp[i] {
			t.Errorf("expected %+v, got %+v", exp[i], fixes[i])
		}
	}

	entries := diags.Entries()
	if len(entries) != 1 || entries[0].Line != 4 || entries[0].Kind != londonctrl.KindShortRecord {
		t.Errorf("expected one short record diagnostic on line 4, got %+v", entries)
	}
}
