package adaptation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
)

func TestDefaultTable(t *testing.T) {
	table, err := DefaultTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Airways) != 23 {
		t.Errorf("expected 23 airways, got %d", len(table.Airways))
	}
	if len(table.Maps) != 7 {
		t.Errorf("expected 7 maps, got %d", len(table.Maps))
	}
	if table.DefaultMap != "LON_C_CTR" {
		t.Errorf("unexpected default map %s", table.DefaultMap)
	}
	if table.SectorFile == "" {
		t.Errorf("sector file name must be set")
	}
	for _, m := range table.Maps {
		if m.Range <= 0 {
			t.Errorf("map %s has range %v", m.Name, m.Range)
		}
	}
}

func TestParseTableErrors(t *testing.T) {
	type testcase struct {
		name string
		raw  string
		err  string
	}

	var testcases = []testcase{
		{"syntax", "[[airway]\n", "error parsing"},
		{"unnamed airway", "[[airway]]\nfixes = [\"A\"]\n", "has no name"},
		{"duplicate airway", "[[airway]]\nname = \"L9\"\n[[airway]]\nname = \"L9\"\n", "listed twice"},
		{"zero range", "[[map]]\nname = \"M\"\nrange = 0\n", "invalid range"},
		{"duplicate map", "[[map]]\nname = \"M\"\nrange = 1\n[[map]]\nname = \"M\"\nrange = 2\n", "listed twice"},
		{"unknown default", "default_map = \"X\"\n[[map]]\nname = \"M\"\nrange = 1\n", "not defined"},
	}

	for _, tc := range testcases {
		_, err := ParseTable(tc.raw, "test.toml", nil)
		if err == nil {
			t.Errorf("[%s] expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.err) {
			t.Errorf("[%s] expected error containing '%s', got %v", tc.name, tc.err, err)
		}
	}
}

func TestParseTableUnknownKeys(t *testing.T) {
	raw := "sector_file = \"X.sct\"\ncolour = \"red\"\n[[map]]\nname = \"M\"\nrange = 10\nzoom = 2\n"
	diags := &londonctrl.Diagnostics{}

	table, err := ParseTable(raw, "test.toml", diags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.SectorFile != "X.sct" || len(table.Maps) != 1 {
		t.Errorf("unexpected table %+v", table)
	}
	if diags.Count(londonctrl.KindUnknownKey) != 2 {
		t.Errorf("expected 2 unknown keys, got %s", diags)
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.toml")
	raw := "default_map = \"M\"\n[[airway]]\nname = \"UL9\"\nfixes = [\"A\", \"B\"]\nlevels = \"FL250+\"\n[[map]]\nname = \"M\"\nrange = 12.5\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Airways) != 1 || table.Airways[0].Levels != "FL250+" {
		t.Errorf("unexpected airways %+v", table.Airways)
	}
	if table.Maps[0].RangeString() != "12.5" {
		t.Errorf("expected range 12.5, got %s", table.Maps[0].RangeString())
	}

	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.toml"), nil); err == nil {
		t.Errorf("expected error for missing file")
	}
}
