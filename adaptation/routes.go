package adaptation

import (
	_ "embed"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/paulmach/orb"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
)

//go:embed data/routes.toml
var defaultRoutes string

type (
	// Route is an airway as listed in the route table: the fixes it is
	// expected to pass through, in no particular order.
	Route struct {
		Name   string   `toml:"name"`
		Fixes  []string `toml:"fixes"`
		Levels string   `toml:"levels,omitempty"`
		Type   string   `toml:"type,omitempty"`
	}

	// MapRegion is a predefined sector map. Range is in kilometres.
	MapRegion struct {
		Name        string  `toml:"name"`
		Description string  `toml:"description"`
		CenterLat   float64 `toml:"center_lat"`
		CenterLon   float64 `toml:"center_lon"`
		Range       float64 `toml:"range"`
	}

	// Table is the static domain data the adaptation is built from.
	Table struct {
		SectorFile string      `toml:"sector_file"`
		DefaultMap string      `toml:"default_map"`
		Airways    []Route     `toml:"airway"`
		Maps       []MapRegion `toml:"map"`
	}
)

func (m MapRegion) Center() orb.Point {
	return orb.Point{m.CenterLon, m.CenterLat}
}

// RangeString formats the range without a trailing ".0".
func (m MapRegion) RangeString() string {
	return strconv.FormatFloat(m.Range, 'f', -1, 64)
}

// DefaultTable returns the route table compiled into the binary.
func DefaultTable() (*Table, error) {
	return ParseTable(defaultRoutes, "routes.toml", nil)
}

// LoadTable reads a route table from a TOML file.
func LoadTable(path string, diags *londonctrl.Diagnostics) (*Table, error) {
	var t Table
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return nil, fmt.Errorf("error loading route table '%s': %w", path, err)
	}
	return &t, t.check(md, path, diags)
}

// ParseTable decodes a route table from TOML text; name labels errors.
func ParseTable(raw, name string, diags *londonctrl.Diagnostics) (*Table, error) {
	var t Table
	md, err := toml.Decode(raw, &t)
	if err != nil {
		return nil, fmt.Errorf("error parsing route table '%s': %w", name, err)
	}
	return &t, t.check(md, name, diags)
}

func (t *Table) check(md toml.MetaData, name string, diags *londonctrl.Diagnostics) error {
	for _, key := range md.Undecoded() {
		log.WithField("key", key.String()).Warn("unknown key in route table")
		diags.Addf(name, 0, londonctrl.KindUnknownKey, "'%s'", key.String())
	}

	seen := make(map[string]bool)
	for i, r := range t.Airways {
		if r.Name == "" {
			return fmt.Errorf("%s: airway #%d has no name", name, i+1)
		}
		if seen[r.Name] {
			return fmt.Errorf("%s: airway '%s' listed twice", name, r.Name)
		}
		seen[r.Name] = true
	}

	seen = make(map[string]bool)
	for i, m := range t.Maps {
		if m.Name == "" {
			return fmt.Errorf("%s: map #%d has no name", name, i+1)
		}
		if seen[m.Name] {
			return fmt.Errorf("%s: map '%s' listed twice", name, m.Name)
		}
		if m.Range <= 0 {
			return fmt.Errorf("%s: map '%s' has invalid range %v", name, m.Name, m.Range)
		}
		seen[m.Name] = true
	}

	if t.DefaultMap != "" && len(t.Maps) > 0 && !seen[t.DefaultMap] {
		return fmt.Errorf("%s: default map '%s' is not defined", name, t.DefaultMap)
	}
	return nil
}
