package adaptation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vatsimnerd/util/set"

	"github.com/jamiedatty/London-Control-Sim-Parser/coords"
	"github.com/jamiedatty/London-Control-Sim-Parser/navdata"
)

const (
	AirwayUpper = "UPPER"
	AirwayLower = "LOWER"

	defaultLevels  = "ALL"
	minAirwayFixes = 2
)

type Airway struct {
	Name   string
	Fixes  []string
	Levels string
	Type   string
}

func (a Airway) Description() string {
	return fmt.Sprintf("%s Airway %s", a.Type, a.Name)
}

// airwayType classifies upper (U*, N*) and lower airways by name.
func airwayType(name string) string {
	if strings.HasPrefix(name, "U") || strings.HasPrefix(name, "N") {
		return AirwayUpper
	}
	return AirwayLower
}

// AssembleAirways keeps the routes with at least two fixes present in
// fixes. The fixes of each airway are put in west-to-east order by
// longitude; ties keep route order. This is not the real sequence along
// the airway.
func AssembleAirways(routes []Route, fixes []navdata.Fix) []Airway {
	present := set.New[string]()
	longitude := make(map[string]float64, len(fixes))
	for _, f := range fixes {
		present.Add(f.Ident)
		longitude[f.Ident] = coords.DecimalOrZero(f.Longitude)
	}

	var airways []Airway
	for _, r := range routes {
		l := log.WithField("airway", r.Name)

		seen := set.New[string]()
		var existing []string
		for _, ident := range r.Fixes {
			if present.Has(ident) && !seen.Has(ident) {
				seen.Add(ident)
				existing = append(existing, ident)
			}
		}
		if len(existing) < minAirwayFixes {
			l.WithField("fixes", len(existing)).Debug("not enough fixes, skipping airway")
			continue
		}

		sort.SliceStable(existing, func(i, j int) bool {
			return longitude[existing[i]] < longitude[existing[j]]
		})

		aw := Airway{
			Name:   r.Name,
			Fixes:  existing,
			Levels: r.Levels,
			Type:   r.Type,
		}
		if aw.Levels == "" {
			aw.Levels = defaultLevels
		}
		if aw.Type == "" {
			aw.Type = airwayType(r.Name)
		}
		l.Infof("created airway with %d fixes: %s", len(aw.Fixes), strings.Join(aw.Fixes, ", "))
		airways = append(airways, aw)
	}

	log.Infof("total airways created: %d", len(airways))
	return airways
}

// AirwaysDocument renders airways.ini.
func AirwaysDocument(airways []Airway) *Document {
	doc := NewDocument()
	for _, aw := range airways {
		doc.Set(aw.Name,
			Field{"Fixes", strings.Join(aw.Fixes, ",")},
			Field{"Levels", aw.Levels},
			Field{"Type", aw.Type},
			Field{"Description", aw.Description()},
		)
	}
	return doc
}
