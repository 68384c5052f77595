package navdata

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
	"github.com/jamiedatty/London-Control-Sim-Parser/coords"
)

const GeoJSONFile = "navdata.geojson"

// FeatureCollection renders the records as GeoJSON for visual inspection.
// Airports, navaids and fixes become points, runways become two-point
// lines. Records whose coordinates cannot be decoded are left out.
func FeatureCollection(data *Data, diags *londonctrl.Diagnostics) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	addPoint := func(kind, ident, lat, lon string, props geojson.Properties) {
		pt, err := coords.Point(lat, lon)
		if err != nil {
			diags.Addf(GeoJSONFile, 0, londonctrl.KindCoordinate, "%s %s: %v", kind, ident, err)
			return
		}
		feat := geojson.NewFeature(pt)
		feat.ID = ident
		feat.Properties["kind"] = kind
		feat.Properties["ident"] = ident
		for k, v := range props {
			feat.Properties[k] = v
		}
		fc.Append(feat)
	}

	for _, a := range data.Airports {
		addPoint("airport", a.ICAO, a.Latitude, a.Longitude, geojson.Properties{"frequency": a.Frequency, "type": a.Type})
	}
	for _, n := range data.VORs {
		addPoint("vor", n.Ident, n.Latitude, n.Longitude, geojson.Properties{"frequency": n.Frequency})
	}
	for _, n := range data.NDBs {
		addPoint("ndb", n.Ident, n.Latitude, n.Longitude, geojson.Properties{"frequency": n.Frequency})
	}
	for _, f := range data.Fixes {
		addPoint("fix", f.Ident, f.Latitude, f.Longitude, nil)
	}

	for _, r := range data.Runways {
		p1, err := coords.Point(r.Lat1, r.Lon1)
		if err != nil {
			diags.Addf(GeoJSONFile, 0, londonctrl.KindCoordinate, "runway %s: %v", r.Key(), err)
			continue
		}
		p2, err := coords.Point(r.Lat2, r.Lon2)
		if err != nil {
			diags.Addf(GeoJSONFile, 0, londonctrl.KindCoordinate, "runway %s: %v", r.Key(), err)
			continue
		}
		feat := geojson.NewFeature(orb.LineString{p1, p2})
		feat.ID = r.Key()
		feat.Properties["kind"] = "runway"
		feat.Properties["airport"] = r.Airport
		feat.Properties["ident"] = r.Runway1 + "/" + r.Runway2
		fc.Append(feat)
	}

	return fc
}

// WriteGeoJSON writes FeatureCollection(data) to path.
func WriteGeoJSON(path string, data *Data, diags *londonctrl.Diagnostics) error {
	raw, err := FeatureCollection(data, diags).MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding geojson: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("error writing '%s': %w", path, err)
	}
	log.WithField("filename", path).Info("geojson written")
	return nil
}
