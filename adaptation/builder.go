// Package adaptation turns navigation tables into the INI files of the
// London Control adaptation: airports, runways, navaids, fixes, airways,
// one map per sector and a set of static configuration files.
package adaptation

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
	"github.com/jamiedatty/London-Control-Sim-Parser/navdata"
)

var (
	log = logrus.WithField("module", "adaptation")
)

const (
	DefaultDir = "adaptation_files"

	AirwaysFile  = "airways.ini"
	MapsFile     = "maps.ini"
	AirportsFile = "airports.ini"
	RunwaysFile  = "runways.ini"
	NavaidsFile  = "navaids.ini"
	FixesFile    = "fixes.ini"
)

type Config struct {
	OutputDir string
	// GeoJSON additionally writes the decoded records as navdata.geojson.
	GeoJSON bool
	// Now stamps the generated map files; time.Now when nil.
	Now func() time.Time
}

// Summary counts what a build wrote. Files are relative to the output
// directory, in the order they were written.
type Summary struct {
	Airports int
	Runways  int
	Navaids  int
	Fixes    int
	Airways  int
	Maps     int
	Files    []string
}

type builder struct {
	cfg     Config
	table   *Table
	diags   *londonctrl.Diagnostics
	summary Summary
	errs    []error
}

// Build writes the whole adaptation for data into cfg.OutputDir. A file
// that cannot be written is logged and reported in the returned error,
// but the remaining files are still written; nothing is rolled back.
func Build(data *navdata.Data, table *Table, cfg Config, diags *londonctrl.Diagnostics) (*Summary, error) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultDir
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	if err := os.MkdirAll(filepath.Join(cfg.OutputDir, mapsDirName), 0o755); err != nil {
		return nil, fmt.Errorf("error creating '%s': %w", cfg.OutputDir, err)
	}

	b := &builder{cfg: cfg, table: table, diags: diags}
	res := Resolve(data, diags)

	airways := AssembleAirways(table.Airways, data.Fixes)
	b.summary.Airways = len(airways)
	b.writeDocument(AirwaysFile, AirwaysDocument(airways))

	b.writeMaps(res.Stations())

	airports := AirportsDocument(res.Airports)
	b.summary.Airports = airports.Len()
	b.writeDocument(AirportsFile, airports)

	runways := RunwaysDocument(res.Runways)
	b.summary.Runways = runways.Len()
	b.writeDocument(RunwaysFile, runways)

	navaids := NavaidsDocument(res.VORs, res.NDBs)
	b.summary.Navaids = navaids.Len()
	b.writeDocument(NavaidsFile, navaids)

	fixes := FixesDocument(res.Fixes)
	b.summary.Fixes = fixes.Len()
	b.writeDocument(FixesFile, fixes)

	written, err := WriteStatic(cfg.OutputDir)
	b.summary.Files = append(b.summary.Files, written...)
	b.fail(err)

	if cfg.GeoJSON {
		path := filepath.Join(cfg.OutputDir, navdata.GeoJSONFile)
		if err := navdata.WriteGeoJSON(path, data, diags); err != nil {
			b.fail(err)
		} else {
			b.summary.Files = append(b.summary.Files, navdata.GeoJSONFile)
		}
	}

	return &b.summary, errors.Join(b.errs...)
}

func (b *builder) fail(err error) {
	if err == nil {
		return
	}
	log.WithError(err).Error("error writing adaptation file")
	b.errs = append(b.errs, err)
}

func (b *builder) writeDocument(name string, doc *Document) {
	if err := doc.WriteFile(filepath.Join(b.cfg.OutputDir, name)); err != nil {
		b.fail(err)
		return
	}
	log.WithFields(logrus.Fields{"filename": name, "sections": doc.Len()}).Info("file written")
	b.summary.Files = append(b.summary.Files, name)
}

func (b *builder) writeFile(name string, render func(io.Writer) error) {
	path := filepath.Join(b.cfg.OutputDir, name)
	f, err := os.Create(path)
	if err != nil {
		b.fail(fmt.Errorf("error creating '%s': %w", path, err))
		return
	}
	if err := render(f); err != nil {
		f.Close()
		b.fail(fmt.Errorf("error writing '%s': %w", path, err))
		return
	}
	if err := f.Close(); err != nil {
		b.fail(err)
		return
	}
	b.summary.Files = append(b.summary.Files, name)
}

func (b *builder) writeMaps(stations Stations) {
	bound, ok := stations.Coverage()
	if ok {
		log.WithFields(logrus.Fields{
			"min_lat": fmt.Sprintf("%.2f", bound.Min.Lat()),
			"max_lat": fmt.Sprintf("%.2f", bound.Max.Lat()),
			"min_lon": fmt.Sprintf("%.2f", bound.Min.Lon()),
			"max_lon": fmt.Sprintf("%.2f", bound.Max.Lon()),
		}).Info("data coverage")
	} else {
		log.Warn("no valid coordinates found, using UK default bounds")
	}

	created := b.cfg.Now().Format(createdLayout)
	for _, region := range b.table.Maps {
		mc := region.Filter(stations)
		b.writeFile(MapFileName(region.Name), func(w io.Writer) error {
			return WriteMap(w, mc, b.table.SectorFile, created)
		})
		log.WithFields(logrus.Fields{
			"map":      region.Name,
			"airports": len(mc.Airports),
			"fixes":    len(mc.Fixes),
			"vors":     len(mc.VORs),
		}).Info("map created")
	}
	b.summary.Maps = len(b.table.Maps)

	b.writeFile(MapsFile, func(w io.Writer) error {
		return WriteMapsIndex(w, b.table)
	})
}
