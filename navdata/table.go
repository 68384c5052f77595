package navdata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
)

var (
	log = logrus.WithField("module", "navdata")
)

// Table file names and their header rows. Consumers match the headers
// literally so neither names nor column order may change.
const (
	AirportsFile = "airports.txt"
	RunwaysFile  = "runways.txt"
	VORsFile     = "vors.txt"
	NDBsFile     = "ndbs.txt"
	FixesFile    = "fixes.txt"

	AirportsHeader = "ICAO,Frequency,Latitude,Longitude,Type"
	RunwaysHeader  = "Runway1,Runway2,Heading1,Heading2,Lat1,Lon1,Lat2,Lon2,Airport"
	NavaidsHeader  = "Identifier,Frequency,Latitude,Longitude"
	FixesHeader    = "Identifier,Latitude,Longitude"

	DefaultDir = "nav_data"
)

type rower interface {
	row() []string
}

// WriteDir writes one table per entity kind into dir, creating it if
// needed. A failure on one table does not stop the others; all failures
// are returned together.
func WriteDir(dir string, data *Data) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating '%s': %w", dir, err)
	}

	return errors.Join(
		writeTable(filepath.Join(dir, AirportsFile), AirportsHeader, data.Airports),
		writeTable(filepath.Join(dir, RunwaysFile), RunwaysHeader, data.Runways),
		writeTable(filepath.Join(dir, VORsFile), NavaidsHeader, data.VORs),
		writeTable(filepath.Join(dir, NDBsFile), NavaidsHeader, data.NDBs),
		writeTable(filepath.Join(dir, FixesFile), FixesHeader, data.Fixes),
	)
}

func writeTable[T rower](path, header string, records []T) error {
	l := log.WithField("filename", path)

	f, err := os.Create(path)
	if err != nil {
		l.WithError(err).Error("error creating table")
		return err
	}
	if err := WriteTable(f, header, records); err != nil {
		f.Close()
		l.WithError(err).Error("error writing table")
		return fmt.Errorf("error writing '%s': %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	l.WithField("rows", len(records)).Debug("table written")
	return nil
}

// WriteTable writes the header row followed by one comma-joined row per
// record. Fields are written as-is, without quoting.
func WriteTable[T rower](w io.Writer, header string, records []T) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, header); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := fmt.Fprintln(bw, strings.Join(r.row(), ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadDir loads the tables written by WriteDir. Missing or unreadable
// tables are logged, recorded in diags and yield no records; rows with too
// few fields are skipped the same way.
func ReadDir(dir string, diags *londonctrl.Diagnostics) *Data {
	data := &Data{}

	data.Airports = readTable(filepath.Join(dir, AirportsFile), diags, parseAirportRow)
	data.Runways = readTable(filepath.Join(dir, RunwaysFile), diags, parseRunwayRow)
	data.VORs = readTable(filepath.Join(dir, VORsFile), diags, func(line string, num int) (Navaid, error) {
		return parseNavaidRow(line, num, KindVOR)
	})
	data.NDBs = readTable(filepath.Join(dir, NDBsFile), diags, func(line string, num int) (Navaid, error) {
		return parseNavaidRow(line, num, KindNDB)
	})
	data.Fixes = readTable(filepath.Join(dir, FixesFile), diags, parseFixRow)

	return data
}

func readTable[T any](path string, diags *londonctrl.Diagnostics, parse func(string, int) (T, error)) []T {
	l := log.WithField("filename", path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Info("table not found, skipping")
			diags.Addf(path, 0, londonctrl.KindMissingFile, "table not found")
		} else {
			l.WithError(err).Error("error opening table")
			diags.Addf(path, 0, londonctrl.KindMissingFile, "%v", err)
		}
		return nil
	}
	defer f.Close()

	records, err := ReadTable(f, path, diags, parse)
	if err != nil {
		l.WithError(err).Error("error reading table")
		diags.Addf(path, 0, londonctrl.KindMissingFile, "%v", err)
	}
	l.WithField("rows", len(records)).Info("table parsed")
	return records
}

// ReadTable parses rows from r, skipping the header row and blank lines.
// parse gets each row with its 1-based line number. name is only used to
// label diagnostics.
func ReadTable[T any](r io.Reader, name string, diags *londonctrl.Diagnostics, parse func(string, int) (T, error)) ([]T, error) {
	var records []T

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		if lineNum == 1 {
			continue
		}

		line := strings.TrimSpace(sc.Text())
		if len(line) == 0 {
			continue
		}

		rec, err := parse(line, lineNum)
		if err != nil {
			log.WithError(err).WithField("line", lineNum).Debug("skipping table row")
			diags.Addf(name, lineNum, londonctrl.KindShortRecord, "%v", err)
			continue
		}
		records = append(records, rec)
	}
	return records, sc.Err()
}
