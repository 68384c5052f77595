// Package navlist writes the tagged navigation list: one line per VOR,
// NDB, fix and airport with its position in DDMMSSH form, e.g.
//
//	LON	512912N 002800W v -
package navlist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
	"github.com/jamiedatty/London-Control-Sim-Parser/coords"
	"github.com/jamiedatty/London-Control-Sim-Parser/sectorfile"
)

var (
	log = logrus.WithField("module", "navlist")
)

type Tag byte

const (
	TagVOR     Tag = 'v'
	TagNDB     Tag = 'n'
	TagFix     Tag = 'f'
	TagAirport Tag = 'a'
)

type (
	Entry struct {
		Ident    string
		Position string
		Tag      Tag
	}

	List struct {
		VORs     []Entry
		NDBs     []Entry
		Fixes    []Entry
		Airports []Entry
	}

	Stats struct {
		VORs     int
		NDBs     int
		Fixes    int
		Airports int
	}

	// kind describes where the identifier and coordinates sit on a line of
	// one section.
	kind struct {
		section   string
		tag       Tag
		latIndex  int
		minTokens int
	}
)

var kinds = []kind{
	{sectorfile.SectionVOR, TagVOR, 2, 4},
	{sectorfile.SectionNDB, TagNDB, 2, 4},
	{sectorfile.SectionFixes, TagFix, 1, 3},
	{sectorfile.SectionAirport, TagAirport, 2, 4},
}

func (e Entry) String() string {
	return fmt.Sprintf("%s\t%s %c - ", e.Ident, e.Position, e.Tag)
}

func (s Stats) Total() int {
	return s.VORs + s.NDBs + s.Fixes + s.Airports
}

func (l *List) Stats() Stats {
	return Stats{
		VORs:     len(l.VORs),
		NDBs:     len(l.NDBs),
		Fixes:    len(l.Fixes),
		Airports: len(l.Airports),
	}
}

func (l *List) entries(t Tag) *[]Entry {
	switch t {
	case TagVOR:
		return &l.VORs
	case TagNDB:
		return &l.NDBs
	case TagFix:
		return &l.Fixes
	}
	return &l.Airports
}

// Parse reads each navigation section of a sector file on its own,
// stopping at the header that follows it. Lines that are too short or
// whose coordinates are not strictly DMS are dropped and recorded.
func Parse(raw []byte, filename string, diags *londonctrl.Diagnostics) (*List, error) {
	list := &List{}

	for _, k := range kinds {
		secs, err := sectorfile.Scan(bytes.NewReader(raw), sectorfile.UntilNextHeader(k.section))
		if err != nil {
			return nil, fmt.Errorf("error reading '%s': %w", filename, err)
		}

		dst := list.entries(k.tag)
		for _, line := range secs.Lines(k.section) {
			entry, err := parseLine(line.Text, k)
			if err != nil {
				diags.Addf(filename, line.Num, kindOf(err), "[%s] %v", k.section, err)
				continue
			}
			*dst = append(*dst, entry)
		}
		log.WithFields(logrus.Fields{"section": k.section, "entries": len(*dst)}).Debug("section parsed")
	}

	return list, nil
}

// ParseFile is Parse over a local file.
func ParseFile(path string, diags *londonctrl.Diagnostics) (*List, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return Parse(raw, path, diags)
}

type coordError struct {
	coords string
}

func (e *coordError) Error() string {
	return fmt.Sprintf("invalid coordinates '%s'", e.coords)
}

func kindOf(err error) londonctrl.Kind {
	if _, ok := err.(*coordError); ok {
		return londonctrl.KindCoordinate
	}
	return londonctrl.KindShortRecord
}

func parseLine(line string, k kind) (Entry, error) {
	tokens := strings.Fields(line)
	if len(tokens) < k.minTokens {
		return Entry{}, fmt.Errorf("expected %d tokens, got %d", k.minTokens, len(tokens))
	}

	lat, lon := tokens[k.latIndex], tokens[k.latIndex+1]
	pos, ok := coords.Reencode(lat, lon)
	if !ok {
		return Entry{}, &coordError{coords: lat + " " + lon}
	}
	return Entry{Ident: tokens[0], Position: pos, Tag: k.tag}, nil
}

// Write renders the list: a comment header, then one commented block per
// non-empty kind.
func Write(w io.Writer, l *List) error {
	bw := bufio.NewWriter(w)

	lines := []string{
		"; London Control Adaptation - Parsed Navigation Data",
		"; Generated from EuroScope .SCT file",
		"",
	}

	block := func(title string, entries []Entry, trailer bool) {
		if len(entries) == 0 {
			return
		}
		lines = append(lines, "; "+title)
		for _, e := range entries {
			lines = append(lines, e.String())
		}
		if trailer {
			lines = append(lines, "")
		}
	}
	block("VORs", l.VORs, true)
	block("NDBs", l.NDBs, true)
	block("Fixes", l.Fixes, true)
	block("Airports", l.Airports, false)

	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the list to path.
func WriteFile(path string, l *List) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating '%s': %w", path, err)
	}
	if err := Write(f, l); err != nil {
		f.Close()
		return fmt.Errorf("error writing '%s': %w", path, err)
	}
	return f.Close()
}

// DefaultOutputPath maps "UK.sct" to "UK_parsed.txt" next to the input.
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_parsed.txt"
}
