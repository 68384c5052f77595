// Package sectorfile reads the sectioned text format of EuroScope sector
// files and extracts airports, runways, VORs, NDBs and fixes from it.
package sectorfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField("module", "sectorfile")
)

const maxLineSize = 1024 * 1024

// Scan buckets the data lines of r by section. Blank lines and lines
// starting with ';' are skipped, as is everything before the first
// section header. In until-next-header mode a repeat of the wanted header
// keeps collecting; any other header ends the scan. Only read errors are
// returned.
func Scan(r io.Reader, mode ScanMode) (*Sections, error) {
	secs := newSections()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	current := ""
	collecting := false
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())

		if len(line) == 0 || line[0] == ';' {
			// skip comments and empty lines
			continue
		}

		if line[0] == '[' {
			name, ok := sectionName(line)

			if mode.Mode == ModeUntilNextHeader && collecting {
				if ok && mode.wants(name) {
					// repeated header, the section goes on
					continue
				}
				log.WithFields(logrus.Fields{"section": current, "line": lineNum}).Trace("section finished")
				return secs, nil
			}

			if !ok {
				log.WithField("line", lineNum).Debugf("ignoring malformed header '%s'", line)
				collecting = false
				continue
			}

			current = name
			collecting = mode.wants(name)
			if collecting {
				secs.open(name)
			}
			continue
		}

		if collecting {
			secs.add(current, Line{Text: line, Num: lineNum})
		}
	}

	if err := sc.Err(); err != nil {
		return secs, err
	}
	return secs, nil
}

// ScanFile is Scan over the contents of a local file.
func ScanFile(path string, mode ScanMode) (*Sections, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening '%s': %w", path, err)
	}
	defer f.Close()

	secs, err := Scan(f, mode)
	if err != nil {
		return nil, fmt.Errorf("error reading '%s': %w", path, err)
	}
	return secs, nil
}

func sectionName(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}
	name := strings.TrimSpace(line[1 : len(line)-1])
	if name == "" {
		return "", false
	}
	return strings.ToUpper(name), true
}
