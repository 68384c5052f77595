package londonctrl

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type Kind int

const (
	// KindShortRecord marks a data line with fewer tokens than its section needs.
	KindShortRecord Kind = iota
	// KindCoordinate marks a coordinate that could not be decoded and was zeroed or dropped.
	KindCoordinate
	// KindMissingFile marks an optional input file that was not found.
	KindMissingFile
	// KindUnknownKey marks a configuration key that nothing consumed.
	KindUnknownKey
)

// kindFields names the summary field of every Kind.
var kindFields = []struct {
	kind Kind
	key  string
}{
	{KindShortRecord, "short"},
	{KindCoordinate, "coordinates"},
	{KindMissingFile, "missing_files"},
	{KindUnknownKey, "unknown_keys"},
}

func (k Kind) String() string {
	switch k {
	case KindShortRecord:
		return "short record"
	case KindCoordinate:
		return "bad coordinate"
	case KindMissingFile:
		return "missing file"
	case KindUnknownKey:
		return "unknown key"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Diagnostic describes one record that was skipped or degraded during a
// conversion run. Line is 1-based; zero means the whole file.
type Diagnostic struct {
	File    string
	Line    int
	Kind    Kind
	Message string
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	if d.File != "" {
		sb.WriteString(d.File)
		if d.Line > 0 {
			fmt.Fprintf(&sb, ":%d", d.Line)
		}
		sb.WriteString(": ")
	}
	sb.WriteString(d.Kind.String())
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	return sb.String()
}

// Diagnostics accumulates problems found while converting so that a run
// never aborts on a bad line but still reports everything it dropped once
// it is done. A nil *Diagnostics discards everything.
type Diagnostics struct {
	entries []Diagnostic
}

func (d *Diagnostics) Add(diag Diagnostic) {
	if d == nil {
		return
	}
	d.entries = append(d.entries, diag)
}

func (d *Diagnostics) Addf(file string, line int, kind Kind, format string, args ...interface{}) {
	d.Add(Diagnostic{File: file, Line: line, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

func (d *Diagnostics) Entries() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.entries
}

func (d *Diagnostics) Count(kind Kind) int {
	n := 0
	for _, e := range d.Entries() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (d *Diagnostics) String() string {
	lines := make([]string, 0, d.Len())
	for _, e := range d.Entries() {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n")
}

// Report logs the per-kind summary at info level and every entry at warn
// level.
func (d *Diagnostics) Report(l *logrus.Entry) {
	if d.Len() == 0 {
		l.Info("no records skipped")
		return
	}
	fields := logrus.Fields{"total": d.Len()}
	for _, kf := range kindFields {
		fields[kf.key] = d.Count(kf.kind)
	}
	l.WithFields(fields).Info("some records were skipped or degraded")
	for _, e := range d.Entries() {
		l.Warn(e.String())
	}
}
