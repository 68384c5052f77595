package sectorfile

import "strings"

const (
	SectionAirport = "AIRPORT"
	SectionRunway  = "RUNWAY"
	SectionVOR     = "VOR"
	SectionNDB     = "NDB"
	SectionFixes   = "FIXES"
)

type (
	// Line is a trimmed, non-empty, non-comment data line together with
	// its 1-based position in the source file.
	Line struct {
		Text string
		Num  int
	}

	// Sections holds data lines bucketed by upper-cased section name, in
	// file order.
	Sections struct {
		order []string
		lines map[string][]Line
	}

	Mode int

	// ScanMode selects which sections a scan keeps and when it stops.
	ScanMode struct {
		Mode     Mode
		Sections []string
	}
)

const (
	// ModeCollectAll walks the whole file. Every header switches the
	// current section; lines of sections not asked for are dropped. A
	// requested section that appears twice is appended to.
	ModeCollectAll Mode = iota
	// ModeUntilNextHeader collects the first occurrence of a single
	// section and stops at the first header line after it.
	ModeUntilNextHeader
)

func (m Mode) String() string {
	switch m {
	case ModeCollectAll:
		return "collect-all"
	case ModeUntilNextHeader:
		return "until-next-header"
	}
	return "unknown"
}

// CollectAll keeps the named sections, or every section when no names
// are given.
func CollectAll(names ...string) ScanMode {
	return ScanMode{Mode: ModeCollectAll, Sections: names}
}

// UntilNextHeader keeps the named section from its first header up to
// the first header of any other section.
func UntilNextHeader(name string) ScanMode {
	return ScanMode{Mode: ModeUntilNextHeader, Sections: []string{name}}
}

func (m ScanMode) wants(name string) bool {
	if m.Mode == ModeCollectAll && len(m.Sections) == 0 {
		return true
	}
	for _, s := range m.Sections {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

func newSections() *Sections {
	return &Sections{lines: make(map[string][]Line)}
}

func (s *Sections) open(name string) {
	if _, found := s.lines[name]; !found {
		s.order = append(s.order, name)
		s.lines[name] = []Line{}
	}
}

func (s *Sections) add(name string, l Line) {
	s.lines[name] = append(s.lines[name], l)
}

// Lines returns the data lines of a section; name is case-insensitive.
func (s *Sections) Lines(name string) []Line {
	return s.lines[strings.ToUpper(name)]
}

// Names lists the collected sections in the order they were first seen.
func (s *Sections) Names() []string {
	return s.order
}

// Has reports whether the section header was seen at all, even if the
// section held no data lines.
func (s *Sections) Has(name string) bool {
	_, found := s.lines[strings.ToUpper(name)]
	return found
}
