package adaptation

import (
	"bytes"
	"strings"
	"testing"
)

func TestDocumentWrite(t *testing.T) {
	doc := NewDocument()
	doc.Set("EGLL", Field{"Name", "Airport EGLL"}, Field{"Frequency", ""})
	doc.Set("EGKK", Field{"Name", "Airport EGKK"})

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exp := "[EGLL]\nName = Airport EGLL\nFrequency = \n\n[EGKK]\nName = Airport EGKK\n\n"
	if buf.String() != exp {
		t.Errorf("expected %q, got %q", exp, buf.String())
	}
}

func TestDocumentReplaceKeepsPosition(t *testing.T) {
	doc := NewDocument()
	doc.Set("BIG", Field{"Type", "VOR"}, Field{"Elevation", "0"})
	doc.Set("LON", Field{"Type", "VOR"})
	doc.Set("BIG", Field{"Type", "NDB"})

	if s := strings.Join(doc.Sections(), ","); s != "BIG,LON" {
		t.Errorf("expected BIG,LON got %s", s)
	}
	if v, _ := doc.Get("BIG", "Type"); v != "NDB" {
		t.Errorf("expected replaced value NDB, got %s", v)
	}
	if _, found := doc.Get("BIG", "Elevation"); found {
		t.Errorf("replaced section must not keep old keys")
	}
	if doc.Len() != 2 {
		t.Errorf("expected 2 sections, got %d", doc.Len())
	}
}

func TestDocumentMissing(t *testing.T) {
	doc := NewDocument()
	if _, found := doc.Get("NOPE", "Name"); found {
		t.Errorf("unexpected section")
	}
	if keys := doc.Keys("NOPE"); keys != nil {
		t.Errorf("unexpected keys %v", keys)
	}
}
