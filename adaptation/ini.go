package adaptation

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/iancoleman/orderedmap"
)

// Field is one "key = value" entry of an INI section.
type Field struct {
	Key   string
	Value string
}

// Document is an INI file whose sections and keys keep insertion order.
// Keys are case-sensitive.
type Document struct {
	sections *orderedmap.OrderedMap
}

func NewDocument() *Document {
	return &Document{sections: orderedmap.New()}
}

// Set replaces the section's contents with fields. A section that already
// exists keeps its position in the file.
func (d *Document) Set(name string, fields ...Field) {
	section := orderedmap.New()
	for _, f := range fields {
		section.Set(f.Key, f.Value)
	}
	d.sections.Set(name, section)
}

func (d *Document) Len() int {
	return len(d.sections.Keys())
}

// Sections lists section names in file order.
func (d *Document) Sections() []string {
	return d.sections.Keys()
}

// Get returns a single value.
func (d *Document) Get(section, key string) (string, bool) {
	raw, found := d.sections.Get(section)
	if !found {
		return "", false
	}
	value, found := raw.(*orderedmap.OrderedMap).Get(key)
	if !found {
		return "", false
	}
	return value.(string), true
}

// Keys lists the keys of a section in file order.
func (d *Document) Keys(section string) []string {
	raw, found := d.sections.Get(section)
	if !found {
		return nil
	}
	return raw.(*orderedmap.OrderedMap).Keys()
}

// WriteTo writes every section as "[name]" followed by "key = value"
// lines and a blank line.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	write := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(bw, format, args...)
		total += int64(n)
		return err
	}

	for _, name := range d.sections.Keys() {
		if err := write("[%s]\n", name); err != nil {
			return total, err
		}
		for _, key := range d.Keys(name) {
			value, _ := d.Get(name, key)
			if err := write("%s = %s\n", key, value); err != nil {
				return total, err
			}
		}
		if err := write("\n"); err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// WriteFile writes the document to path.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating '%s': %w", path, err)
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("error writing '%s': %w", path, err)
	}
	return f.Close()
}
