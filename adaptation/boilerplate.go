package adaptation

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed static/*.ini
var static embed.FS

// StaticFiles are written verbatim; none of them depend on parsed data.
var StaticFiles = []string{
	"sectors.ini",
	"settings.ini",
	"colors.ini",
	"voice.ini",
	"plugins.ini",
	"labels.ini",
	"msaw.ini",
	"radar.ini",
	"coordination.ini",
}

// StaticContent returns the embedded text of one of StaticFiles.
func StaticContent(name string) ([]byte, error) {
	return static.ReadFile("static/" + name)
}

// WriteStatic copies every static file into dir and returns the names
// written. It stops at the first failure.
func WriteStatic(dir string) ([]string, error) {
	var written []string
	for _, name := range StaticFiles {
		raw, err := StaticContent(name)
		if err != nil {
			return written, fmt.Errorf("missing static file '%s': %w", name, err)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return written, fmt.Errorf("error writing '%s': %w", path, err)
		}
		log.WithField("filename", name).Debug("static file written")
		written = append(written, name)
	}
	return written, nil
}
