package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/jamiedatty/London-Control-Sim-Parser/navlist"
)

// selectSectorFile asks for the input file. ok is false when the dialog
// was dismissed.
func selectSectorFile() (path string, ok bool, err error) {
	path, err = zenity.SelectFile(
		zenity.Title("Select EuroScope .SCT file"),
		zenity.FileFilters{
			{
				Name:     "SCT files",
				Patterns: []string{"*.sct"},
			},
			{
				Name:     "All files",
				Patterns: []string{"*"},
			},
		},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return path, path != "", nil
}

func resultMessage(input, output string, stats navlist.Stats) string {
	return fmt.Sprintf("Successfully parsed %s!\n\n"+
		"Statistics:\n"+
		"- VORs: %d\n"+
		"- NDBs: %d\n"+
		"- Fixes: %d\n"+
		"- Airports: %d\n"+
		"- Total: %d navigation points\n\n"+
		"Output saved to:\n%s",
		filepath.Base(input), stats.VORs, stats.NDBs, stats.Fixes, stats.Airports, stats.Total(), output)
}

func showResult(input, output string, stats navlist.Stats) {
	err := zenity.Info(resultMessage(input, output, stats),
		zenity.Title("Parsing Complete"),
		zenity.InfoIcon)
	if err != nil {
		log.WithError(err).Debug("error showing result dialog")
	}
}

func showError(cause error) {
	err := zenity.Error(cause.Error(),
		zenity.Title("Error"),
		zenity.ErrorIcon)
	if err != nil {
		log.WithError(err).Debug("error showing error dialog")
	}
}
