/*
sct2navlist writes the tagged navigation list of a sector file: one
tab-separated line per VOR, NDB, fix and airport.

Usage:

	sct2navlist [-o out.txt] [-v] [-logfile path] [file.sct]

Without a file argument a file selection dialog is shown and the result is
reported in a message box. The output defaults to <file>_parsed.txt.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
	"github.com/jamiedatty/London-Control-Sim-Parser/navlist"
)

var log = logrus.WithField("module", "sct2navlist")

func main() {
	var (
		logCfg londonctrl.LogConfig
		output string
	)
	logCfg.RegisterFlags(flag.CommandLine)
	flag.StringVar(&output, "o", "", "output file; <input>_parsed.txt when empty")
	flag.Parse()

	londonctrl.SetupLogging(logCfg)

	fmt.Println("EuroScope .SCT File Parser for FASA London Control")
	fmt.Println(strings.Repeat("=", 60))

	interactive := flag.NArg() == 0
	var input string
	if interactive {
		path, ok, err := selectSectorFile()
		if err != nil {
			log.WithError(err).Error("file selection failed")
			os.Exit(1)
		}
		if !ok {
			fmt.Println("No file selected. Exiting.")
			return
		}
		input = path
	} else {
		input = flag.Arg(0)
	}
	if output == "" {
		output = navlist.DefaultOutputPath(input)
	}

	fmt.Printf("Parsing %s...\n", filepath.Base(input))
	stats, err := run(input, output)
	if err != nil {
		log.WithError(err).Error("error parsing sector file")
		if interactive {
			showError(err)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nParsing complete! Output saved to: %s\n", output)
	fmt.Printf("Processed: %d VORs, %d NDBs, %d fixes, %d airports\n",
		stats.VORs, stats.NDBs, stats.Fixes, stats.Airports)
	if interactive {
		showResult(input, output, stats)
	}
}

func run(input, output string) (navlist.Stats, error) {
	diags := &londonctrl.Diagnostics{}
	defer diags.Report(log)

	list, err := navlist.ParseFile(input, diags)
	if err != nil {
		return navlist.Stats{}, err
	}
	if err := navlist.WriteFile(output, list); err != nil {
		return navlist.Stats{}, err
	}
	return list.Stats(), nil
}
