/*
navdata2adaptation builds the adaptation INI files from the nav_data tables
written by sct2navdata.

Usage:

	navdata2adaptation [-in nav_data] [-o adaptation_files] [-routes file.toml] [-geojson] [-v] [-logfile path]

Without -routes the built-in airway and sector map table is used.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
	"github.com/jamiedatty/London-Control-Sim-Parser/adaptation"
	"github.com/jamiedatty/London-Control-Sim-Parser/navdata"
)

var log = logrus.WithField("module", "navdata2adaptation")

func fatal(msg string, err error) {
	log.WithError(err).Error(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

// countEntries returns how many files and directories dir holds.
func countEntries(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.WithError(err).WithField("dir", dir).Debug("error listing directory")
		return 0
	}
	return len(entries)
}

func main() {
	var (
		logCfg     londonctrl.LogConfig
		out        londonctrl.OutputConfig
		inputDir   string
		routesPath string
		geoJSON    bool
	)
	logCfg.RegisterFlags(flag.CommandLine)
	flag.StringVar(&inputDir, "in", navdata.DefaultDir, "directory holding the navigation tables")
	flag.StringVar(&out.Dir, "o", adaptation.DefaultDir, "output directory")
	flag.StringVar(&routesPath, "routes", "", "airway and sector map table (TOML); built-in table when empty")
	flag.BoolVar(&geoJSON, "geojson", false, "also write the parsed navigation data as GeoJSON")
	flag.Parse()

	londonctrl.SetupLogging(logCfg)
	diags := &londonctrl.Diagnostics{}

	var (
		table *adaptation.Table
		err   error
	)
	if routesPath != "" {
		table, err = adaptation.LoadTable(routesPath, diags)
	} else {
		table, err = adaptation.DefaultTable()
	}
	if err != nil {
		fatal("error loading route table", err)
	}

	fmt.Println("Starting adaptation creation")
	fmt.Printf("Reading navigation data from %s\n", inputDir)
	data := navdata.ReadDir(inputDir, diags)

	fmt.Println("\nData summary:")
	fmt.Printf("   Airports: %d\n", len(data.Airports))
	fmt.Printf("   Runways:  %d\n", len(data.Runways))
	fmt.Printf("   VORs:     %d\n", len(data.VORs))
	fmt.Printf("   NDBs:     %d\n", len(data.NDBs))
	fmt.Printf("   Fixes:    %d\n", len(data.Fixes))

	summary, err := adaptation.Build(data, table, adaptation.Config{OutputDir: out.Dir, GeoJSON: geoJSON}, diags)
	diags.Report(log)
	if err != nil {
		fatal("error building adaptation", err)
	}

	fmt.Printf("\nCreated %d airways, %d sector maps\n", summary.Airways, summary.Maps)
	fmt.Printf("Created %d adaptation files\n", countEntries(out.Dir))
	fmt.Printf("Created %d detailed sector maps\n", countEntries(filepath.Join(out.Dir, "maps")))
	fmt.Printf("All files saved to: %s\n", out.Dir)
}
