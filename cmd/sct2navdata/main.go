/*
sct2navdata splits a sector file into the nav_data tables: airports.txt,
runways.txt, vors.txt, ndbs.txt and fixes.txt.

Usage:

	sct2navdata [-o dir] [-v] [-logfile path] [file.sct]
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	londonctrl "github.com/jamiedatty/London-Control-Sim-Parser"
	"github.com/jamiedatty/London-Control-Sim-Parser/navdata"
	"github.com/jamiedatty/London-Control-Sim-Parser/sectorfile"
)

const defaultInput = "FASA-Package_20251004101136-251001-0002.sct"

var log = logrus.WithField("module", "sct2navdata")

func main() {
	var (
		logCfg londonctrl.LogConfig
		out    londonctrl.OutputConfig
	)
	logCfg.RegisterFlags(flag.CommandLine)
	flag.StringVar(&out.Dir, "o", navdata.DefaultDir, "output directory")
	flag.Parse()

	londonctrl.SetupLogging(logCfg)

	input := defaultInput
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	diags := &londonctrl.Diagnostics{}

	fmt.Println("Parsing sector file...")
	data, err := sectorfile.ParseFile(input, diags)
	if err != nil {
		log.WithError(err).Error("error parsing sector file")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Found %d airports\n", len(data.Airports))
	fmt.Printf("Found %d runways\n", len(data.Runways))
	fmt.Printf("Found %d VORs\n", len(data.VORs))
	fmt.Printf("Found %d NDBs\n", len(data.NDBs))
	fmt.Printf("Found %d fixes\n", len(data.Fixes))

	fmt.Println("Writing navigation data to files...")
	if err := navdata.WriteDir(out.Dir, data); err != nil {
		log.WithError(err).Error("error writing navigation tables")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		diags.Report(log)
		os.Exit(1)
	}

	diags.Report(log)
	fmt.Printf("Done! Check the '%s' folder for the output files.\n", out.Dir)
}
