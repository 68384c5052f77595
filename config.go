package londonctrl

import "flag"

type LogConfig struct {
	Verbose bool
	File    string
	// MaxSizeMB and MaxBackups bound the rotated log file; zero picks the
	// defaults.
	MaxSizeMB  int
	MaxBackups int
}

// RegisterFlags binds the logging flags every command accepts.
func (c *LogConfig) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.Verbose, "v", false, "enable debug logging")
	fs.StringVar(&c.File, "logfile", "", "also write logs to this file, rotated by size")
	fs.IntVar(&c.MaxSizeMB, "logsize", defaultLogSizeMB, "rotate the log file after this many megabytes")
	fs.IntVar(&c.MaxBackups, "logbackups", defaultLogBackups, "number of rotated log files to keep")
}

type OutputConfig struct {
	Dir string
}
