package londonctrl

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogSizeMB  = 10
	defaultLogBackups = 3
)

// SetupLogging configures the global logrus logger. When a log file is
// configured, entries go both to stderr and to a size-rotated file.
func SetupLogging(cfg LogConfig) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if cfg.File == "" {
		logrus.SetOutput(os.Stderr)
		return
	}

	logrus.SetOutput(io.MultiWriter(os.Stderr, newLogFile(cfg)))
}

func newLogFile(cfg LogConfig) *lumberjack.Logger {
	size := cfg.MaxSizeMB
	if size <= 0 {
		size = defaultLogSizeMB
	}
	backups := cfg.MaxBackups
	if backups <= 0 {
		backups = defaultLogBackups
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    size,
		MaxBackups: backups,
	}
}
