// Package logging configures the process-wide logger. The data
// structure packages never import it.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

type Options struct {
	// Filename is the log file prefix; a timestamp and, for distributed
	// runs, the rank get appended. Parent directories are created.
	Filename string
	// Level is one of debug, info, warning, error, critical.
	// Anything else falls back to error.
	Level string
	// Console tees every record to stderr.
	Console bool
	// Rank and WorldSize tag records of distributed runs. A WorldSize
	// of 0 disables the tag.
	Rank      int
	WorldSize int
}

// Setup opens the log file and returns the entry to log through.
func Setup(opts Options) (*logrus.Entry, error) {
	name := fmt.Sprintf("%s-%s", opts.Filename, time.Now().Format("2006-01-02-15-04-05"))
	if opts.WorldSize > 0 {
		name = fmt.Sprintf("%s-%d", name, opts.Rank)
	}
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory %q: %w", dir, err)
		}
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("cannot create log file %q: %w", name, err)
	}

	var out io.Writer = f
	if opts.Console {
		out = io.MultiWriter(f, os.Stderr)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(parseLevel(opts.Level))
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	entry := logrus.NewEntry(logger)
	if opts.WorldSize > 0 {
		entry = entry.WithFields(logrus.Fields{
			"rank":  opts.Rank,
			"world": opts.WorldSize,
		})
	}
	return entry, nil
}

func parseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warning":
		return logrus.WarnLevel
	case "critical":
		return logrus.FatalLevel
	default:
		return logrus.ErrorLevel
	}
}
