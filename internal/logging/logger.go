package logging

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger provides optional verbose logging and lightweight timing helpers.
// The zero value discards everything.
type Logger struct {
	Verbose bool
	log     *logrus.Logger
}

func New(writer io.Writer, verbose bool) Logger {
	log := logrus.New()
	log.SetOutput(writer)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return Logger{Verbose: verbose, log: log}
}

func (l Logger) Infof(format string, args ...any) {
	if l.log == nil {
		return
	}
	l.log.Infof(format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.Verbose || l.log == nil {
		return
	}
	l.log.Debugf(format, args...)
}

// Warnf is for conditions the report itself does not show.
func (l Logger) Warnf(format string, args ...any) {
	if l.log == nil {
		return
	}
	l.log.Warnf(format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}
