// Package simlog is the simulator's narrow logging surface. It hides the
// concrete logging library behind two methods so the rest of the module
// never imports logrus directly.
package simlog

import "github.com/sirupsen/logrus"

// Logger is the sink for non-fatal console notices (e.g. a misshapen disk
// backing file) and for the message attached to a fatal trap just before
// it panics.
type Logger interface {
	Noticef(format string, args ...any)
	Fatalf(format string, args ...any)
}

type logrusLogger struct {
	entry *logrus.Entry
}

// New returns a Logger backed by logrus, writing structured fields so a
// host embedding the simulator can filter on component=simulator.
func New() Logger {
	l := logrus.New()
	return &logrusLogger{entry: l.WithField("component", "simulator")}
}

func (l *logrusLogger) Noticef(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *logrusLogger) Fatalf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

type discard struct{}

// Discard returns a Logger that drops everything, used by tests that don't
// want console noise.
func Discard() Logger { return discard{} }

func (discard) Noticef(string, ...any) {}
func (discard) Fatalf(string, ...any)  {}
