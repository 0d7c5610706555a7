// Package log provides the logging facade used across the emulator core.
// It wraps logrus so components can report diagnostics (dropped writes,
// unsupported cartridges, unimplemented opcodes) without taking a direct
// dependency on a particular logging backend.
package log

import "github.com/sirupsen/logrus"

// Logger is the minimal logging surface components depend on.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	l *logrus.Logger
}

// New returns a Logger backed by a logrus.Logger configured the way the
// emulator wants its console output: no color, no timestamp, fields in
// insertion order.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return &logger{l: l}
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.l.Infof(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.l.Errorf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.l.Debugf(format, args...)
}
