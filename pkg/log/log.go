// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by the emulator components.
type Logger interface {
	Fatal(str string)
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	*logrus.Logger
}

// New returns a Logger backed by logrus, configured for plain
// single-line output.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return &logger{l}
}

func (l *logger) Fatal(str string) {
	l.Logger.Fatal(str)
}
