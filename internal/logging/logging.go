package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	ERROR
)

func (l Level) logrus() logrus.Level {
	switch l {
	case DEBUG:
		return logrus.DebugLevel
	case ERROR:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// New returns a Logger writing entries of at least minLevel to w.
func New(w io.Writer, minLevel Level) Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(minLevel.logrus())
	log.SetFormatter(
		&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		},
	)

	return log
}

// Nop returns a Logger that drops everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
