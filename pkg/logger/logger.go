package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Leveled logger shared by the store packages. Thin wrapper over a single
// logrus instance so callers keep the Init/Debugf/Infof style.

type Fields = logrus.Fields

var std = newStd()

func newStd() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Unknown values fall back to info.
func Init(l string) {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		std.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		std.SetLevel(logrus.WarnLevel)
	case "error":
		std.SetLevel(logrus.ErrorLevel)
	case "fatal":
		std.SetLevel(logrus.FatalLevel)
	default:
		std.SetLevel(logrus.InfoLevel)
	}
}

// WithFields returns an entry carrying structured key/values.
func WithFields(f Fields) *logrus.Entry { return std.WithFields(f) }

func WithField(key string, value interface{}) *logrus.Entry { return std.WithField(key, value) }

func Debugf(format string, v ...interface{}) { std.Debugf(format, v...) }
func Infof(format string, v ...interface{})  { std.Infof(format, v...) }
func Warnf(format string, v ...interface{})  { std.Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { std.Errorf(format, v...) }
func Fatalf(format string, v ...interface{}) { std.Fatalf(format, v...) }

// LevelString returns the current level as text.
func LevelString() string {
	switch std.GetLevel() {
	case logrus.DebugLevel, logrus.TraceLevel:
		return "debug"
	case logrus.WarnLevel:
		return "warn"
	case logrus.ErrorLevel:
		return "error"
	case logrus.FatalLevel, logrus.PanicLevel:
		return "fatal"
	}
	return "info"
}
