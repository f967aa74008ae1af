// Package logging owns the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// SetLevel sets the level of Log from a name. Trace and panic are not used.
func SetLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "", "info":
		Log.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Log.SetLevel(logrus.FatalLevel)
	default:
		return fmt.Errorf("bad log level %q (want debug, info, warn, error or fatal)", level)
	}
	return nil
}

// For returns Log scoped to a component.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}

// Redirect points Log at a file, or discards output when path is empty. The
// TUI calls this before taking over the screen. The returned close func is
// never nil.
func Redirect(path string) (func() error, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		Log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return func() error { return nil }, fmt.Errorf("open log file: %w", err)
	}
	Log.SetOutput(f)
	Log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return f.Close, nil
}

// Restore sends Log back to stderr.
func Restore() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{})
}
