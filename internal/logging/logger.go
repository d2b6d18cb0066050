// Package logging configures the shared logrus logger. Output goes to a log
// file (or nowhere) so it never interferes with the terminal UI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// EnvLevel overrides the configured log level
const EnvLevel = "FINDBAR_LOG_LEVEL"

var (
	base      = newBase()
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// Options controls Setup
type Options struct {
	Level   string // trace, debug, info, warn, error
	File    string // empty uses DefaultLogFile
	Verbose bool   // forces debug
	JSON    bool
}

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return l
}

// NewLogger returns the logger for a component. Entries share the base
// logger, so Setup applies to loggers created before it ran.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}
	entry := base.WithField("component", component)
	loggers[component] = entry
	return entry
}

// Setup points the base logger at the log file and applies the level.
// The returned closer releases the file.
func Setup(opts Options) (io.Closer, error) {
	level, err := ResolveLevel(opts)
	if err != nil {
		return nil, err
	}
	base.SetLevel(level)

	if opts.JSON {
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	path := opts.File
	if path == "" {
		path = DefaultLogFile()
	}
	if path == "" {
		base.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		base.SetOutput(io.Discard)
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		base.SetOutput(io.Discard)
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	base.SetOutput(file)
	return file, nil
}

// ResolveLevel picks the level: environment, then --verbose, then config
func ResolveLevel(opts Options) (logrus.Level, error) {
	if env := os.Getenv(EnvLevel); env != "" {
		return logrus.ParseLevel(env)
	}
	if opts.Verbose {
		return logrus.DebugLevel, nil
	}
	if strings.TrimSpace(opts.Level) == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(opts.Level)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetOutput redirects the base logger, mainly for tests
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// DefaultLogFile returns <user cache dir>/findbar/findbar.log
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "findbar", "findbar.log")
}
