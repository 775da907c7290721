// Package logger configures the zerolog logger used across the service.
package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu       sync.Mutex
	instance zerolog.Logger
	ready    bool
)

// Init builds the process logger. Pretty output is meant for development;
// production gets plain JSON.
func Init(level string, pretty bool) *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	zerolog.TimeFieldFormat = time.RFC3339

	var out = zerolog.New(os.Stdout)
	if pretty {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	instance = out.Level(parseLevel(level)).With().Timestamp().Logger()
	ready = true
	return &instance
}

// Get returns the process logger, initialising a default one if Init was
// never called (tests rely on this).
func Get() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if !ready {
		instance = zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
		ready = true
	}
	return &instance
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
