// Package logger configures the structured diagnostic log. User-facing
// progress output goes through fatih/color in the commands; this log carries
// the machine-readable trail behind --verbose.
package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  = zerolog.Nop()
)

// Init configures the global logger. Verbose enables debug-level output;
// otherwise only warnings and errors are shown.
func Init(verbose bool) {
	once.Do(func() {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().
			Level(level)
	})
}

// Log returns the configured logger. Init must have been called; commands do
// this in their PersistentPreRun.
func Log() *zerolog.Logger {
	return &log
}
