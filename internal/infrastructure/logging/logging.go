// Package logging sets up the process-wide zerolog logger.
//
// Env vars:
//   - LOG_LEVEL  (default: info)
//   - LOG_FORMAT (console|json, default: console)
package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	root zerolog.Logger
)

// Init configures the root logger from the environment. Safe to call more
// than once; only the first call takes effect.
func Init() {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		level, err := zerolog.ParseLevel(strings.ToLower(getenvDefault("LOG_LEVEL", "info")))
		if err != nil {
			level = zerolog.InfoLevel
		}

		var out = os.Stdout
		logger := zerolog.New(out)
		if strings.ToLower(getenvDefault("LOG_FORMAT", "console")) == "console" {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
		}
		root = logger.Level(level).With().Timestamp().Str("service", "resultados").Logger()
	})
}

// For returns a component-tagged logger.
func For(component string) zerolog.Logger {
	Init()
	return root.With().Str("component", component).Logger()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
