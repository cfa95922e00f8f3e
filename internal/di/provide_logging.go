package di

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// ProvideLogger creates a new zerolog.Logger writing to stderr, so stdout
// carries only the deployment tool's output.
// format "json" selects JSON lines (CI); anything else uses the console writer.
// An unknown level falls back to info.
func ProvideLogger(format, level string) zerolog.Logger {
	return NewLogger(os.Stderr, format, level)
}

// NewLogger is ProvideLogger with an explicit destination.
func NewLogger(w io.Writer, format, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if strings.EqualFold(format, "json") {
		return zerolog.New(w).
			Level(lvl).
			With().
			Timestamp().
			Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
