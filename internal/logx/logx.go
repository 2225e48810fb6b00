// Package logx builds the zerolog loggers used by coop's commands.
//
// Console output keeps a short timestamp and renders
// fields as key=value pairs.
package logx

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

const consoleTimeFormat = "15:04:05.000"

// NewConsole creates a human readable logger writing to w.
// Output is colored only when stdout is a terminal.
func NewConsole(w io.Writer, level string) zerolog.Logger {
	zerolog.ErrorFieldName = "err"

	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    color.NoColor,
		TimeFormat: consoleTimeFormat,
	}
	return zerolog.New(cw).
		Level(ParseLevel(level, zerolog.InfoLevel)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel returns the level named by s or def if s is empty or unknown.
func ParseLevel(s string, def zerolog.Level) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	}
	return def
}
