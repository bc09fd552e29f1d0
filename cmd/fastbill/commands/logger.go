package commands

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// Logger implements fastbill.Logger on zerolog.
type Logger struct {
	base zerolog.Logger
}

// NewLogger creates a logger writing to output. console selects the human
// readable writer instead of JSON lines.
func NewLogger(output io.Writer, level zerolog.Level, console bool) *Logger {
	if console {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
	}

	base := zerolog.New(output).
		With().
		Timestamp().
		Str("service", "fastbill").
		Logger().
		Level(level)

	return &Logger{base: base}
}

// ParseLevel parses a level name, falling back to info.
func ParseLevel(value string) zerolog.Level {
	levelString := strings.ToLower(strings.TrimSpace(value))
	if levelString == "" {
		return zerolog.InfoLevel
	}

	if lvl, err := zerolog.ParseLevel(levelString); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}

	return zerolog.InfoLevel
}

// Debug implements fastbill.Logger.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.base.Debug().Fields(fields).Msg(msg)
}

// Info implements fastbill.Logger.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.base.Info().Fields(fields).Msg(msg)
}

// Warn implements fastbill.Logger.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.base.Warn().Fields(fields).Msg(msg)
}

// Error implements fastbill.Logger.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.base.Error().Fields(fields).Msg(msg)
}

var _ fastbill.Logger = (*Logger)(nil)
