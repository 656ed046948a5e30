package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var base zerolog.Logger

func init() {
	Setup(os.Getenv("ENVIRONMENT"), os.Stdout)
}

// Setup replaces the package logger. Development gets human readable console
// output with debug enabled; everything else gets JSON at info level.
func Setup(environment string, out io.Writer) {
	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	base = zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Logger exposes the underlying zerolog logger for structured fields.
func Logger() *zerolog.Logger {
	return &base
}

func Info(format string, v ...interface{}) {
	base.Info().Msgf(format, v...)
}

func Error(format string, v ...interface{}) {
	base.Error().Msgf(format, v...)
}

func Debug(format string, v ...interface{}) {
	base.Debug().Msgf(format, v...)
}

func Warn(format string, v ...interface{}) {
	base.Warn().Msgf(format, v...)
}

func Request(method, uri string, status int, latency time.Duration, requestID string, err error) {
	event := base.Info()
	if status >= 500 {
		event = base.Error()
	} else if status >= 400 {
		event = base.Warn()
	}

	event.
		Str("method", method).
		Str("uri", uri).
		Int("status", status).
		Dur("latency", latency).
		Str("request_id", requestID).
		Err(err).
		Msg("request")
}
