package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// InitLogging configures the global logger. When path is non-empty the log is
// duplicated into that file (appended), otherwise output goes to stderr only.
func InitLogging(path string) {
	if path == "" {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to open log file, keeping stderr only")
		return
	}

	writers := io.MultiWriter(zerolog.ConsoleWriter{Out: os.Stderr}, f)
	log = zerolog.New(writers).With().Timestamp().Logger()
}

func InfoLog(ctx context.Context, format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

func WarnLog(ctx context.Context, format string, args ...interface{}) {
	log.Warn().Msgf(format, args...)
}

func ErrorLog(ctx context.Context, format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
}
