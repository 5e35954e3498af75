// Package logger wraps zerolog behind printf-style helpers so call
// sites stay one-liners. The query core itself never logs; these are
// for the transport and bootstrap layers.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	log = zerolog.New(consoleWriter()).With().Timestamp().Logger()
}

// InitLogging reconfigures the global logger. If filePath is non-empty
// the log is duplicated into that file in JSON form.
func InitLogging(filePath string) {
	writers := []io.Writer{consoleWriter()}
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Error().Err(err).Str("path", filePath).Msg("cannot open log file, console only")
		} else {
			writers = append(writers, f)
		}
	}
	log = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

func DebugLog(_ context.Context, format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}

func InfoLog(_ context.Context, format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

func WarnLog(_ context.Context, format string, args ...interface{}) {
	log.Warn().Msgf(format, args...)
}

func ErrorLog(_ context.Context, format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
}
