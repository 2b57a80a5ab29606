// pkg/logger/logger.go
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Log is the global logger instance. It writes human-readable console output;
// level defaults to info until Setup is called.
var Log zerolog.Logger

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	Log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Caller().
		Logger()
}

// Setup applies the configured level. Server mode names map onto log levels:
// "debug" enables debug logging, anything unrecognized keeps info.
func Setup(mode string) {
	level, err := zerolog.ParseLevel(mode)
	if err != nil {
		if mode == "release" {
			level = zerolog.InfoLevel
		} else {
			Log.Warn().Str("mode", mode).Msg("unrecognized log level, keeping info")
			level = zerolog.InfoLevel
		}
	}
	zerolog.SetGlobalLevel(level)
	Log = Log.Level(level)
}
