package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. It is usable before Init is called.
var Log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init initializes the global logger.
// Production emits JSON lines; anything else gets the console writer.
func Init(isProduction bool, level string) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if isProduction {
		Log = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
		return
	}

	Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Caller().
		Logger()
}

func Info() *zerolog.Event {
	return Log.Info()
}

func Error() *zerolog.Event {
	return Log.Error()
}

func Warn() *zerolog.Event {
	return Log.Warn()
}

func Debug() *zerolog.Event {
	return Log.Debug()
}

func Fatal() *zerolog.Event {
	return Log.Fatal()
}
