package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger writes every message at a fixed level.
type Logger struct{ level zerolog.Level }

var (
	base = newBase(os.Stdout)

	Debug = Logger{level: zerolog.DebugLevel}
	Info  = Logger{level: zerolog.InfoLevel}
	Warn  = Logger{level: zerolog.WarnLevel}
	Error = Logger{level: zerolog.ErrorLevel}
)

func newBase(w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(out).With().Timestamp().Logger()
}

// SetOutput redirects all loggers, mostly for tests.
func SetOutput(w io.Writer) { base = newBase(w) }

// SetLevel accepts debug|info|warn|error; anything else means info.
func SetLevel(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Z exposes the underlying zerolog logger for structured events.
func Z() *zerolog.Logger { return &base }

func (l Logger) Printf(format string, v ...any) {
	base.WithLevel(l.level).Msgf(format, v...)
}

func (l Logger) Println(v ...any) {
	base.WithLevel(l.level).Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (l Logger) Fatalf(format string, v ...any) {
	base.WithLevel(zerolog.FatalLevel).Msgf(format, v...)
	os.Exit(1)
}
