package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	cfgLevel  string
	cfgFormat string
)

// Configure sets the process-wide level and format used by loggers created
// afterwards. It is typically called once from app wiring with the values
// from the logging config section; environment variables (LOG_LEVEL,
// APP_ENV) act as fallbacks.
func Configure(level, format string) {
	cfgLevel = level
	cfgFormat = format
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger. Output is console-formatted when
// configured so or when APP_ENV=dev; all logs carry the component field.
func NewZerologLogger(component string) Logger {
	console := cfgFormat == "console" || strings.ToLower(os.Getenv("APP_ENV")) == "dev"
	var z zerolog.Logger
	if console {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		z = zerolog.New(writer).With().Timestamp().Str("component", component).Logger()
	} else {
		z = zerolog.New(os.Stdout).With().Timestamp().Str("component", component).Logger()
	}
	level := cfgLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if lvl, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && lvl != zerolog.NoLevel {
		z = z.Level(lvl)
	}
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
