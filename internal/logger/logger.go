package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"pdfnamer/internal/domain"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the logging surface shared by every package.
type Logger interface {
	Log() *zerolog.Event
	Fatal() *zerolog.Event
	Err(err error) *zerolog.Event
	Error() *zerolog.Event
	Warn() *zerolog.Event
	Info() *zerolog.Event
	Trace() *zerolog.Event
	Debug() *zerolog.Event
	With() zerolog.Context
	SetLogLevel(level string)
}

// DefaultLogger keeps its level apart from the zerolog logger so it can be
// changed on config reload while other goroutines log.
type DefaultLogger struct {
	log     zerolog.Logger
	level   atomic.Int32
	writers []io.Writer
}

// New writes to stderr, and additionally to a rotated file when LogPath is set.
// stdout is left to command output.
func New(cfg *domain.Config) Logger {
	l := &DefaultLogger{
		writers: make([]io.Writer, 0),
	}

	zerolog.TimeFieldFormat = time.RFC3339

	l.writers = append(l.writers, zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.DateTime,
	})

	if cfg.LogPath != "" {
		l.writers = append(l.writers, &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    cfg.LogMaxSize, // megabytes
			MaxBackups: cfg.LogMaxBackups,
		})
	}

	l.log = zerolog.New(io.MultiWriter(l.writers...)).With().Timestamp().Logger()
	l.SetLogLevel(cfg.LogLevel)

	return l
}

// Nop discards everything.
func Nop() Logger {
	l := &DefaultLogger{log: zerolog.Nop()}
	l.level.Store(int32(zerolog.Disabled))

	return l
}

func (l *DefaultLogger) SetLogLevel(level string) {
	switch strings.ToUpper(level) {
	case "TRACE":
		l.level.Store(int32(zerolog.TraceLevel))
	case "DEBUG":
		l.level.Store(int32(zerolog.DebugLevel))
	case "INFO":
		l.level.Store(int32(zerolog.InfoLevel))
	case "WARN":
		l.level.Store(int32(zerolog.WarnLevel))
	case "ERROR":
		l.level.Store(int32(zerolog.ErrorLevel))
	default:
		l.level.Store(int32(zerolog.DebugLevel))
	}
}

// current returns a copy of the logger at the active level.
func (l *DefaultLogger) current() *zerolog.Logger {
	log := l.log.Level(zerolog.Level(l.level.Load()))
	return &log
}

func (l *DefaultLogger) Log() *zerolog.Event {
	return l.current().Log()
}

func (l *DefaultLogger) Fatal() *zerolog.Event {
	return l.current().Fatal()
}

func (l *DefaultLogger) Err(err error) *zerolog.Event {
	return l.current().Err(err)
}

func (l *DefaultLogger) Error() *zerolog.Event {
	return l.current().Error()
}

func (l *DefaultLogger) Warn() *zerolog.Event {
	return l.current().Warn()
}

func (l *DefaultLogger) Info() *zerolog.Event {
	return l.current().Info()
}

func (l *DefaultLogger) Trace() *zerolog.Event {
	return l.current().Trace()
}

func (l *DefaultLogger) Debug() *zerolog.Event {
	return l.current().Debug()
}

func (l *DefaultLogger) With() zerolog.Context {
	return l.current().With()
}
