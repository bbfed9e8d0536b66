package sizeguard

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/pterm/pterm"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	// Stay silent until the verbosity plugin enables a logger.
	SetLogger(NewTextHandlerLogger(io.Discard))
}

// Slog is an alias for a go structured logger [slog.Logger] to reduce visible dependencies.
type Slog = slog.Logger

// Logger is a logger and its config holder struct.
type Logger struct {
	*Slog
	LogOptions
}

// A LogLevel is the importance or severity of a log event.
type LogLevel int

// Log levels.
const (
	LogLevelDisabled LogLevel = iota // LogLevelDisabled does never print.
	LogLevelDebug                    // LogLevelDebug is the log level for debug.
	LogLevelInfo                     // LogLevelInfo is the log level for info.
	LogLevelWarn                     // LogLevelWarn is the log level for warnings.
	LogLevelError                    // LogLevelError is the log level for errors.
)

var logLevelNames = map[LogLevel]string{
	LogLevelDisabled: "NONE",
	LogLevelDebug:    "DEBUG",
	LogLevelInfo:     "INFO",
	LogLevelWarn:     "WARN",
	LogLevelError:    "ERROR",
}

// String implements [fmt.Stringer] interface.
func (l LogLevel) String() string {
	if s, ok := logLevelNames[l]; ok {
		return s
	}
	return logLevelNames[LogLevelDisabled]
}

// LogLevelFromString translates a log level string to [LogLevel].
// Unknown strings disable logging.
func LogLevelFromString(s string) LogLevel {
	for l, name := range logLevelNames {
		if name == s {
			return l
		}
	}
	return LogLevelDisabled
}

// LogOptions is a common interface to allow adjusting the logger.
type LogOptions interface {
	// Level returns the currently set log level.
	Level() LogLevel
	// SetLevel sets log level.
	SetLevel(l LogLevel)
	// SetOutput sets logger output.
	SetOutput(w io.Writer)
}

type ptermOpts struct {
	pterm *pterm.Logger
	lvl   LogLevel
}

var ptermLevels = map[LogLevel]pterm.LogLevel{
	LogLevelDisabled: pterm.LogLevelDisabled,
	LogLevelDebug:    pterm.LogLevelDebug,
	LogLevelInfo:     pterm.LogLevelInfo,
	LogLevelWarn:     pterm.LogLevelWarn,
	LogLevelError:    pterm.LogLevelError,
}

func (o *ptermOpts) Level() LogLevel       { return o.lvl }
func (o *ptermOpts) SetOutput(w io.Writer) { o.pterm.Writer = w }
func (o *ptermOpts) SetLevel(l LogLevel) {
	o.lvl = l
	o.pterm.Level = ptermLevels[l]
}

type slogOpts struct {
	io.Writer      // it is used to allow runtime changes, which slog does not support.
	*slog.LevelVar // slog handler level for runtime changes.
	lvl            LogLevel
}

var slogLevels = map[LogLevel]slog.Level{
	// A level nothing reaches.
	LogLevelDisabled: slog.Level(100),
	LogLevelDebug:    slog.LevelDebug,
	LogLevelInfo:     slog.LevelInfo,
	LogLevelWarn:     slog.LevelWarn,
	LogLevelError:    slog.LevelError,
}

func (o *slogOpts) Level() LogLevel       { return o.lvl }
func (o *slogOpts) SetOutput(w io.Writer) { o.Writer = w }
func (o *slogOpts) SetLevel(l LogLevel) {
	o.lvl = l
	o.LevelVar.Set(slogLevels[l])
}

// NewConsoleLogger creates a default console logger.
func NewConsoleLogger(w io.Writer) *Logger {
	l := pterm.DefaultLogger
	opts := &ptermOpts{pterm: &l}
	opts.SetOutput(w)
	opts.SetLevel(LogLevelDisabled)
	return &Logger{
		Slog:       slog.New(pterm.NewSlogHandler(opts.pterm)),
		LogOptions: opts,
	}
}

type slogHandlerFn[T slog.Handler] func(w io.Writer, opts *slog.HandlerOptions) T

func newSlogLogger[T slog.Handler](w io.Writer, newHandler slogHandlerFn[T]) *Logger {
	opts := &slogOpts{Writer: w, LevelVar: &slog.LevelVar{}}
	opts.SetLevel(LogLevelDisabled)
	return &Logger{
		Slog:       slog.New(newHandler(opts, &slog.HandlerOptions{Level: opts.LevelVar})),
		LogOptions: opts,
	}
}

// NewTextHandlerLogger creates a logger with a [io.Writer] and plain slog output.
func NewTextHandlerLogger(w io.Writer) *Logger {
	return newSlogLogger(w, slog.NewTextHandler)
}

// NewJSONHandlerLogger creates a logger with a [io.Writer] and JSON output.
func NewJSONHandlerLogger(w io.Writer) *Logger {
	return newSlogLogger(w, slog.NewJSONHandler)
}

// Log returns the default logger.
func Log() *Logger {
	return defaultLogger.Load()
}

// SetLogger sets the default logger.
func SetLogger(l *Logger) {
	defaultLogger.Store(l)
}
