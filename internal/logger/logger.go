package logger

import (
	"fmt"
	"strings"

	"github.com/appetiteclub/apt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger is an apt.Logger writing JSON to stderr, leaving stdout to the
// operator report and the confirmation prompt.
type zapLogger struct {
	s     *zap.SugaredLogger
	level zap.AtomicLevel
}

// New builds a stderr logger at the given level (debug, info, error). An
// unknown level falls back to info, as apt.NewLogger does.
func New(level string) apt.Logger {
	atom := zap.NewAtomicLevelAt(zapLevel(toLevel(level)))

	cfg := zap.NewProductionConfig()
	cfg.Level = atom
	cfg.Encoding = "json"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return apt.NewNoopLogger()
	}
	return &zapLogger{s: l.Sugar(), level: atom}
}

// NewWithZap wraps an existing zap logger. SetLogLevel has no effect on it.
func NewWithZap(l *zap.Logger) apt.Logger {
	if l == nil {
		return apt.NewNoopLogger()
	}
	return &zapLogger{s: l.Sugar(), level: zap.NewAtomicLevelAt(zapcore.DebugLevel)}
}

func (l *zapLogger) Debug(v ...any) {
	msg, kv := split(v)
	l.s.Debugw(msg, kv...)
}

func (l *zapLogger) Debugf(format string, a ...any) {
	l.s.Debugf(format, a...)
}

func (l *zapLogger) Info(v ...any) {
	msg, kv := split(v)
	l.s.Infow(msg, kv...)
}

func (l *zapLogger) Infof(format string, a ...any) {
	l.s.Infof(format, a...)
}

func (l *zapLogger) Error(v ...any) {
	msg, kv := split(v)
	l.s.Errorw(msg, kv...)
}

func (l *zapLogger) Errorf(format string, a ...any) {
	l.s.Errorf(format, a...)
}

func (l *zapLogger) SetLogLevel(level apt.LogLevel) {
	l.level.SetLevel(zapLevel(level))
}

func (l *zapLogger) With(args ...any) apt.Logger {
	return &zapLogger{s: l.s.With(args...), level: l.level}
}

// Sync flushes buffered entries. Safe to call on any apt.Logger.
func Sync(l apt.Logger) {
	if zl, ok := l.(*zapLogger); ok {
		_ = zl.s.Sync()
	}
}

// split reads v as a message followed by key/value pairs. An odd tail is
// folded into the message.
func split(v []any) (string, []any) {
	if len(v) == 0 {
		return "", nil
	}
	rest := v[1:]
	if len(rest)%2 != 0 {
		return strings.TrimSpace(fmt.Sprintln(v...)), nil
	}
	return fmt.Sprint(v[0]), rest
}

func toLevel(s string) apt.LogLevel {
	switch strings.ToLower(s) {
	case "debug", "dbg":
		return apt.DebugLevel
	case "error", "err":
		return apt.ErrorLevel
	default:
		return apt.InfoLevel
	}
}

func zapLevel(level apt.LogLevel) zapcore.Level {
	switch level {
	case apt.DebugLevel:
		return zapcore.DebugLevel
	case apt.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
