package atomspace

import "go.uber.org/zap"

// LogLevel mirrors the original source's Logger::Level enum (DEBUG, FINE,
// WARN, ERROR) closely enough to gate the core's own log statements.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelFine
	LevelWarn
	LevelError
	// LevelNone is the highest threshold; as a backtrace level it means no
	// backtraces.
	LevelNone
)

// Logger is the §6 "Logger" collaborator: a level-filtered diagnostic sink
// with an adjustable backtrace threshold.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Fine(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	// BackTraceLevel returns the level above which a backtrace would be
	// attached (a no-op for the default implementation, which never
	// attaches stack traces to structured fields).
	BackTraceLevel() LogLevel
	// SetBackTraceLevel adjusts the threshold. The core itself never
	// calls it.
	SetBackTraceLevel(LogLevel)
}

// zapLogger is the default Logger, wrapping go.uber.org/zap.SugaredLogger
// (grounded on theRebelliousNerd-codenerd/cmd/nerd/main.go's
// zap.NewProductionConfig()-based CLI logger).
type zapLogger struct {
	sugar     *zap.SugaredLogger
	backtrace LogLevel
}

// NewZapLogger builds the default Logger collaborator. If development is
// true, it uses zap's human-readable development encoder; otherwise it
// uses the production JSON encoder.
func NewZapLogger(development bool) (Logger, error) {
	var base *zap.Logger
	var err error
	if development {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return &zapLogger{sugar: base.Sugar()}, nil
}

func (l *zapLogger) Debug(msg string, kv ...interface{}) { l.sugar.Debugw(msg, kv...) }
func (l *zapLogger) Fine(msg string, kv ...interface{})  { l.sugar.Debugw(msg, kv...) }
func (l *zapLogger) Warn(msg string, kv ...interface{})  { l.sugar.Warnw(msg, kv...) }
func (l *zapLogger) Error(msg string, kv ...interface{}) { l.sugar.Errorw(msg, kv...) }

func (l *zapLogger) BackTraceLevel() LogLevel     { return l.backtrace }
func (l *zapLogger) SetBackTraceLevel(lv LogLevel) { l.backtrace = lv }

// noopLogger discards everything; used as the default when the caller
// supplies no Logger, so the core never panics on a nil collaborator.
type noopLogger struct{ backtrace LogLevel }

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Fine(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (l *noopLogger) BackTraceLevel() LogLevel      { return l.backtrace }
func (l *noopLogger) SetBackTraceLevel(lv LogLevel) { l.backtrace = lv }
