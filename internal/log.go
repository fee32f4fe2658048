package internal

import (
	"log"
	"os"
)

// LogLevel orders logging verbosity from quietest to noisiest
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

var levelNames = map[string]LogLevel{
	"ERROR": LogLevelError,
	"WARN":  LogLevelWarn,
	"INFO":  LogLevelInfo,
	"DEBUG": LogLevelDebug,
}

// Logger writes leveled messages through the standard log package. Scoring
// itself stays silent; run orchestration and the HTTP surface log through
// this.
type Logger struct {
	level LogLevel
}

// NewLogger creates a logger that emits messages at or below level
func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level}
}

// NewDefaultLogger reads the level from LOG_LEVEL, defaulting to INFO
func NewDefaultLogger() *Logger {
	level := LogLevelInfo
	if parsed, ok := levelNames[os.Getenv("LOG_LEVEL")]; ok {
		level = parsed
	}
	return &Logger{level: level}
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(LogLevelError, "[ERROR] ", format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(LogLevelWarn, "[WARN] ", format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(LogLevelInfo, "[INFO] ", format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.emit(LogLevelDebug, "[DEBUG] ", format, args...)
}

func (l *Logger) emit(level LogLevel, prefix, format string, args ...interface{}) {
	if l.level >= level {
		log.Printf(prefix+format, args...)
	}
}

// DefaultLogger is the process-wide fallback for components given no logger
var DefaultLogger = NewDefaultLogger()
