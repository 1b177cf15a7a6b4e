package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level orders log lines; anything below the installed level is dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger serializes leveled log lines onto a single writer.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	level    Level
	enabled  bool
	filePath string
}

// The library is silent until a host program calls Initialize or UseWriter.
var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Initialize opens a dated log file in logDir and routes package logging to it.
func Initialize(logDir string, level Level) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, fmt.Sprintf("termgradient-%s.log", time.Now().Format("2006-01-02")))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	install(&Logger{
		writer:   file,
		level:    level,
		enabled:  true,
		filePath: logPath,
	})
	return nil
}

// UseWriter routes package logging to w. Passing nil silences logging again.
func UseWriter(w io.Writer, level Level) {
	if w == nil {
		install(nil)
		return
	}
	install(&Logger{writer: w, level: level, enabled: true})
}

func install(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

func current() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetEnabled pauses or resumes the installed logger without replacing it.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

func log(level Level, format string, args ...interface{}) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(l.writer, "[%s] %s: %s\n", timestamp, level.String(), msg)
}

// Debug records builder outcomes and other high-volume detail.
func Debug(format string, args ...interface{}) {
	log(LevelDebug, format, args...)
}

func Info(format string, args ...interface{}) {
	log(LevelInfo, format, args...)
}

// Warn records rejected input that was skipped rather than returned.
func Warn(format string, args ...interface{}) {
	log(LevelWarn, format, args...)
}

func Error(format string, args ...interface{}) {
	log(LevelError, format, args...)
}

// WithError logs err at error level, prefixed by context. Nil errors are ignored.
func WithError(err error, context string) {
	if err != nil {
		log(LevelError, "%s: %v", context, err)
	}
}

// Close silences logging and closes the log file opened by Initialize.
// Writers passed to UseWriter are left open for their owner.
func Close() error {
	defaultMu.Lock()
	l := defaultLogger
	defaultLogger = nil
	defaultMu.Unlock()

	if l == nil || l.filePath == "" {
		return nil
	}
	if closer, ok := l.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// GetLogPath returns the file opened by Initialize, or "" when logging goes
// elsewhere or nowhere.
func GetLogPath() string {
	if l := current(); l != nil {
		return l.filePath
	}
	return ""
}
