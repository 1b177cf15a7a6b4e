package gradient

import (
	"io"

	"github.com/andyrewlee/termgradient/internal/config"
	"github.com/andyrewlee/termgradient/internal/logging"
)

// LogLevel sets the minimum severity written by the package logger.
type LogLevel = logging.Level

const (
	LogDebug = logging.LevelDebug
	LogInfo  = logging.LevelInfo
	LogWarn  = logging.LevelWarn
	LogError = logging.LevelError
)

// SetLogOutput routes builder and preset diagnostics to w. A nil w silences
// them again, which is the state a program starts in.
func SetLogOutput(w io.Writer, level LogLevel) {
	logging.UseWriter(w, level)
}

// EnableFileLogging writes diagnostics to a dated file under the log
// directory of ~/.termgradient (or $TERMGRADIENT_HOME) and returns its path.
func EnableFileLogging(level LogLevel) (string, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return "", err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return "", err
	}
	if err := logging.Initialize(paths.LogDir, level); err != nil {
		return "", err
	}
	logging.Info("file logging enabled at %s level", level)
	return logging.GetLogPath(), nil
}

// CloseLog stops logging and closes any file opened by EnableFileLogging.
func CloseLog() error {
	return logging.Close()
}
