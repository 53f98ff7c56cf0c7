// Package logger configures the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config controls logger setup.
type Config struct {
	Level string

	// File, when set, receives log output instead of Output. The TUI logs
	// to a file so records do not corrupt the alternate screen.
	File string

	Output    io.Writer
	Formatter logrus.Formatter
}

// DefaultConfig logs warnings and above to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  LogLevelWarn,
		Output: os.Stderr,
		Formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
	}
}

// DefaultLogFile returns $XDG_STATE_HOME/mathdrill/mathdrill.log, falling
// back to ~/.local/state when XDG_STATE_HOME is unset.
func DefaultLogFile() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "mathdrill", "mathdrill.log"), nil
}

// Init applies cfg to the standard logrus logger. The returned closer
// releases the log file, if one was opened.
func Init(cfg Config) (io.Closer, error) {
	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logrus.SetLevel(level)

	if cfg.Formatter != nil {
		logrus.SetFormatter(cfg.Formatter)
	}

	if cfg.File == "" {
		out := cfg.Output
		if out == nil {
			out = os.Stderr
		}
		logrus.SetOutput(out)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)
	return f, nil
}

// InitLogger sets the level with the default formatter and output.
func InitLogger(level string) error {
	cfg := DefaultConfig()
	cfg.Level = level
	_, err := Init(cfg)
	return err
}
