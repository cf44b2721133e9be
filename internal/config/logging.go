package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

// SetupLogger creates the application logger. Records always go to the log file as
// JSON; when console is true they are also written to stderr as text. The chat TUI
// owns the terminal, so it runs with console disabled.
// Returns the logger and a cleanup function to close the file.
func SetupLogger(logFile string, level slog.Level, console bool) (*slog.Logger, func() error) {
	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	if err := os.MkdirAll(filepath.Dir(logFile), 0o700); err == nil {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err == nil {
			fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{
				Level: level,
			})

			handler := slog.Handler(fileHandler)
			if console {
				handler = slogmulti.Fanout(stderrHandler, fileHandler)
			}

			return slog.New(handler), file.Close
		}
	}

	// No usable log file: keep stderr output for console commands, drop records otherwise
	if console {
		return slog.New(stderrHandler), func() error { return nil }
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }
}

// SetupLoggerWithWriters creates a logger with custom writers (for testing).
func SetupLoggerWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	stderrHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(stderrHandler, fileHandler))
}
