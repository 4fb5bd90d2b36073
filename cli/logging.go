package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LevelCritical sits above slog's built-in levels, mirroring the CRITICAL
// tier of classic five-level loggers.
const LevelCritical = slog.LevelError + 4

// parseLevel maps the CLI level names onto slog levels.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// newHandler builds a text or JSON handler writing to w. Levels at or above
// LevelCritical are labeled CRITICAL instead of slog's ERROR+4.
func newHandler(w io.Writer, jsonFormat bool, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if l, ok := a.Value.Any().(slog.Level); ok && l >= LevelCritical {
					a.Value = slog.StringValue("CRITICAL")
				}
			}
			return a
		},
	}
	if jsonFormat {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// bootstrapLogger covers the window before the destination directory exists:
// stderr when console logging is on, discarded otherwise.
func bootstrapLogger(jsonFormat bool, level slog.Level, console bool, runID string) *slog.Logger {
	if !console {
		return slog.New(slog.DiscardHandler).With("run_id", runID)
	}
	return slog.New(newHandler(os.Stderr, jsonFormat, level)).With("run_id", runID)
}

// logFileName returns the run log name for a start time.
func logFileName(t time.Time) string {
	return "log_" + t.Format("20060102_150405") + ".log"
}

// openRunLog opens the run log file inside dir and returns a logger writing
// to it, mirrored to stderr when console logging is on. The caller owns the
// returned file.
func openRunLog(dir string, jsonFormat bool, level slog.Level, console bool, runID string, start time.Time) (*slog.Logger, *os.File, error) {
	path := filepath.Join(dir, logFileName(start))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open run log: %w", err)
	}

	var w io.Writer = file
	if console {
		w = io.MultiWriter(file, os.Stderr)
	}

	logger := slog.New(newHandler(w, jsonFormat, level)).With("run_id", runID)
	return logger, file, nil
}
