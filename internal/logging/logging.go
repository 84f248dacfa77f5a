// Package logging configures the application's diagnostic logger.
//
// The terminal belongs to the TUI, so diagnostics go to a file under the
// user cache directory instead of stdout. The level comes from the
// LUMBERJACK_LOG environment variable (debug, info, warn, error); anything
// unset or unrecognized means info.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const logFileName = "lumberjack.log"

// New opens the diagnostic logger. The returned closer flushes and closes
// the underlying file; it is safe to call even when the file could not be
// opened, in which case the logger discards everything.
func New() (zerolog.Logger, func()) {
	zerolog.TimeFieldFormat = time.RFC3339

	level := levelFromEnv(os.Getenv("LUMBERJACK_LOG"))

	var out io.Writer = io.Discard
	closer := func() {}

	if dir, err := os.UserCacheDir(); err == nil {
		appDir := filepath.Join(dir, "lumberjack")
		if err := os.MkdirAll(appDir, 0o755); err == nil {
			file, err := os.OpenFile(filepath.Join(appDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				out = file
				closer = func() { _ = file.Close() }
			}
		}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return logger, closer
}

func levelFromEnv(value string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
