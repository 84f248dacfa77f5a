package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Level is a coarse severity class derived from a log message, used to pick
// a display color.
type Level int

const (
	LevelNone Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// LevelOf classifies a message by the conventional severity markers
// CloudWatch log lines tend to carry.
func LevelOf(message string) Level {
	switch {
	case strings.Contains(message, "ERROR"):
		return LevelError
	case strings.Contains(message, "WARN"):
		return LevelWarn
	case strings.Contains(message, "INFO"):
		return LevelInfo
	default:
		return LevelNone
	}
}

// FormatTimestampMillis renders an epoch-milliseconds timestamp for display.
// Non-positive values render as "-". UTC output carries a Z suffix.
func FormatTimestampMillis(ms int64, local bool) string {
	if ms <= 0 {
		return "-"
	}
	t := time.UnixMilli(ms)
	if local {
		return t.Local().Format("2006-01-02 15:04:05.000")
	}
	return t.UTC().Format("2006-01-02 15:04:05.000") + "Z"
}

// PrettyJSON re-indents a message that looks like a JSON object or array.
// The second return is false when the message is not recognizably JSON.
func PrettyJSON(message string) (string, bool) {
	trimmed := strings.TrimSpace(message)
	if len(trimmed) < 2 {
		return "", false
	}
	first, last := trimmed[0], trimmed[len(trimmed)-1]
	if !((first == '{' && last == '}') || (first == '[' && last == ']')) {
		return "", false
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "", "  "); err != nil {
		return "", false
	}
	return buf.String(), true
}
