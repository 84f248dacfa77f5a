package view

import (
	"time"

	"lumberjack/internal/cloudwatch"
)

// NoSelection marks an absent group selection.
const NoSelection = -1

// LogsState is the mutable record of the logs screen: operator inputs,
// fetched data, and tail bookkeeping. It is owned and touched exclusively
// by the UI loop.
type LogsState struct {
	Profile    string
	Region     string
	LogGroup   string
	FilterText string

	AvailableGroups []string
	SelectedGroup   int // index into AvailableGroups, NoSelection when none

	TailMode         bool
	TailIntervalSecs int
	LastTailAt       time.Time

	ShowLocalTime bool
	TimeRange     TimeRange

	Entries     []cloudwatch.LogEntry
	LastFetchAt time.Time
}

// NewLogsState returns the stock state: no selection, five second tail
// interval, five minute window.
func NewLogsState() LogsState {
	return LogsState{
		SelectedGroup:    NoSelection,
		TailIntervalSecs: 5,
		TimeRange:        TimeRangeLast5m,
	}
}

const (
	minTailIntervalSecs = 1
	maxTailIntervalSecs = 300
)

// TailInterval returns the effective tail cadence, clamped to [1s, 300s].
func (s *LogsState) TailInterval() time.Duration {
	secs := s.TailIntervalSecs
	if secs < minTailIntervalSecs {
		secs = minTailIntervalSecs
	}
	if secs > maxTailIntervalSecs {
		secs = maxTailIntervalSecs
	}
	return time.Duration(secs) * time.Second
}

// SelectedGroupName returns the currently selected group, or "" when none.
func (s *LogsState) SelectedGroupName() string {
	if s.SelectedGroup == NoSelection || s.SelectedGroup >= len(s.AvailableGroups) {
		return ""
	}
	return s.AvailableGroups[s.SelectedGroup]
}

// ClampSelection re-validates a selection index against a list of length n:
// anything out of range becomes NoSelection, an in-range index is preserved.
func ClampSelection(selected, n int) int {
	if selected < 0 || selected >= n {
		return NoSelection
	}
	return selected
}
