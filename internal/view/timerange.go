package view

import (
	"fmt"
	"time"
)

// TimeRangeKind selects how the fetch window is computed.
type TimeRangeKind int

const (
	RangeLast5m TimeRangeKind = iota
	RangeLast15m
	RangeLast1h
	RangeCustom
)

// TimeRange configures the lookback window for a fetch.
type TimeRange struct {
	Kind TimeRangeKind
	// CustomValue applies to RangeCustom, interpreted per CustomIsMinutes.
	CustomValue     int
	CustomIsMinutes bool
}

// TimeRangeLast5m is the stock window: the last five minutes.
var TimeRangeLast5m = TimeRange{Kind: RangeLast5m, CustomValue: 5, CustomIsMinutes: true}

// Lookback computes the duration before "now" from which to return entries.
// Custom values are floored at one second.
func (r TimeRange) Lookback() time.Duration {
	switch r.Kind {
	case RangeLast15m:
		return 15 * time.Minute
	case RangeLast1h:
		return time.Hour
	case RangeCustom:
		secs := r.CustomValue
		if r.CustomIsMinutes {
			secs *= 60
		}
		if secs < 1 {
			secs = 1
		}
		return time.Duration(secs) * time.Second
	default:
		return 5 * time.Minute
	}
}

// Next cycles through the preset windows; custom ranges cycle back to 5m.
func (r TimeRange) Next() TimeRange {
	switch r.Kind {
	case RangeLast5m:
		return TimeRange{Kind: RangeLast15m}
	case RangeLast15m:
		return TimeRange{Kind: RangeLast1h}
	default:
		return TimeRangeLast5m
	}
}

func (r TimeRange) String() string {
	switch r.Kind {
	case RangeLast15m:
		return "15m"
	case RangeLast1h:
		return "1h"
	case RangeCustom:
		if r.CustomIsMinutes {
			return fmt.Sprintf("%dm", r.CustomValue)
		}
		return fmt.Sprintf("%ds", r.CustomValue)
	default:
		return "5m"
	}
}
