// Package view holds the logs screen state and its display mapping.
//
// LogsState is a plain mutable record owned by the UI loop - inputs the
// operator typed, the last fetched entries, and tail bookkeeping. It is not
// synchronized because only the UI loop ever touches it; results from the
// background worker arrive through reply channels and are merged in by that
// same loop.
//
// The rest of the package is pure display glue: timestamp formatting,
// JSON pretty-printing, severity classification, and the lookback window
// presets.
package view
