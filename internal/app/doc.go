// Package app provides the orchestration layer for the lumberjack
// application.
//
// # Overview
//
// This package is the composition root: it loads preferences, opens the
// diagnostic logger, builds the CloudWatch client, starts the worker
// bridge and the window-control listener, and runs the TUI until exit.
//
// # Architecture
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> prefs.Load()        Read persisted preferences
//	       ├─────> logging.New()       File-backed diagnostics
//	       ├─────> cloudwatch.NewClient()
//	       ├─────> worker.Start()      Background dispatch goroutine
//	       ├─────> tray.Listen()       Window-control events
//	       └─────> tea.Program.Run()   TUI event loop (blocks)
//
//	Request round trip:
//	┌──────────────────────────────────────────────────┐
//	│ UI action ─> worker queue ─> CloudWatch call     │
//	│   ^                                │             │
//	│   └── tick poll <── reply channel ─┘             │
//	└──────────────────────────────────────────────────┘
//
// # Error Handling
//
// The only fatal condition during normal operation is a UI runtime
// failure; every CloudWatch failure is recovered at the poll site and
// rendered in the status bar. Preference-save failures on exit are
// logged and swallowed.
package app
