// Package ui implements the terminal interface for lumberjack.
//
// # Overview
//
// The package is a bubbletea program: Model carries all screen state,
// Update folds messages into it, View renders a frame. A 250ms tick plays
// the role of the frame clock for background integration - on every tick
// the model polls its pending reply channels without blocking and then
// evaluates the tail timer.
//
// # Pending Operations
//
// The model holds at most one pending fetch handle and one pending
// group-list handle. A new request of a kind is only issued when no handle
// of that kind is live, which is what makes serialized worker dispatch
// sufficient. Poll outcomes:
//
//   - result available, success: merge into state, clear flag and error
//   - result available, failure: record error for the status bar, clear flag
//   - nothing yet: leave the handle alone
//   - bridge gone without a reply: stop waiting, surface a worker-unavailable
//     notice
//
// # Tail Mode
//
// With tail on and no fetch in flight, a fetch fires when the configured
// interval (clamped to 1..300s) has elapsed since the last trigger, or
// immediately if tail was just enabled. Turning tail off resets the trigger
// marker.
//
// # Input Handling
//
// Four text inputs (profile, region, group, filter) share focus via tab.
// Control-key chords drive everything else so plain runes always reach the
// focused input; the View's footer lists them.
package ui
