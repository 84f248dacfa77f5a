// Package tray provides the window-control event channel.
//
// The desktop ancestry of this contract is a system tray icon; in a
// terminal there is no tray, so the emitter listens for SIGUSR1 as the
// "icon click" and exposes RequestClose for in-process callers. Consumers
// see only an event channel; where the events come from is this package's
// business.
package tray

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Event is a window-control request.
type Event int

const (
	EventToggleWindow Event = iota
	EventShowWindow
	EventHideWindow
	EventQuitRequested
)

func (e Event) String() string {
	switch e {
	case EventToggleWindow:
		return "ToggleWindow"
	case EventShowWindow:
		return "ShowWindow"
	case EventHideWindow:
		return "HideWindow"
	case EventQuitRequested:
		return "QuitRequested"
	default:
		return "Unknown"
	}
}

// Handle owns the event channel. One handle per application lifetime.
type Handle struct {
	events chan Event
}

// Listen starts the emitter: SIGUSR1 becomes ToggleWindow. The channel
// closes when ctx is cancelled.
func Listen(ctx context.Context) *Handle {
	h := &Handle{events: make(chan Event, 8)}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGUSR1)

	go func() {
		defer signal.Stop(sigs)
		defer close(h.events)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigs:
				h.emit(EventToggleWindow)
			}
		}
	}()

	return h
}

// Events exposes the receive side of the event channel.
func (h *Handle) Events() <-chan Event {
	return h.events
}

// RequestClose asks the application to quit. Best effort: if the channel is
// full or no longer drained, the event is dropped.
func (h *Handle) RequestClose() {
	h.emit(EventQuitRequested)
}

func (h *Handle) emit(e Event) {
	defer func() {
		// A racing close while the app shuts down is not an error.
		_ = recover()
	}()
	select {
	case h.events <- e:
	default:
	}
}
