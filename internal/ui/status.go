package ui

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// maxStatusErrorRunes bounds how much of an error lands in the status bar.
const maxStatusErrorRunes = 61

var authExpiryMarkers = []string{
	"ExpiredTokenException",
	"The security token included in the request is expired",
}

// computeStatus returns the status text and whether it represents an error.
func (m Model) computeStatus() (string, bool) {
	switch {
	case m.fetching:
		return "Fetching logs…", false
	case m.loadingGroups:
		return "Loading log groups…", false
	case m.lastErr != "":
		return truncateError(m.lastErr), true
	case m.lastInfo != "":
		return m.lastInfo, false
	default:
		return "Ready", false
	}
}

func truncateError(err string) string {
	runes := []rune(err)
	if len(runes) > maxStatusErrorRunes {
		return "Error: " + string(runes[:maxStatusErrorRunes-3]) + "…"
	}
	return "Error: " + err
}

// authExpiryHint reports whether the error looks like expired AWS
// credentials, which deserves a friendlier pointer than the raw message.
func authExpiryHint(err string) bool {
	for _, marker := range authExpiryMarkers {
		if strings.Contains(err, marker) {
			return true
		}
	}
	return false
}

func (m Model) renderStatusBar() string {
	status, isErr := m.computeStatus()

	var parts []string
	if m.fetching || m.loadingGroups {
		parts = append(parts, m.spin.View())
	}
	if isErr {
		parts = append(parts, m.styles.StatusErr.Render(status))
		if authExpiryHint(m.lastErr) {
			parts = append(parts, m.styles.Hint.Render("Hint: AWS credentials expired. Re-run your AWS login."))
		}
	} else {
		parts = append(parts, m.styles.StatusOK.Render(status))
	}

	tail := "Tail: OFF"
	if m.state.TailMode {
		tail = "Tail: ON"
	}
	parts = append(parts, m.styles.Muted.Render(tail))

	if !m.state.LastFetchAt.IsZero() {
		parts = append(parts, m.styles.Muted.Render("updated "+humanize.Time(m.state.LastFetchAt)))
	}

	return strings.Join(parts, "  •  ")
}
