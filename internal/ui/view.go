package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lumberjack/internal/view"
)

// layout recomputes widget sizes from the window dimensions.
func (m *Model) layout() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = 24
	}

	// Header (1) + two input rows (2) + toggles row (1) + status bar (1).
	logHeight := height - 5
	if logHeight < 3 {
		logHeight = 3
	}
	m.logs.Width = width
	m.logs.Height = logHeight
}

// refreshLogView re-renders the entry list into the viewport.
func (m *Model) refreshLogView() {
	m.logs.SetContent(m.renderEntries())
}

// View renders the whole frame.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}
	if m.hidden {
		return m.styles.Muted.Render("lumberjack hidden - SIGUSR1 to restore")
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderInputs())
	b.WriteString("\n")
	b.WriteString(m.renderToggles())
	b.WriteString("\n")
	if m.picker {
		b.WriteString(m.renderPicker())
	} else {
		b.WriteString(m.logs.View())
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render("Lumberjack")
	sub := m.styles.Muted.Render(fmt.Sprintf("CloudWatch Logs  •  theme %s  •  v%s", m.theme.Name, m.version))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", sub)
}

func (m Model) renderInputs() string {
	label := func(f focusField, text string) string {
		if f == m.focus {
			return m.styles.Focused.Render(text)
		}
		return m.styles.Label.Render(text)
	}

	row1 := lipgloss.JoinHorizontal(lipgloss.Center,
		label(focusProfile, "Profile:"), " ", m.inputs[focusProfile].View(), "  ",
		label(focusRegion, "Region:"), " ", m.inputs[focusRegion].View(),
	)
	row2 := lipgloss.JoinHorizontal(lipgloss.Center,
		label(focusGroup, "Group:"), " ", m.inputs[focusGroup].View(), "  ",
		label(focusFilter, "Filter:"), " ", m.inputs[focusFilter].View(),
	)
	return row1 + "\n" + row2
}

func (m Model) renderToggles() string {
	parts := []string{
		fmt.Sprintf("range %s", m.state.TimeRange),
		fmt.Sprintf("tail every %ds", m.state.TailIntervalSecs),
	}
	if m.state.ShowLocalTime {
		parts = append(parts, "local time")
	} else {
		parts = append(parts, "UTC")
	}
	if n := len(m.state.AvailableGroups); n > 0 {
		parts = append(parts, fmt.Sprintf("%d groups loaded", n))
	}
	help := "tab focus  enter fetch  ^L groups  ^G pick  ^N/^P cycle  ^T tail  ^R range  ^O tz  ^Y theme  ^C quit"
	return m.styles.Muted.Render(strings.Join(parts, "  •  ") + "   " + help)
}

// renderPicker draws the group chooser in place of the log viewport,
// keeping the cursor row inside the visible window.
func (m Model) renderPicker() string {
	groups := m.state.AvailableGroups
	visible := m.logs.Height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.pickerIndex >= visible {
		start = m.pickerIndex - visible + 1
	}
	end := start + visible
	if end > len(groups) {
		end = len(groups)
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Choose a log group"))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render("up/down move  enter choose  esc cancel"))
	for i := start; i < end; i++ {
		b.WriteString("\n")
		if i == m.pickerIndex {
			b.WriteString(m.styles.Focused.Render("> " + groups[i]))
		} else {
			b.WriteString("  " + groups[i])
		}
	}
	return b.String()
}

// renderEntries formats the fetched entries. The filter text doubles as a
// client-side substring filter over the already-fetched list, same as it is
// a server-side pattern at fetch time.
func (m Model) renderEntries() string {
	if len(m.state.Entries) == 0 {
		return m.styles.Muted.Render("no log entries - pick a group and press enter")
	}

	needle := strings.ToLower(strings.TrimSpace(m.inputs[focusFilter].Value()))

	var b strings.Builder
	for _, entry := range m.state.Entries {
		if needle != "" && !strings.Contains(strings.ToLower(entry.Message), needle) {
			continue
		}

		ts := view.FormatTimestampMillis(entry.TimestampMillis, m.state.ShowLocalTime)
		header := "[" + ts + "]"
		if entry.LogStreamName != "" {
			header += " (" + entry.LogStreamName + ")"
		}
		b.WriteString(m.styles.EntryMeta.Render(header))
		b.WriteString("\n")

		style := m.styles.levelStyle(view.LevelOf(entry.Message))
		if pretty, ok := view.PrettyJSON(entry.Message); ok {
			b.WriteString(style.Render(pretty))
		} else {
			b.WriteString(style.Render(entry.Message))
		}
		b.WriteString("\n\n")
	}
	if b.Len() == 0 {
		return m.styles.Muted.Render("no entries match the filter")
	}
	return b.String()
}
