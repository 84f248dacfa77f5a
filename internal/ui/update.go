package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"lumberjack/internal/cloudwatch"
	"lumberjack/internal/tray"
	"lumberjack/internal/view"
	"lumberjack/internal/worker"
)

const groupRequiredMsg = "Please select a log group."
const workerGoneMsg = "Background worker unavailable."
const noGroupsMsg = "No log groups loaded. Press ctrl+l first."

// Update is the per-frame entry point of the application loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refreshLogView()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TrayMsg:
		switch msg.Event {
		case tray.EventQuitRequested:
			return m, tea.Quit
		case tray.EventToggleWindow:
			m.hidden = !m.hidden
		case tray.EventHideWindow:
			m.hidden = true
		case tray.EventShowWindow:
			m.hidden = false
		}
		return m, nil

	case tickMsg:
		m.pollPending()
		m.evalTail()
		return m, tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker {
		return m.handlePickerKey(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.cycleFocus(1)
		return m, nil

	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil

	case "enter":
		m.startFetch()
		m.refreshLogView()
		return m, nil

	case "ctrl+l":
		m.startLoadGroups()
		return m, nil

	case "ctrl+g":
		m.openPicker()
		return m, nil

	case "ctrl+n":
		m.cycleGroupSelection(1)
		return m, nil

	case "ctrl+p":
		m.cycleGroupSelection(-1)
		return m, nil

	case "ctrl+t":
		m.state.TailMode = !m.state.TailMode
		if !m.state.TailMode {
			// Re-enabling tail later should fire immediately.
			m.state.LastTailAt = time.Time{}
		}
		return m, nil

	case "ctrl+r":
		m.state.TimeRange = m.state.TimeRange.Next()
		return m, nil

	case "ctrl+o":
		m.state.ShowLocalTime = !m.state.ShowLocalTime
		m.refreshLogView()
		return m, nil

	case "ctrl+y":
		m.theme = m.theme.Next()
		m.styles = m.theme.Styles()
		m.refreshLogView()
		return m, nil

	case "ctrl+up":
		if m.state.TailIntervalSecs < 300 {
			m.state.TailIntervalSecs++
		}
		return m, nil

	case "ctrl+down":
		if m.state.TailIntervalSecs > 1 {
			m.state.TailIntervalSecs--
		}
		return m, nil
	}

	// Everything else belongs to the focused input or the log viewport.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	cmds = append(cmds, cmd)
	// The filter doubles as a live view filter, so edits re-render the log
	// viewport immediately.
	if m.focus == focusFilter && m.inputs[focusFilter].Value() != before {
		m.refreshLogView()
	}

	switch msg.String() {
	case "up", "down", "pgup", "pgdown", "home", "end":
		m.logs, cmd = m.logs.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// pollPending is the non-blocking poll step: it merges any completed
// background result into the state and otherwise leaves everything as is.
func (m *Model) pollPending() {
	if m.fetchPending != nil {
		select {
		case res := <-m.fetchPending:
			if res.Err != nil {
				m.lastErr = res.Err.Error()
			} else {
				m.state.Entries = res.Entries
				m.state.LastFetchAt = m.now()
				m.lastErr = ""
				m.refreshLogView()
			}
			m.fetching = false
			m.fetchPending = nil
		default:
			if m.workerGone() {
				m.fetching = false
				m.fetchPending = nil
				m.lastInfo = workerGoneMsg
				m.log.Warn().Msg("fetch abandoned: worker bridge is gone")
			}
		}
	}

	if m.groupsPending != nil {
		select {
		case res := <-m.groupsPending:
			if res.Err != nil {
				// The list itself is only cleared at request start,
				// never by the failure path.
				m.lastErr = res.Err.Error()
			} else {
				m.state.AvailableGroups = res.Groups
				m.state.SelectedGroup = view.ClampSelection(m.state.SelectedGroup, len(res.Groups))
				m.lastErr = ""
			}
			m.loadingGroups = false
			m.groupsPending = nil
		default:
			if m.workerGone() {
				m.loadingGroups = false
				m.groupsPending = nil
				m.lastInfo = workerGoneMsg
				m.log.Warn().Msg("group list abandoned: worker bridge is gone")
			}
		}
	}
}

// workerGone reports whether the bridge's dispatch loop has exited, in
// which case no pending reply will ever be filled.
func (m *Model) workerGone() bool {
	if m.bridge == nil {
		return true
	}
	select {
	case <-m.bridge.Done():
		return true
	default:
		return false
	}
}

// evalTail re-issues the fetch when tail mode is due. Disabling tail resets
// the trigger marker so re-enabling fires immediately.
func (m *Model) evalTail() {
	if !m.state.TailMode {
		m.state.LastTailAt = time.Time{}
		return
	}
	if m.fetching {
		return
	}
	due := m.state.LastTailAt.IsZero() ||
		m.now().Sub(m.state.LastTailAt) >= m.state.TailInterval()
	if due {
		m.startFetch()
		m.state.LastTailAt = m.now()
	}
}

// startFetch validates inputs and hands a fetch request to the worker.
// A second attempt while one is outstanding is a silent no-op.
func (m *Model) startFetch() {
	if m.fetching {
		return
	}

	m.syncInputs()

	group := strings.TrimSpace(m.state.LogGroup)
	if group == "" {
		m.lastErr = groupRequiredMsg
		return
	}
	m.state.LogGroup = group
	m.inputs[focusGroup].SetValue(group)

	m.fetching = true
	m.lastErr = ""
	m.lastInfo = ""

	send, recv := worker.NewFetchReply()
	m.bridge.Send(worker.FetchRequest{
		Params: cloudwatch.FetchParams{
			Profile:       strings.TrimSpace(m.state.Profile),
			Region:        strings.TrimSpace(m.state.Region),
			LogGroup:      group,
			FilterPattern: strings.TrimSpace(m.state.FilterText),
			Lookback:      m.state.TimeRange.Lookback(),
			Limit:         fetchLimit,
		},
		Reply: send,
	})
	m.fetchPending = recv
}

// startLoadGroups clears the current list optimistically and asks the
// worker for a fresh one.
func (m *Model) startLoadGroups() {
	if m.loadingGroups {
		return
	}

	m.syncInputs()

	m.state.AvailableGroups = nil
	m.state.SelectedGroup = view.NoSelection
	m.lastErr = ""
	m.lastInfo = ""
	m.loadingGroups = true

	send, recv := worker.NewListGroupsReply()
	m.bridge.Send(worker.ListGroupsRequest{
		Params: cloudwatch.ListGroupsParams{
			Profile: strings.TrimSpace(m.state.Profile),
			Region:  strings.TrimSpace(m.state.Region),
			Limit:   groupListLimit,
		},
		Reply: send,
	})
	m.groupsPending = recv
}

// openPicker shows the group chooser over the log viewport, seeded at the
// current selection.
func (m *Model) openPicker() {
	if len(m.state.AvailableGroups) == 0 {
		m.lastInfo = noGroupsMsg
		return
	}
	m.picker = true
	m.pickerIndex = m.state.SelectedGroup
	if m.pickerIndex == view.NoSelection {
		m.pickerIndex = 0
	}
}

// handlePickerKey owns every key while the group chooser is open; nothing
// leaks through to the text inputs.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.state.AvailableGroups)
	if n == 0 {
		// The list was refreshed away underneath the chooser.
		m.picker = false
		return m, nil
	}
	if m.pickerIndex >= n {
		m.pickerIndex = 0
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "ctrl+g", "q":
		m.picker = false
	case "up", "k", "ctrl+p":
		m.pickerIndex = (m.pickerIndex - 1 + n) % n
	case "down", "j", "ctrl+n":
		m.pickerIndex = (m.pickerIndex + 1) % n
	case "enter":
		m.state.SelectedGroup = m.pickerIndex
		m.state.LogGroup = m.state.AvailableGroups[m.pickerIndex]
		m.inputs[focusGroup].SetValue(m.state.LogGroup)
		m.picker = false
	}
	return m, nil
}

// cycleGroupSelection walks the loaded group list and mirrors the choice
// into the group input.
func (m *Model) cycleGroupSelection(delta int) {
	n := len(m.state.AvailableGroups)
	if n == 0 {
		return
	}
	idx := m.state.SelectedGroup + delta
	switch {
	case m.state.SelectedGroup == view.NoSelection && delta > 0:
		idx = 0
	case m.state.SelectedGroup == view.NoSelection && delta < 0:
		idx = n - 1
	case idx < 0:
		idx = n - 1
	case idx >= n:
		idx = 0
	}
	m.state.SelectedGroup = idx
	m.state.LogGroup = m.state.AvailableGroups[idx]
	m.inputs[focusGroup].SetValue(m.state.LogGroup)
}

func (m *Model) cycleFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = focusField((int(m.focus) + delta + int(focusFieldCount)) % int(focusFieldCount))
	m.inputs[m.focus].Focus()
}

// syncInputs copies the live input values into the state record.
func (m *Model) syncInputs() {
	m.state.Profile = m.inputs[focusProfile].Value()
	m.state.Region = m.inputs[focusRegion].Value()
	m.state.LogGroup = m.inputs[focusGroup].Value()
	m.state.FilterText = m.inputs[focusFilter].Value()
}
