package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"lumberjack/internal/prefs"
	"lumberjack/internal/tray"
	"lumberjack/internal/view"
	"lumberjack/internal/worker"
)

const (
	// fetchLimit is the event cap for a single fetch.
	fetchLimit = 1000
	// groupListLimit is the page size requested when listing groups.
	groupListLimit = 50
	// tickEvery drives the poll/tail cadence. One tick is one "frame" for
	// the purposes of merging background results.
	tickEvery = 250 * time.Millisecond
)

type focusField int

const (
	focusProfile focusField = iota
	focusRegion
	focusGroup
	focusFilter
	focusFieldCount
)

// Options configure the UI model.
type Options struct {
	Bridge  *worker.Bridge
	Prefs   prefs.Prefs
	Log     zerolog.Logger
	Version string
}

// Model is the bubbletea model for the logs screen. All mutation happens on
// the bubbletea event loop; background results arrive via the pending reply
// channels and are merged in during the periodic tick.
type Model struct {
	state  view.LogsState
	bridge *worker.Bridge
	log    zerolog.Logger

	// At most one of each pending handle exists at a time.
	fetchPending  <-chan worker.FetchResult
	groupsPending <-chan worker.ListGroupsResult
	fetching      bool
	loadingGroups bool

	lastErr  string
	lastInfo string

	theme   Theme
	styles  Styles
	hidden  bool
	version string

	// picker overlays the log viewport with the loaded group list.
	picker      bool
	pickerIndex int

	inputs [focusFieldCount]textinput.Model
	focus  focusField
	spin   spinner.Model
	logs   viewport.Model

	width  int
	height int
	ready  bool

	// now is a clock hook; tests substitute a fixed clock.
	now func() time.Time
}

// tickMsg drives one poll/tail pass.
type tickMsg time.Time

// TrayMsg carries a window-control event into the model. The app layer
// forwards these from the tray handle.
type TrayMsg struct {
	Event tray.Event
}

// New builds the model from persisted preferences.
func New(opts Options) Model {
	theme := ThemeByName(opts.Prefs.Theme)

	m := Model{
		state:   view.NewLogsState(),
		bridge:  opts.Bridge,
		log:     opts.Log,
		theme:   theme,
		styles:  theme.Styles(),
		version: opts.Version,
		now:     time.Now,
	}
	m.state.Profile = opts.Prefs.Profile
	m.state.Region = opts.Prefs.Region
	m.state.ShowLocalTime = opts.Prefs.LocalTime

	labels := [focusFieldCount]string{"profile", "region", "log group", "filter pattern"}
	widths := [focusFieldCount]int{16, 16, 40, 32}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.Prompt = ""
		ti.Width = widths[i]
		ti.CharLimit = 256
		m.inputs[i] = ti
	}
	m.inputs[focusProfile].SetValue(opts.Prefs.Profile)
	m.inputs[focusRegion].SetValue(opts.Prefs.Region)
	m.inputs[focusGroup].Focus()
	m.focus = focusGroup

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	m.logs = viewport.New(80, 20)

	return m
}

// Init starts the frame tick and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.spin.Tick)
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Prefs snapshots the preferences worth persisting on exit.
func (m Model) Prefs() prefs.Prefs {
	return prefs.Prefs{
		Theme:     m.theme.Name,
		Profile:   m.inputs[focusProfile].Value(),
		Region:    m.inputs[focusRegion].Value(),
		LocalTime: m.state.ShowLocalTime,
	}
}
