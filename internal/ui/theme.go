package ui

import (
	"github.com/charmbracelet/lipgloss"

	"lumberjack/internal/view"
)

// Theme defines the colors for the UI.
type Theme struct {
	Name string

	Text      string
	Muted     string
	Accent    string
	Header    string
	Success   string
	Warning   string
	Danger    string
	Border    string
	EntryMeta string
}

// Dark is the stock theme.
var Dark = Theme{
	Name:      "Dark",
	Text:      "#FFFFFF",
	Muted:     "#626262",
	Accent:    "#7D56F4",
	Header:    "#BD93F9",
	Success:   "#90EE90",
	Warning:   "#FFFF00",
	Danger:    "#FF0000",
	Border:    "#444444",
	EntryMeta: "#87CEFA",
}

// Light inverts the text palette for light terminals.
var Light = Theme{
	Name:      "Light",
	Text:      "#1A1A1A",
	Muted:     "#8A8A8A",
	Accent:    "#5F3DC4",
	Header:    "#5F3DC4",
	Success:   "#2B8A3E",
	Warning:   "#E67700",
	Danger:    "#C92A2A",
	Border:    "#CCCCCC",
	EntryMeta: "#1971C2",
}

// RetroGreen is the phosphor terminal look carried over from the desktop
// ancestor of this program.
var RetroGreen = Theme{
	Name:      "RetroGreen",
	Text:      "#00FF66",
	Muted:     "#006622",
	Accent:    "#00FF66",
	Header:    "#00FF66",
	Success:   "#00FF66",
	Warning:   "#FFFF80",
	Danger:    "#FF4040",
	Border:    "#004400",
	EntryMeta: "#00CC44",
}

var themes = []Theme{Dark, Light, RetroGreen}

// ThemeByName resolves a persisted theme name, defaulting to Dark.
func ThemeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return Dark
}

// Next cycles Dark -> Light -> RetroGreen -> Dark.
func (t Theme) Next() Theme {
	for i, candidate := range themes {
		if candidate.Name == t.Name {
			return themes[(i+1)%len(themes)]
		}
	}
	return Dark
}

// Styles is the lipgloss style set derived from a theme.
type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	Muted      lipgloss.Style
	Focused    lipgloss.Style
	EntryMeta  lipgloss.Style
	LevelError lipgloss.Style
	LevelWarn  lipgloss.Style
	LevelInfo  lipgloss.Style
	LevelNone  lipgloss.Style
	StatusErr  lipgloss.Style
	StatusOK   lipgloss.Style
	Hint       lipgloss.Style
}

// Styles builds the style set for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Header)),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		EntryMeta: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.EntryMeta)),

		LevelError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),

		LevelWarn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		LevelInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		LevelNone: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		StatusErr: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		StatusOK: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Italic(true),
	}
}

func (s Styles) levelStyle(lvl view.Level) lipgloss.Style {
	switch lvl {
	case view.LevelError:
		return s.LevelError
	case view.LevelWarn:
		return s.LevelWarn
	case view.LevelInfo:
		return s.LevelInfo
	default:
		return s.LevelNone
	}
}
