package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"lumberjack/internal/cloudwatch"
	"lumberjack/internal/logging"
	"lumberjack/internal/prefs"
	"lumberjack/internal/tray"
	"lumberjack/internal/ui"
	"lumberjack/internal/worker"
)

// Options configure the lumberjack application.
type Options struct {
	PrefsPath string // empty uses default ~/.config/lumberjack/prefs.toml
	Version   string
}

// Run boots the lumberjack TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logger, closeLog := logging.New()
	defer closeLog()
	logger.Info().Str("version", opts.Version).Msg("starting")

	client := cloudwatch.NewClient(logger)
	bridge := worker.Start(ctx, client, logger)
	trayHandle := tray.Listen(ctx)

	model := ui.New(ui.Options{
		Bridge:  bridge,
		Prefs:   userPrefs,
		Log:     logger,
		Version: opts.Version,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())

	// Window-control events and context cancellation both land on the
	// program's message loop.
	go func() {
		for ev := range trayHandle.Events() {
			logger.Debug().Stringer("event", ev).Msg("tray event")
			program.Send(ui.TrayMsg{Event: ev})
		}
	}()
	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	if m, ok := finalModel.(ui.Model); ok {
		if err := prefs.Save(opts.PrefsPath, m.Prefs()); err != nil {
			logger.Warn().Err(err).Msg("save prefs failed")
		}
	}
	logger.Info().Msg("stopped")
	return nil
}
