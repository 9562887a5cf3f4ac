package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.PageNav/internal/clipboard"
	"github.com/LISSConsulting/LISSTech.PageNav/internal/config"
	"github.com/LISSConsulting/LISSTech.PageNav/internal/logging"
	"github.com/LISSConsulting/LISSTech.PageNav/internal/tui"
)

// runFlags are the root command's flags.
type runFlags struct {
	configPath string
	noMouse    bool
	logFile    string
}

// execute loads config, opens the log and runs the TUI until the user quits
// or a signal arrives.
func execute(flags runFlags) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	logger.Info("starting pagenav",
		"version", version,
		"tabs", len(cfg.Tabs.Initial),
		"mouse", cfg.TUI.Mouse,
		"drag_threshold", cfg.Drag.Threshold,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := tui.New(modelOptions(cfg, systemClipboard(cfg), logger))
	program := tea.NewProgram(model, programOptions(ctx, cfg)...)

	err = finishTUI(program)
	logger.Info("pagenav exited", "err", err)
	return err
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(flags runFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.noMouse {
		cfg.TUI.Mouse = false
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	return cfg, nil
}

func modelOptions(cfg *config.Config, clip clipboard.Writer, logger *slog.Logger) tui.Options {
	return tui.Options{
		Labels:        cfg.Tabs.Initial,
		Placeholder:   cfg.Tabs.Placeholder,
		CopySuffix:    cfg.Tabs.CopySuffix,
		DragThreshold: cfg.Drag.Threshold,
		AccentColor:   cfg.TUI.AccentColor,
		Clipboard:     clip,
		Logger:        logger,
	}
}

// systemClipboard writes OSC52 sequences to stderr; stdout belongs to the
// bubbletea renderer.
func systemClipboard(cfg *config.Config) clipboard.System {
	return clipboard.System{OSC52: cfg.Clipboard.OSC52, Term: os.Stderr, Env: os.Getenv}
}

func programOptions(ctx context.Context, cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.TUI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	return opts
}

// finishTUI runs the bubbletea program. Cancellation by signal counts as a
// normal exit.
func finishTUI(program *tea.Program) error {
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
