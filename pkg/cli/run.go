package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/skyshell/pkg/config"
	"gitlab.com/tinyland/lab/skyshell/pkg/linkipc"
	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
	"gitlab.com/tinyland/lab/skyshell/pkg/session"
	"gitlab.com/tinyland/lab/skyshell/pkg/shell"
	"gitlab.com/tinyland/lab/skyshell/pkg/tabs"
	"gitlab.com/tinyland/lab/skyshell/pkg/theme"
)

// linkBuffer is how many external links may queue while the shell is busy.
const linkBuffer = 16

// sessionSaveTimeout bounds the final session write.
const sessionSaveTimeout = 5 * time.Second

func newRunCmd() *cobra.Command {
	var noRestore bool

	cmd := &cobra.Command{
		Use:   "run [url]",
		Short: "Start the shell",
		Long: `Start the interactive shell. An optional path or link is opened once the
shell is up. When another shell already listens on the link socket the URL is
handed to it instead.`,
		Example: `  skyshell run
  skyshell run bsky://profile/alice.test
  skyshell run /notifications --no-restore`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			if noRestore {
				cfg.Shell.RestoreSession = false
			}
			var initial string
			if len(args) == 1 {
				initial = args[0]
			}
			return runShell(cmd.Context(), cfg, initial)
		},
	}
	cmd.Flags().BoolVar(&noRestore, "no-restore", false, "Start with a fresh tab instead of the saved session")
	return cmd
}

func runShell(ctx context.Context, cfg *config.Config, initialURL string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("run needs an interactive terminal")
	}

	logger, logFile, err := openLogFile(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	router := routes.Default()
	links := make(chan string, linkBuffer)

	if cfg.Linking.Listen {
		srv := linkipc.NewServer(cfg.Linking.Socket, linkipc.ChannelHandler(links), logger)
		switch err := srv.Start(); {
		case errors.Is(err, linkipc.ErrAlreadyRunning):
			if initialURL == "" {
				return fmt.Errorf("another shell is listening on %s", cfg.Linking.Socket)
			}
			return forwardLink(ctx, cfg, initialURL)
		case err != nil:
			logger.Warn("link socket unavailable", "error", err)
		default:
			defer srv.Stop()
		}
	}

	var store *session.Store
	if cfg.Shell.RestoreSession {
		store, err = session.Open(cfg.SessionPath())
		if err != nil {
			logger.Warn("session store unavailable", "error", err)
		} else {
			defer store.Close()
		}
	}

	model := shell.New(shell.Options{
		Router:     router,
		Tabs:       restoreTabs(ctx, store, router, cfg.Shell.Home, logger),
		Home:       cfg.Shell.Home,
		Mode:       cfg.Shell.NavMode(),
		Prefixes:   cfg.Linking.Prefixes,
		CacheSize:  cfg.Shell.CachedScreens,
		Theme:      loadTheme(cfg.Theme, logger),
		Mouse:      cfg.Shell.Mouse,
		Links:      links,
		InitialURL: initialURL,
		Logger:     logger,
	})

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Shell.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	logger.Info("starting shell", "mode", cfg.Shell.NavMode(), "theme", cfg.Theme.Name)
	final, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("shell exited: %w", err)
	}

	if m, ok := final.(shell.Model); ok && store != nil {
		saveCtx, cancel := context.WithTimeout(context.Background(), sessionSaveTimeout)
		defer cancel()
		if err := store.Save(saveCtx, m.Snapshot()); err != nil {
			logger.Error("failed to save session", "error", err)
		}
	}
	return nil
}

// loadTheme registers the configured theme file, if any, and returns the
// named theme, falling back to the default.
func loadTheme(tc config.ThemeConfig, logger *slog.Logger) theme.Theme {
	if tc.File != "" {
		if _, err := theme.LoadFile(tc.File); err != nil {
			logger.Warn("failed to load theme file", "path", tc.File, "error", err)
		}
	}
	t, ok := theme.Lookup(tc.Name)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", tc.Name)
		return theme.Default()
	}
	return t
}

// restoreTabs returns the saved collection, or nil for a fresh one.
func restoreTabs(ctx context.Context, store *session.Store, router *routes.Router, home string, logger *slog.Logger) *tabs.Collection {
	if store == nil {
		return nil
	}
	snap, ok, err := store.Load(ctx)
	if err != nil {
		logger.Warn("failed to load session", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	c, err := tabs.Restore(router, home, snap)
	if err != nil {
		logger.Warn("failed to restore tabs", "error", err)
		return nil
	}
	logger.Debug("restored session", "tabs", c.Len())
	return c
}
