// Package cli provides the skyshell command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/skyshell/pkg/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	Commit    = "dev"
	BuildDate = "unknown"
)

// configKey is used to store the loaded config in the command context.
type configKey struct{}

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "skyshell",
		Short: "Browser-style navigation shell for a social client",
		Long: `skyshell is a terminal shell with tabs, per-tab history and a route table
that maps paths and external links (bsky:// and https://bsky.app) onto screens.

Run "skyshell run" to start the shell and "skyshell open <url>" to send a
link to a running instance.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if opts.verbose {
				cfg.General.LogLevel = "debug"
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/skyshell/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newRoutesCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// configFrom retrieves the config from the command context.
func configFrom(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return config.DefaultConfig()
}

// openLogFile creates a text logger writing to the configured log file. The
// shell owns the terminal, so nothing is logged to stderr while it runs.
func openLogFile(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	path := cfg.General.LogFile
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: cfg.General.SlogLevel(),
	}))
	return logger, f, nil
}

// stderrLogger logs to w for the short-lived commands.
func stderrLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.General.SlogLevel(),
	}))
}
