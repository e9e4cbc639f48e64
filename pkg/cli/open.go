package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/skyshell/pkg/config"
	"gitlab.com/tinyland/lab/skyshell/pkg/linkipc"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Open a link in the running shell",
		Long: `Send a path or link to the shell listening on the link socket. The shell
routes it exactly like a link opened from outside the application.`,
		Example: `  skyshell open bsky://profile/alice.test
  skyshell open https://bsky.app/profile/alice.test/post/3k2a
  skyshell open /notifications`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			logger := stderrLogger(cmd.ErrOrStderr(), cfg)
			logger.Debug("forwarding link", "url", args[0], "socket", cfg.Linking.Socket)
			if err := forwardLink(cmd.Context(), cfg, args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "opened %s\n", args[0])
			return nil
		},
	}
}

// forwardLink hands url to the shell on the configured socket.
func forwardLink(ctx context.Context, cfg *config.Config, url string) error {
	if cfg.Linking.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Linking.Timeout.Duration)
		defer cancel()
	}

	err := linkipc.Send(ctx, cfg.Linking.Socket, url)
	if errors.Is(err, linkipc.ErrNoServer) {
		return fmt.Errorf("no shell is listening on %s (start one with \"skyshell run\"): %w", cfg.Linking.Socket, err)
	}
	return err
}
