package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
	"gitlab.com/tinyland/lab/skyshell/pkg/theme"
)

func newRoutesCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the route table in match order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			r := routes.Default()
			if plain || !isTerminal(w) {
				return writeRoutesPlain(w, r)
			}
			cfg := configFrom(cmd.Context())
			_, err := fmt.Fprintln(w, routesTable(r, theme.Get(cfg.Theme.Name)))
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print name and pattern columns without styling")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeRoutesPlain(w io.Writer, r *routes.Router) error {
	for _, rt := range r.Routes() {
		if _, err := fmt.Fprintf(w, "%-20s %s\n", rt.Name, rt.Pattern); err != nil {
			return err
		}
	}
	return nil
}

func routesTable(r *routes.Router, th theme.Theme) string {
	header := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Accent)).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Foreground)).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(th.MenuBorder))).
		Headers("", "NAME", "PATTERN").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, rt := range r.Routes() {
		t.Row(rt.Icon, string(rt.Name), rt.Pattern)
	}
	return t.String()
}
