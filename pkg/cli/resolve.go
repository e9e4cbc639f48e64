package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/skyshell/pkg/navstate"
	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var outputFormats = []string{outputText, outputJSON, outputYAML}

// resolveResult is what resolve prints.
type resolveResult struct {
	Input string         `json:"input" yaml:"input"`
	Path  string         `json:"path" yaml:"path"`
	Route routes.Name    `json:"route" yaml:"route"`
	Title string         `json:"title" yaml:"title"`
	Built string         `json:"built" yaml:"built"`
	State navstate.State `json:"state" yaml:"state"`
}

func newResolveCmd() *cobra.Command {
	var (
		mode   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "resolve <url>",
		Short: "Show the route and navigation state for a path or link",
		Long: `Resolve a path or link against the route table without starting the shell.
Prints the matched route, its title, the path built back from the state and
the navigation state the shell would present.`,
		Example: `  skyshell resolve /profile/alice.test
  skyshell resolve bsky://notifications --mode flat
  skyshell resolve https://bsky.app/profile/alice.test/post/3k2a -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			if !slices.Contains(outputFormats, output) {
				return fmt.Errorf("unknown output format %q (want %s)", output, strings.Join(outputFormats, ", "))
			}
			m := cfg.Shell.NavMode()
			if mode != "" {
				parsed, err := navstate.ParseMode(mode)
				if err != nil {
					return err
				}
				m = parsed
			}

			res, err := resolve(routes.Default(), m, cfg.Linking.Prefixes, args[0])
			if err != nil {
				return err
			}
			return writeResolve(cmd.OutOrStdout(), output, res)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Navigation mode (tabbed|flat), default from config")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format (text|json|yaml)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return outputFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(navstate.ModeTabbed), string(navstate.ModeFlat)}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func resolve(r *routes.Router, mode navstate.Mode, prefixes []string, input string) (resolveResult, error) {
	path, err := navstate.NormalizeLink(input, prefixes)
	if err != nil {
		return resolveResult{}, err
	}
	path = routes.CleanPath(path)

	state := navstate.StateFromPath(r, mode, path)
	target := r.Resolve(path)
	return resolveResult{
		Input: input,
		Path:  path,
		Route: target.Name(),
		Title: r.Title(target),
		Built: navstate.PathFromState(r, state),
		State: state,
	}, nil
}

func writeResolve(w io.Writer, format string, res resolveResult) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "path:   %s\n", res.Path)
	fmt.Fprintf(w, "route:  %s\n", res.Route)
	fmt.Fprintf(w, "title:  %s\n", res.Title)
	fmt.Fprintf(w, "built:  %s\n", res.Built)
	fmt.Fprintf(w, "mode:   %s\n", res.State.Mode)
	for i, st := range res.State.Stacks {
		names := make([]string, len(st.Screens))
		for j, l := range st.Screens {
			names[j] = string(l.Name)
			if len(l.Params) > 0 {
				names[j] += formatParams(l.Params)
			}
		}
		marker := " "
		if i == res.State.Index {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s: %s\n", marker, st.Section, strings.Join(names, " > "))
	}
	return nil
}

func formatParams(p routes.Params) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + p[k]
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
