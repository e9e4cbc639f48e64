package navstate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
)

// ErrInvalidLink is returned for links that are malformed or outside every
// registered prefix.
var ErrInvalidLink = errors.New("navstate: invalid link")

// DefaultPrefixes are the link prefixes the client answers to.
var DefaultPrefixes = []string{"bsky://", "https://bsky.app"}

// NormalizeLink reduces raw to a path. Paths starting with "/" pass through.
// Links under a custom scheme prefix such as "bsky://" keep what follows the
// prefix; links under an http(s) origin keep the URL path.
func NormalizeLink(raw string, prefixes []string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidLink)
	}
	if strings.HasPrefix(raw, "/") {
		return raw, nil
	}

	for _, p := range prefixes {
		if p == "" || !strings.HasPrefix(raw, p) {
			continue
		}
		rest := raw[len(p):]
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidLink, err)
		}
		if u.Scheme == "http" || u.Scheme == "https" {
			// Reject https://bsky.app.example.com style lookalikes.
			if rest != "" && !strings.ContainsAny(rest[:1], "/?#") {
				continue
			}
			if u.Path == "" {
				return "/", nil
			}
			return u.Path, nil
		}
		return "/" + strings.TrimPrefix(rest, "/"), nil
	}
	return "", fmt.Errorf("%w: %q is not under a known prefix", ErrInvalidLink, raw)
}

// Options configures a Navigator.
type Options struct {
	Mode     Mode
	Prefixes []string
	Logger   *slog.Logger
}

// Navigator is the navigation context handed to whoever needs to move the
// shell: link handlers, key bindings, the CLI. Every command is a no-op while
// the container is not ready.
type Navigator struct {
	router    *routes.Router
	container Container
	mode      Mode
	prefixes  []string
	logger    *slog.Logger
}

// NewNavigator wires router and container together.
func NewNavigator(router *routes.Router, container Container, opts Options) *Navigator {
	if opts.Mode == "" {
		opts.Mode = ModeTabbed
	}
	if opts.Prefixes == nil {
		opts.Prefixes = DefaultPrefixes
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Navigator{
		router:    router,
		container: container,
		mode:      opts.Mode,
		prefixes:  opts.Prefixes,
		logger:    opts.Logger,
	}
}

// Mode returns the layout mode the navigator dispatches for.
func (n *Navigator) Mode() Mode { return n.mode }

// NavigateTo shows the named route in the active section.
func (n *Navigator) NavigateTo(name routes.Name, params routes.Params) {
	if !n.container.Ready() {
		n.logger.Debug("navigate ignored, container not ready", "route", name)
		return
	}
	n.navigate(name, params, "")
}

// Navigate is NavigateTo for a typed target.
func (n *Navigator) Navigate(t routes.Target) {
	n.NavigateTo(t.Name(), t.Params())
}

func (n *Navigator) navigate(name routes.Name, params routes.Params, path string) {
	if path == "" {
		if p, err := n.router.Build(name, params); err == nil {
			path = p
		} else {
			n.logger.Debug("navigating to unbuildable route", "route", name, "error", err)
		}
	}
	n.container.Navigate(Leaf{Name: name, Params: params.Clone(), URL: path})
}

// ResetToRootTab activates section s at its root screen. In flat mode it
// navigates to the section's root instead.
func (n *Navigator) ResetToRootTab(s Section) {
	if !n.container.Ready() {
		n.logger.Debug("reset ignored, container not ready", "section", s)
		return
	}
	n.resetTo(s)
}

func (n *Navigator) resetTo(s Section) {
	if n.mode == ModeFlat {
		n.navigate(RootOf(s), routes.Params{}, "")
		return
	}
	n.container.SwitchSection(s)
	n.container.PopToTop()
}

// HandleLink normalizes an external URL and dispatches it. Invalid links are
// logged and returned as ErrInvalidLink; links arriving before the container
// is ready are dropped.
//
// In tabbed mode a section root resets that section. Any other target resets
// to its own section first when that section is not active, then navigates.
func (n *Navigator) HandleLink(raw string) error {
	path, err := NormalizeLink(raw, n.prefixes)
	if err != nil {
		n.logger.Warn("dropping link", "url", raw, "error", err)
		return err
	}
	if !n.container.Ready() {
		n.logger.Debug("link ignored, container not ready", "url", raw)
		return nil
	}

	name, params := n.router.MatchPath(path)
	n.logger.Info("handling link", "url", raw, "route", name)

	if n.mode == ModeFlat {
		n.navigate(name, params, routes.CleanPath(path))
		return nil
	}

	section := SectionFor(name)
	if name == RootOf(section) {
		n.resetTo(section)
		return nil
	}
	if n.container.ActiveSection() != section {
		n.resetTo(section)
	}
	n.navigate(name, params, routes.CleanPath(path))
	return nil
}
