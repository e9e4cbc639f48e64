// Package screens supplies the content mounted for each route. The social
// data behind the screens is out of scope; every screen renders a static
// page with the links a real screen would offer so the shell can be driven
// end to end.
package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/skyshell/pkg/app"
	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
	"gitlab.com/tinyland/lab/skyshell/pkg/theme"
)

// Screen is a mounted route. Instances keep their own scroll and selection
// so a cached screen looks the same when it becomes visible again.
type Screen interface {
	Title() string
	Target() routes.Target
	View(width, height int) string
	HandleKey(msg tea.KeyMsg) tea.Cmd
}

// Link is a navigable line on a page.
type Link struct {
	Label  string
	Target routes.Target
}

// Page is the Screen implementation used for every route.
type Page struct {
	target routes.Target
	title  string
	body   []string
	links  []Link
	styles theme.Styles

	offset   int // first visible line
	selected int // index into links, -1 when there are none
	height   int // last rendered height, used for paging
}

// New builds the screen for t. title is the route title shown by the shell.
func New(t routes.Target, title string, styles theme.Styles) *Page {
	c := content(t)
	p := &Page{target: t, title: title, body: c.body, links: c.links, styles: styles, selected: -1}
	if len(c.links) > 0 {
		p.selected = 0
	}
	return p
}

// Title returns the screen title.
func (p *Page) Title() string { return p.title }

// Target returns the route the screen was built for.
func (p *Page) Target() routes.Target { return p.target }

// Links returns the links on the page.
func (p *Page) Links() []Link { return append([]Link(nil), p.links...) }

// Selected returns the selected link index, or -1.
func (p *Page) Selected() int { return p.selected }

// Offset returns the scroll offset.
func (p *Page) Offset() int { return p.offset }

// lines returns the full page, one entry per terminal line.
func (p *Page) lines() []string {
	out := make([]string, 0, len(p.body)+len(p.links)+3)
	out = append(out, p.styles.ScreenTitle.Render(p.title), "")
	for _, l := range p.body {
		out = append(out, p.styles.Body.Render(l))
	}
	if len(p.links) > 0 {
		out = append(out, "")
	}
	for i, l := range p.links {
		if i == p.selected {
			out = append(out, p.styles.LinkSelected.Render("› "+l.Label))
			continue
		}
		out = append(out, "  "+p.styles.Link.Render(l.Label))
	}
	return out
}

// linkLine returns the line index of link i.
func (p *Page) linkLine(i int) int {
	return 2 + len(p.body) + 1 + i
}

// View renders the visible window of the page at width x height.
func (p *Page) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	p.height = height

	all := p.lines()
	p.clampOffset(len(all))
	end := min(p.offset+height, len(all))

	lines := make([]string, 0, height)
	for _, l := range all[p.offset:end] {
		lines = append(lines, ansi.Truncate(l, width, "…"))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (p *Page) clampOffset(total int) {
	maxOffset := max(total-max(p.height, 1), 0)
	p.offset = min(max(p.offset, 0), maxOffset)
}

// HandleKey moves the link selection and scrolls. Enter follows the
// selected link; "o" opens it in a new tab.
func (p *Page) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		p.selectLink(p.selected - 1)
	case "down", "j":
		p.selectLink(p.selected + 1)
	case "pgup":
		p.offset -= max(p.height-1, 1)
	case "pgdown":
		p.offset += max(p.height-1, 1)
	case "home", "g":
		p.selectLink(0)
		p.offset = 0
	case "end", "G":
		p.selectLink(len(p.links) - 1)
		p.offset = len(p.lines())
	case "enter":
		if t, ok := p.selectedTarget(); ok {
			return app.NavigateCmd(t)
		}
	case "o":
		if t, ok := p.selectedTarget(); ok {
			return app.OpenInNewTabCmd(t)
		}
	}
	p.clampOffset(len(p.lines()))
	return nil
}

func (p *Page) selectedTarget() (routes.Target, bool) {
	if p.selected < 0 || p.selected >= len(p.links) {
		return nil, false
	}
	return p.links[p.selected].Target, true
}

// selectLink moves the selection to i, clamped, and scrolls it into view.
func (p *Page) selectLink(i int) {
	if len(p.links) == 0 {
		return
	}
	p.selected = min(max(i, 0), len(p.links)-1)
	line := p.linkLine(p.selected)
	if p.height > 0 {
		if line < p.offset {
			p.offset = line
		} else if line >= p.offset+p.height {
			p.offset = line - p.height + 1
		}
	}
}

func profileLinks(handles ...string) []Link {
	links := make([]Link, len(handles))
	for i, h := range handles {
		links[i] = Link{Label: "@" + h, Target: routes.Profile{Handle: h}}
	}
	return links
}

// pageContent is the static part of a page.
type pageContent struct {
	body  []string
	links []Link
}

// content returns the static body and links for t.
func content(t routes.Target) pageContent {
	switch t := t.(type) {
	case routes.Home:
		return pageContent{
			body: []string{"Posts from people you follow appear here."},
			links: []Link{
				{Label: "alice.test: shipping the new shell today", Target: routes.PostThread{Handle: "alice.test", Rkey: "3k2a"}},
				{Label: "bob.test: anyone up for a walk?", Target: routes.PostThread{Handle: "bob.test", Rkey: "3k2b"}},
				{Label: "@carol.test", Target: routes.Profile{Handle: "carol.test"}},
				{Label: "Settings", Target: routes.Settings{}},
			},
		}
	case routes.Search:
		return pageContent{
			body:  []string{"Suggested follows"},
			links: profileLinks("alice.test", "bob.test", "carol.test"),
		}
	case routes.Notifications:
		return pageContent{
			body: []string{"alice.test upvoted your post", "bob.test followed you"},
			links: []Link{
				{Label: "View post", Target: routes.PostThread{Handle: "me.test", Rkey: "3k1z"}},
				{Label: "@bob.test", Target: routes.Profile{Handle: "bob.test"}},
			},
		}
	case routes.Settings:
		return pageContent{
			body: []string{"Account, appearance and diagnostics."},
			links: []Link{
				{Label: "Debug", Target: routes.Debug{}},
				{Label: "Log", Target: routes.Log{}},
				{Label: "Support", Target: routes.Support{}},
				{Label: "Privacy Policy", Target: routes.PrivacyPolicy{}},
			},
		}
	case routes.Profile:
		return pageContent{
			body: []string{fmt.Sprintf("Profile of @%s", t.Handle)},
			links: []Link{
				{Label: "Followers", Target: routes.ProfileFollowers{Handle: t.Handle}},
				{Label: "Following", Target: routes.ProfileFollows{Handle: t.Handle}},
				{Label: "Latest post", Target: routes.PostThread{Handle: t.Handle, Rkey: "3k2a"}},
			},
		}
	case routes.ProfileFollowers:
		return pageContent{
			body:  []string{fmt.Sprintf("People following @%s", t.Handle)},
			links: profileLinks("dave.test", "erin.test"),
		}
	case routes.ProfileFollows:
		return pageContent{
			body:  []string{fmt.Sprintf("People @%s follows", t.Handle)},
			links: profileLinks("frank.test", "grace.test"),
		}
	case routes.PostThread:
		return pageContent{
			body: []string{fmt.Sprintf("Thread %s by @%s", t.Rkey, t.Handle)},
			links: []Link{
				{Label: "@" + t.Handle, Target: routes.Profile{Handle: t.Handle}},
				{Label: "Upvoted by", Target: routes.PostUpvotedBy{Handle: t.Handle, Rkey: t.Rkey}},
				{Label: "Reposted by", Target: routes.PostRepostedBy{Handle: t.Handle, Rkey: t.Rkey}},
			},
		}
	case routes.PostUpvotedBy:
		return pageContent{
			body:  []string{fmt.Sprintf("Upvotes on %s", t.Rkey)},
			links: profileLinks("alice.test", "heidi.test"),
		}
	case routes.PostRepostedBy:
		return pageContent{
			body:  []string{fmt.Sprintf("Reposts of %s", t.Rkey)},
			links: profileLinks("ivan.test"),
		}
	case routes.Debug:
		return pageContent{
			body:  []string{"Build and navigation diagnostics."},
			links: []Link{{Label: "Log", Target: routes.Log{}}},
		}
	case routes.Log:
		return pageContent{body: []string{"Application log entries are written to the log file."}}
	case routes.Support:
		return pageContent{
			body:  []string{"Need help? Reach the team from here."},
			links: []Link{{Label: "Privacy Policy", Target: routes.PrivacyPolicy{}}},
		}
	case routes.PrivacyPolicy:
		return pageContent{body: []string{"We collect only what the service needs to work."}}
	case routes.NotFound:
		return pageContent{
			body:  []string{fmt.Sprintf("Nothing lives at %s.", t.Path)},
			links: []Link{{Label: "Go home", Target: routes.Home{}}},
		}
	}
	return pageContent{}
}
