package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
)

// WaitForLink returns a Cmd that blocks until a URL arrives on ch and
// delivers it as a LinkEvent. The model re-issues the command after each
// event to keep listening. A closed channel yields LinkSourceClosedEvent.
func WaitForLink(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		url, ok := <-ch
		if !ok {
			return LinkSourceClosedEvent{}
		}
		return LinkEvent{URL: url, Received: time.Now()}
	}
}

// ClearStatusCmd returns a Cmd that sends ClearStatusEvent for seq after d.
func ClearStatusCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusEvent{Seq: seq}
	})
}

// NavigateCmd returns a Cmd that requests navigation to t.
func NavigateCmd(t routes.Target) tea.Cmd {
	return func() tea.Msg {
		return NavigateEvent{Target: t}
	}
}

// OpenInNewTabCmd returns a Cmd that requests t in a new background tab.
func OpenInNewTabCmd(t routes.Target) tea.Cmd {
	return func() tea.Msg {
		return NavigateEvent{Target: t, NewTab: true}
	}
}

// StatusCmd returns a Cmd that shows text in the status line.
func StatusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return StatusEvent{Text: text, Error: isErr}
	}
}
