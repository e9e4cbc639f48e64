// Package app defines the bubbletea messages and commands that carry
// navigation requests and status updates into the skyshell update loop.
//
// Everything that wants to move the shell from outside the model, such as
// the link IPC server or a screen's link list, does it by sending one of
// these messages so the navigation core is only touched from Update.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
)

// LinkEvent carries a URL that arrived from outside the shell, for example
// through the link socket. It is dispatched through the navigator.
type LinkEvent struct {
	URL      string
	Received time.Time
}

// NavigateEvent asks the shell to show Target in the active tab.
type NavigateEvent struct {
	Target routes.Target
	// NewTab opens the target in a new background tab instead.
	NewTab bool
}

// StatusEvent shows a transient message in the bottom bar.
type StatusEvent struct {
	Text  string
	Error bool
}

// ClearStatusEvent removes the status message if it is still the one
// identified by Seq.
type ClearStatusEvent struct {
	Seq int
}

// LinkSourceClosedEvent is sent once the link channel is closed.
type LinkSourceClosedEvent struct{}
