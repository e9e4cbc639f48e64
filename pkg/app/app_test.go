package app

import (
	"testing"
	"time"

	"gitlab.com/tinyland/lab/skyshell/pkg/routes"
)

func TestWaitForLinkDeliversURL(t *testing.T) {
	ch := make(chan string, 1)
	ch <- "bsky://profile/alice.test"

	msg := WaitForLink(ch)()
	ev, ok := msg.(LinkEvent)
	if !ok {
		t.Fatalf("expected LinkEvent, got %T", msg)
	}
	if ev.URL != "bsky://profile/alice.test" {
		t.Errorf("expected URL to round trip, got %q", ev.URL)
	}
	if ev.Received.IsZero() {
		t.Error("expected Received to be set")
	}
}

func TestWaitForLinkClosedChannel(t *testing.T) {
	ch := make(chan string)
	close(ch)

	if _, ok := WaitForLink(ch)().(LinkSourceClosedEvent); !ok {
		t.Error("expected LinkSourceClosedEvent for a closed channel")
	}
}

func TestWaitForLinkNilChannel(t *testing.T) {
	if WaitForLink(nil) != nil {
		t.Error("expected nil Cmd for a nil channel")
	}
}

func TestClearStatusCmdCarriesSeq(t *testing.T) {
	msg := ClearStatusCmd(7, time.Millisecond)()
	ev, ok := msg.(ClearStatusEvent)
	if !ok {
		t.Fatalf("expected ClearStatusEvent, got %T", msg)
	}
	if ev.Seq != 7 {
		t.Errorf("expected seq 7, got %d", ev.Seq)
	}
}

func TestNavigateCmds(t *testing.T) {
	target := routes.Profile{Handle: "alice.test"}

	ev, ok := NavigateCmd(target)().(NavigateEvent)
	if !ok || ev.Target != target || ev.NewTab {
		t.Errorf("NavigateCmd produced %#v", ev)
	}
	ev, ok = OpenInNewTabCmd(target)().(NavigateEvent)
	if !ok || !ev.NewTab {
		t.Errorf("OpenInNewTabCmd produced %#v", ev)
	}
}

func TestStatusCmd(t *testing.T) {
	ev, ok := StatusCmd("saved", false)().(StatusEvent)
	if !ok || ev.Text != "saved" || ev.Error {
		t.Errorf("StatusCmd produced %#v", ev)
	}
}
