package linkipc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// recorder collects links in arrival order.
type recorder struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func (r *recorder) OpenLink(url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.urls = append(r.urls, url)
	return nil
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

func startServer(t *testing.T, h Handler) (*Server, string) {
	t.Helper()
	sock := filepath.Join(t.TempDir(), "l.sock")
	s := NewServer(sock, h, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	t.Cleanup(s.Stop)
	return s, sock
}

func testCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSendDeliversURL(t *testing.T) {
	rec := &recorder{}
	_, sock := startServer(t, rec)

	for _, u := range []string{"bsky://profile/alice.test", "https://bsky.app/notifications"} {
		if err := Send(testCtx(t), sock, u); err != nil {
			t.Fatalf("Send(%q) error: %v", u, err)
		}
	}

	got := rec.got()
	if len(got) != 2 || got[0] != "bsky://profile/alice.test" || got[1] != "https://bsky.app/notifications" {
		t.Errorf("unexpected links %v", got)
	}
}

func TestPing(t *testing.T) {
	_, sock := startServer(t, &recorder{})
	if err := Ping(testCtx(t), sock); err != nil {
		t.Errorf("Ping() error: %v", err)
	}
}

func TestSendWithoutServer(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "none.sock")
	err := Send(testCtx(t), sock, "/search")
	if !errors.Is(err, ErrNoServer) {
		t.Errorf("expected ErrNoServer, got %v", err)
	}
}

func TestHandlerErrorIsReported(t *testing.T) {
	_, sock := startServer(t, &recorder{err: errors.New("not ready")})
	err := Send(testCtx(t), sock, "/search")
	if !errors.Is(err, ErrRejected) {
		t.Errorf("expected ErrRejected, got %v", err)
	}
}

func TestSendRejectsLineBreaks(t *testing.T) {
	if err := Send(testCtx(t), "/unused", "/search\nPING"); !errors.Is(err, ErrRejected) {
		t.Errorf("expected ErrRejected, got %v", err)
	}
}

func TestChannelHandlerBusy(t *testing.T) {
	ch := make(chan string, 1)
	h := ChannelHandler(ch)

	if err := h.OpenLink("/a"); err != nil {
		t.Fatalf("first OpenLink error: %v", err)
	}
	if err := h.OpenLink("/b"); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy on a full channel, got %v", err)
	}
	if got := <-ch; got != "/a" {
		t.Errorf("expected /a, got %q", got)
	}
}

func TestStartRefusesLiveSocket(t *testing.T) {
	_, sock := startServer(t, &recorder{})

	second := NewServer(sock, &recorder{}, nil)
	if err := second.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestAcceptLoopExitsWhenListenerCloses(t *testing.T) {
	s, _ := startServer(t, &recorder{})

	// Close the listener without Stop so done stays open.
	s.listener.Close()

	exited := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(exited)
	}()
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("accept loop kept running after the listener closed")
	}
}

func TestStartReplacesStaleSocket(t *testing.T) {
	sock := filepath.Join(t.TempDir(), "l.sock")
	if err := os.WriteFile(sock, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewServer(sock, &recorder{}, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("Start() over a stale file: %v", err)
	}
	s.Stop()
	s.Stop()

	if _, err := os.Stat(sock); !os.IsNotExist(err) {
		t.Error("Stop should remove the socket file")
	}
}

func TestDispatch(t *testing.T) {
	s := NewServer("", &recorder{}, nil)

	tests := []struct {
		line   string
		wantOK bool
	}{
		{"PING", true},
		{"ping", true},
		{"OPEN /search", true},
		{"OPEN", false},
		{"REFRESH", false},
	}
	for _, tt := range tests {
		if got := s.dispatch(tt.line); got.OK != tt.wantOK {
			t.Errorf("dispatch(%q) = %+v, want ok=%v", tt.line, got, tt.wantOK)
		}
	}
}

func TestParseCommand(t *testing.T) {
	cmd, arg := parseCommand("  open   bsky://profile/alice.test ")
	if cmd != "OPEN" || arg != "bsky://profile/alice.test" {
		t.Errorf("parseCommand = %q, %q", cmd, arg)
	}
}
