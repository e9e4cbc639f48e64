// Package linkipc is the external link source of skyshell: a Unix socket
// that accepts URLs from other processes (a desktop URL handler, another
// skyshell invocation) and hands them to the running shell.
package linkipc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"
	"sync"
	"time"
)

// acceptBackoff is the pause after a failed Accept before trying again.
const acceptBackoff = 50 * time.Millisecond

var (
	// ErrNoServer is returned by the client when nothing listens on the socket.
	ErrNoServer = errors.New("linkipc: no shell is listening")
	// ErrAlreadyRunning is returned by Start when a live server owns the socket.
	ErrAlreadyRunning = errors.New("linkipc: another shell owns the socket")
	// ErrBusy is returned when the shell cannot take more links right now.
	ErrBusy = errors.New("linkipc: shell is busy")
	// ErrRejected wraps errors reported by the server.
	ErrRejected = errors.New("linkipc: link rejected")
)

// Handler receives links from the socket. OpenLink is called from the
// connection goroutine and must not block on the UI.
type Handler interface {
	OpenLink(url string) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(url string) error

// OpenLink calls f.
func (f HandlerFunc) OpenLink(url string) error { return f(url) }

// ChannelHandler forwards links into ch without blocking. A full channel
// reports ErrBusy.
func ChannelHandler(ch chan<- string) Handler {
	return HandlerFunc(func(url string) error {
		select {
		case ch <- url:
			return nil
		default:
			return ErrBusy
		}
	})
}

// Response is the JSON line the server answers every command with.
type Response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Server listens on a Unix domain socket for line-based text commands
// and returns JSON responses.
//
// Protocol:
//   - Client sends a single line: COMMAND [argument]
//   - Server responds with a JSON line followed by a newline.
//   - Supported commands: OPEN {url}, PING
type Server struct {
	socketPath string
	handler    Handler
	logger     *slog.Logger
	listener   net.Listener
	wg         sync.WaitGroup
	done       chan struct{}
	stopOnce   sync.Once
}

// NewServer creates a server that will listen on socketPath and pass links
// to handler. A nil logger discards.
func NewServer(socketPath string, handler Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		socketPath: socketPath,
		handler:    handler,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// Start begins listening for connections on the Unix socket. The socket file
// is created with mode 0600. A stale socket file is removed first; a socket
// that still answers is left alone and ErrAlreadyRunning returned.
func (s *Server) Start() error {
	if conn, err := net.DialTimeout("unix", s.socketPath, 200*time.Millisecond); err == nil {
		conn.Close()
		return fmt.Errorf("%w: %s", ErrAlreadyRunning, s.socketPath)
	}
	os.Remove(s.socketPath)

	ln, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.socketPath, err)
	}

	if err := os.Chmod(s.socketPath, 0o600); err != nil {
		ln.Close()
		return fmt.Errorf("chmod socket: %w", err)
	}

	s.listener = ln
	s.logger.Info("link socket listening", "path", s.socketPath)

	s.wg.Add(1)
	go s.acceptLoop()

	return nil
}

// Stop closes the listener, waits for active connections to finish and
// removes the socket file. It is safe to call more than once.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		if s.listener != nil {
			s.listener.Close()
		}
		s.wg.Wait()
		if s.listener != nil {
			os.Remove(s.socketPath)
		}
	})
}

// acceptLoop accepts connections until the server is stopped.
func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Debug("accept failed", "error", err)
			select {
			case <-s.done:
				return
			case <-time.After(acceptBackoff):
			}
			continue
		}

		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

// handleConn reads one command line, dispatches it and writes the response.
func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(5 * time.Second))

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		return
	}

	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return
	}

	resp := s.dispatch(line)
	data, _ := json.Marshal(resp)
	fmt.Fprintf(conn, "%s\n", data)
}

func (s *Server) dispatch(line string) Response {
	cmd, arg := parseCommand(line)
	switch cmd {
	case "PING":
		return Response{OK: true}
	case "OPEN":
		if arg == "" {
			return Response{Error: "OPEN needs a URL"}
		}
		if err := s.handler.OpenLink(arg); err != nil {
			s.logger.Warn("link not accepted", "url", arg, "error", err)
			return Response{Error: err.Error()}
		}
		s.logger.Debug("link accepted", "url", arg)
		return Response{OK: true}
	}
	return Response{Error: fmt.Sprintf("unknown command %q", cmd)}
}

// parseCommand splits a line into the upper-cased command and the rest of
// the line.
//
// Format:
//
//	PING                         -> cmd="PING", arg=""
//	OPEN bsky://profile/alice    -> cmd="OPEN", arg="bsky://profile/alice"
func parseCommand(line string) (string, string) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	return strings.ToUpper(cmd), strings.TrimSpace(arg)
}
