package linkipc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"time"
)

// Send asks the shell listening on socketPath to open url.
func Send(ctx context.Context, socketPath, url string) error {
	if strings.ContainsAny(url, "\r\n") {
		return fmt.Errorf("%w: url contains a line break", ErrRejected)
	}
	_, err := roundTrip(ctx, socketPath, "OPEN "+url)
	return err
}

// Ping reports whether a shell is listening on socketPath.
func Ping(ctx context.Context, socketPath string) error {
	_, err := roundTrip(ctx, socketPath, "PING")
	return err
}

// roundTrip opens a connection, sends one command and decodes the reply.
func roundTrip(ctx context.Context, socketPath, cmd string) (Response, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrNoServer, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	} else {
		conn.SetDeadline(time.Now().Add(5 * time.Second))
	}

	if _, err := fmt.Fprintf(conn, "%s\n", cmd); err != nil {
		return Response{}, fmt.Errorf("send command: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return Response{}, fmt.Errorf("read response: %w", err)
		}
		return Response{}, fmt.Errorf("empty response from shell")
	}

	var resp Response
	if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
		return Response{}, fmt.Errorf("decode response: %w", err)
	}
	if !resp.OK {
		return resp, fmt.Errorf("%w: %s", ErrRejected, resp.Error)
	}
	return resp, nil
}
