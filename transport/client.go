package transport

import (
	"net"
	"time"

	"github.com/indigo-web/webworker/internal/timer"
)

// Client is the reading side of a connection. Responses are written straight into
// the net.Conn, so only reads need the deadline and pushback handling.
type Client interface {
	Read() ([]byte, error)
	Pushback([]byte)
}

type client struct {
	conn    net.Conn
	buff    []byte
	pending []byte
	timeout time.Duration
}

func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		buff:    buff,
		conn:    conn,
		timeout: timeout,
	}
}

// Read reads data into the internal buffer and returns a piece of it back. Every read from
// the connection is bounded by the timeout, so a silent peer results in an error instead
// of stalling forever. The returned slice is valid until the next call.
func (c *client) Read() ([]byte, error) {
	if len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil

		return pending, nil
	}

	if c.timeout > 0 {
		if err := c.conn.SetReadDeadline(timer.Now().Add(c.timeout)); err != nil {
			return nil, err
		}
	}

	n, err := c.conn.Read(c.buff)
	return c.buff[:n], err
}

// Pushback preserves a chunk of data from previous read for the next read.
func (c *client) Pushback(b []byte) {
	c.pending = b
}
