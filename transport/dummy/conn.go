package dummy

import (
	"errors"
	"io"
	"net"
	"time"
)

// ErrBroken is returned by every write into a broken Conn.
var ErrBroken = errors.New("dummy: broken pipe")

// Conn is an in-memory net.Conn. Reads drain the initial data and then return io.EOF,
// writes are journaled into Data.
type Conn struct {
	Data   []byte
	in     []byte
	broken bool
}

func NewConn(in ...string) *Conn {
	c := new(Conn)
	for _, piece := range in {
		c.in = append(c.in, piece...)
	}

	return c
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if len(c.in) == 0 {
		return 0, io.EOF
	}

	n = copy(b, c.in)
	c.in = c.in[n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.broken {
		return 0, ErrBroken
	}

	c.Data = append(c.Data, b...)
	return len(b), nil
}

func (c *Conn) Close() error {
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return nil
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}

// Broken makes every write fail with ErrBroken.
func (c *Conn) Broken() *Conn {
	c.broken = true
	return c
}
