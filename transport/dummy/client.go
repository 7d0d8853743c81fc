package dummy

import (
	"io"

	"github.com/indigo-web/webworker/transport"
)

var _ transport.Client = new(Client)

// Client returns the pieces it was initialised with, one per read, and io.EOF after
// they run out (or the configured error, if any).
type Client struct {
	pointer int
	tmp     []byte
	data    [][]byte
	err     error
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data: data,
		err:  io.EOF,
	}
}

// NewStringClient is the same as NewMockClient, but for strings.
func NewStringClient(pieces ...string) *Client {
	data := make([][]byte, len(pieces))
	for i, piece := range pieces {
		data[i] = []byte(piece)
	}

	return NewMockClient(data...)
}

func (c *Client) Read() (data []byte, err error) {
	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.pointer >= len(c.data) {
		return nil, c.err
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Pushback(takeback []byte) {
	c.tmp = takeback
}

// FailWith replaces io.EOF returned after the last piece.
func (c *Client) FailWith(err error) *Client {
	c.err = err
	return c
}
