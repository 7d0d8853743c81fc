package worker

import (
	"bufio"
	"io"
	"os"

	"github.com/indigo-web/utils/uf"
	"github.com/indigo-web/webworker/config"
	"github.com/indigo-web/webworker/http/status"
)

const (
	dateTag   = "<cs371date>"
	serverTag = "<cs371server>"

	notFoundBody = "<h3>Error: 404 not found</h3>"
)

type ContentFields struct {
	Mode config.ContentMode
	// Date replaces every line consisting of the date tag only
	Date string
	// Signature replaces every line consisting of the server tag only
	Signature string
}

// WriteContent writes the response body: the file, with tag lines substituted, or the
// not-found fragment. In config.FirstLine mode only the first line of the file is
// examined and written.
func WriteContent(w io.Writer, res Resource, fields ContentFields) error {
	if res.Status != status.OK {
		_, err := w.Write(uf.S2B(notFoundBody))
		return err
	}

	file, err := os.Open(res.Name)
	if err != nil {
		return err
	}

	defer file.Close()

	return copyContent(w, bufio.NewReader(file), fields)
}

func copyContent(w io.Writer, r *bufio.Reader, fields ContentFields) error {
	// midline is set when the previous chunk didn't fit into the reader's buffer, so the
	// current one is a continuation of a long line and can't be a tag
	var midline bool

	for {
		chunk, err := r.ReadSlice('\n')
		if len(chunk) > 0 {
			if werr := writeLine(w, chunk, midline, fields); werr != nil {
				return werr
			}

			midline = err == bufio.ErrBufferFull
			if fields.Mode == config.FirstLine && !midline {
				return nil
			}
		}

		switch err {
		case nil, bufio.ErrBufferFull:
		case io.EOF:
			return nil
		default:
			return err
		}
	}
}

func writeLine(w io.Writer, line []byte, midline bool, fields ContentFields) error {
	if midline {
		_, err := w.Write(line)
		return err
	}

	text, eol := splitEOL(line)

	var replacement string
	switch uf.B2S(text) {
	case dateTag:
		replacement = fields.Date
	case serverTag:
		replacement = fields.Signature
	default:
		_, err := w.Write(line)
		return err
	}

	if _, err := w.Write(uf.S2B(replacement)); err != nil {
		return err
	}

	_, err := w.Write(eol)
	return err
}

// splitEOL separates the line terminator (\n or \r\n), if any.
func splitEOL(line []byte) (text, eol []byte) {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}

	return line[:n], line[n:]
}
