package worker

import (
	"bytes"
	"errors"
	"os"

	"github.com/indigo-web/utils/uf"
	"github.com/indigo-web/webworker/http/status"
	"github.com/indigo-web/webworker/transport"
)

// SentinelPath is the path of a request that carried no GET line.
const SentinelPath = " "

type Request struct {
	// Path is the request target exactly as it was sent, e.g. /index.html
	Path string
}

// Parser consumes request lines until the blank line terminating the headers. Only
// the GET line is meaningful, everything else is logged and skipped.
type Parser struct {
	line    []byte
	maxLine int
	log     Logger
}

func NewParser(maxLine int, log Logger) *Parser {
	return &Parser{
		line:    make([]byte, 0, min(maxLine, 512)),
		maxLine: maxLine,
		log:     log,
	}
}

// Parse never fails: read errors and malformed lines stop the parsing, leaving whatever
// path was captured so far (SentinelPath if none).
func (p *Parser) Parse(client transport.Client) Request {
	request := Request{Path: SentinelPath}

	for {
		line, err := p.readLine(client)
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				err = status.ErrRequestTimeout
			}

			p.log.Printf("request error: %s", err)
			break
		}

		p.log.Printf("request line: (%s)", uf.B2S(line))

		if len(line) == 0 {
			break
		}

		if len(line) < 3 {
			p.log.Printf("request error: %s", status.ErrMalformedLine)
			break
		}

		if uf.B2S(line[:3]) != "GET" {
			continue
		}

		if len(line) < 4 {
			p.log.Printf("request error: %s", status.ErrMalformedLine)
			break
		}

		// a target without the trailing protocol (HTTP/0.9 style) is still captured,
		// but nothing after such a line is trusted
		target, complete := requestTarget(line)
		// the line buffer is reused, so the path must be copied out of it
		request.Path = string(target)
		p.log.Printf("request file is: %s", request.Path)

		if !complete {
			p.log.Printf("request error: %s", status.ErrMalformedLine)
			break
		}
	}

	return request
}

// requestTarget returns the token between "GET " and the next space. If there's no
// space, the whole rest of the line is returned and complete is false.
func requestTarget(line []byte) (target []byte, complete bool) {
	target, _, complete = bytes.Cut(line[4:], space)
	return target, complete
}

var space = []byte{' '}

// readLine returns the next line without its terminator. The returned slice is valid
// until the next call.
func (p *Parser) readLine(client transport.Client) ([]byte, error) {
	p.line = p.line[:0]

	for {
		data, err := client.Read()
		if err != nil {
			return nil, err
		}

		lf := bytes.IndexByte(data, '\n')
		if lf == -1 {
			if len(p.line)+len(data) > p.maxLine {
				return nil, status.ErrTooLongRequestLine
			}

			p.line = append(p.line, data...)
			continue
		}

		if len(p.line)+lf > p.maxLine {
			return nil, status.ErrTooLongRequestLine
		}

		p.line = append(p.line, data[:lf]...)
		if lf+1 < len(data) {
			client.Pushback(data[lf+1:])
		}

		return rstripCR(p.line), nil
	}
}

func rstripCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}

	return b
}
