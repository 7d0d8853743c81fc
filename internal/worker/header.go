package worker

import (
	"io"

	"github.com/indigo-web/webworker/http/mime"
	"github.com/indigo-web/webworker/http/status"
)

const (
	crlf        = "\r\n"
	date        = "Date: "
	server      = "Server: "
	connClose   = "Connection: close\r\n"
	contentType = "Content-Type: "
)

type HeaderFields struct {
	// Date must be already rendered in the RFC 1123 GMT form
	Date        string
	Server      string
	ContentType mime.MIME
}

// WriteHeader renders the status line and the fixed header set, terminated by the blank
// line, and writes them at once. Content-Length is never sent: the response is delimited
// by closing the connection.
func WriteHeader(w io.Writer, res Resource, fields HeaderFields) error {
	_, err := w.Write(renderHeader(make([]byte, 0, 128), res.Status, fields))
	return err
}

func renderHeader(buff []byte, code status.Code, fields HeaderFields) []byte {
	buff = append(buff, status.Line(code)...)
	buff = append(append(append(buff, date...), fields.Date...), crlf...)
	buff = append(append(append(buff, server...), fields.Server...), crlf...)
	buff = append(buff, connClose...)
	buff = append(append(append(buff, contentType...), fields.ContentType...), crlf...)

	return append(buff, crlf...)
}
