package status

import "strconv"

type (
	Code   uint16
	Status string
)

// The worker only ever answers with a couple of codes. The rest classify request errors.
const (
	OK Code = 200 // RFC 9110, 15.3.1

	BadRequest     Code = 400 // RFC 9110, 15.5.1
	NotFound       Code = 404 // RFC 9110, 15.5.5
	RequestTimeout Code = 408 // RFC 9110, 15.5.9
	URITooLong     Code = 414 // RFC 9110, 15.5.15
)

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case RequestTimeout:
		return "Request Timeout"
	case URITooLong:
		return "URI Too Long"
	default:
		return ""
	}
}

// Line returns a complete HTTP/1.1 status line, CRLF included.
func Line(code Code) string {
	switch code {
	case OK:
		return okLine
	case NotFound:
		return notFoundLine
	default:
		return "HTTP/1.1 " + strconv.Itoa(int(code)) + " " + string(Text(code)) + "\r\n"
	}
}

const (
	okLine       = "HTTP/1.1 200 OK\r\n"
	notFoundLine = "HTTP/1.1 404 Not Found\r\n"
)
