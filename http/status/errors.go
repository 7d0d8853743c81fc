package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrMalformedLine      = NewError(BadRequest, "malformed request line")
	ErrTooLongRequestLine = NewError(URITooLong, "request line is too long")
	ErrRequestTimeout     = NewError(RequestTimeout, "request timeout")
)
