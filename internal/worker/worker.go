package worker

import (
	"bufio"
	"net"

	"github.com/indigo-web/webworker/config"
	"github.com/indigo-web/webworker/http/mime"
	"github.com/indigo-web/webworker/http/status"
	"github.com/indigo-web/webworker/internal/timer"
	"github.com/indigo-web/webworker/transport"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

// Worker answers exactly one request per connection. It holds nothing but settings,
// so a single instance serves all the connections concurrently.
type Worker struct {
	net config.NET
	cfg config.Worker
	log Logger
}

func New(cfg *config.Config, log Logger) *Worker {
	return &Worker{
		net: cfg.NET,
		cfg: cfg.Worker,
		log: log,
	}
}

// Serve handles the connection and logs the failure, if any. It's meant to be used as
// a transport callback, which owns and closes the connection afterwards.
func (w *Worker) Serve(conn net.Conn) {
	w.log.Printf("handling connection...")

	if err := w.Handle(conn); err != nil {
		w.log.Printf("output error: %s", err)
	}

	w.log.Printf("done handling connection.")
}

// Handle reads the request, then writes the header and the body. Only output errors
// are returned: the request parsing recovers from everything on its own.
func (w *Worker) Handle(conn net.Conn) error {
	client := transport.NewClient(conn, w.net.ReadTimeout, make([]byte, w.net.ReadBufferSize))
	request := NewParser(w.cfg.MaxLineSize, w.log).Parse(client)
	resource := Resolve(w.cfg.Root, request.Path)
	w.log.Printf("GET %q %d %s", request.Path, resource.Status, status.Text(resource.Status))

	out := bufio.NewWriterSize(conn, w.net.WriteBufferSize)
	err := WriteHeader(out, resource, HeaderFields{
		Date:        timer.Date(),
		Server:      w.cfg.ServerName,
		ContentType: mime.HTML,
	})
	if err != nil {
		return err
	}

	err = WriteContent(out, resource, ContentFields{
		Mode:      w.cfg.Content,
		Date:      timer.Now().Format(w.cfg.DateLayout),
		Signature: w.cfg.ServerSignature,
	})
	if err != nil {
		return err
	}

	return out.Flush()
}
