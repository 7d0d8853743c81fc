package transport

import (
	"net"
	"sync"

	"github.com/indigo-web/webworker/config"
)

type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Stop()
	Close()
	Wait()
}

// Supervisor owns the lifecycle of a single transport: binding it, running the accept
// loop and shutting it down exactly once, no matter which of Run and Stop comes first.
type Supervisor struct {
	t       Transport
	mu      sync.Mutex
	running bool
	stopped bool
	done    chan struct{}
}

func NewSupervisor(t Transport) *Supervisor {
	return &Supervisor{
		t:    t,
		done: make(chan struct{}),
	}
}

// Bind binds the transport. A failed bind leaves the supervisor stopped, so both Run
// and Stop return immediately afterwards.
func (s *Supervisor) Bind(addr string) error {
	if err := s.t.Bind(addr); err != nil {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()

		return err
	}

	return nil
}

// Run accepts connections until Stop is called or the transport fails. By the moment
// it returns, every accepted connection is done and the transport is closed.
func (s *Supervisor) Run(cfg config.NET, cb func(conn net.Conn)) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}

	if s.stopped {
		s.mu.Unlock()
		// the transport might have been bound after an early Stop
		s.t.Close()
		return nil
	}

	s.running = true
	s.mu.Unlock()

	defer close(s.done)

	err := s.t.Listen(cfg, cb)

	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.t.Stop()
	s.t.Wait()
	s.t.Close()

	return err
}

// Stop makes Run return and waits until it does. If Run was never started, the
// transport is just closed. Stop never blocks in any other case.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	running, stopped := s.running, s.stopped
	s.stopped = true
	s.mu.Unlock()

	if running {
		s.t.Stop()
		<-s.done
		return
	}

	if !stopped {
		s.t.Close()
	}
}
