package transport

import (
	"errors"
	"io"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/indigo-web/webworker/config"
	"github.com/stretchr/testify/require"
)

func testNET() config.NET {
	cfg := config.Default().NET
	cfg.AcceptLoopInterruptPeriod = 50 * time.Millisecond

	return cfg
}

func returnsWithin(t *testing.T, timeout time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})

	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		require.FailNow(t, "call did not return on time")
	}
}

// failingTransport binds fine, but its accept loop fails right away.
type failingTransport struct {
	err    error
	closed atomic.Bool
	waited atomic.Bool
}

func (f *failingTransport) Bind(string) error { return nil }

func (f *failingTransport) Listen(config.NET, func(net.Conn)) error { return f.err }

func (f *failingTransport) Stop() {}

func (f *failingTransport) Close() { f.closed.Store(true) }

func (f *failingTransport) Wait() { f.waited.Store(true) }

func TestSupervisor(t *testing.T) {
	t.Run("stop waits for in-flight connections", func(t *testing.T) {
		tcp := NewTCP()
		sup := NewSupervisor(tcp)
		require.NoError(t, sup.Bind("127.0.0.1:0"))

		accepted, release := make(chan struct{}), make(chan struct{})
		var served atomic.Bool
		errch := make(chan error, 1)
		go func() {
			errch <- sup.Run(testNET(), func(conn net.Conn) {
				close(accepted)
				<-release
				_, _ = conn.Write([]byte("bye"))
				served.Store(true)
			})
		}()

		conn, err := net.Dial("tcp", tcp.Addr().String())
		require.NoError(t, err)
		<-accepted

		stopped := make(chan struct{})
		go func() {
			sup.Stop()
			close(stopped)
		}()

		select {
		case <-stopped:
			require.FailNow(t, "stop returned before the connection was served")
		case <-time.After(100 * time.Millisecond):
		}

		close(release)
		data, err := io.ReadAll(conn)
		require.NoError(t, err)
		require.Equal(t, "bye", string(data))
		require.NoError(t, conn.Close())

		returnsWithin(t, time.Second, func() { <-stopped })
		require.True(t, served.Load())
		require.NoError(t, <-errch)

		_, err = net.Dial("tcp", tcp.Addr().String())
		require.Error(t, err, "listener must be closed")
	})

	t.Run("stop before run", func(t *testing.T) {
		tcp := NewTCP()
		sup := NewSupervisor(tcp)
		require.NoError(t, sup.Bind("127.0.0.1:0"))

		returnsWithin(t, time.Second, sup.Stop)
		var err error
		returnsWithin(t, time.Second, func() {
			err = sup.Run(testNET(), func(net.Conn) {})
		})
		require.NoError(t, err)

		_, err = net.Dial("tcp", tcp.Addr().String())
		require.Error(t, err, "listener must be closed")
	})

	t.Run("failed bind", func(t *testing.T) {
		sup := NewSupervisor(NewTCP())
		require.Error(t, sup.Bind("definitely not an address"))

		returnsWithin(t, time.Second, sup.Stop)
		var err error
		returnsWithin(t, time.Second, func() {
			err = sup.Run(testNET(), func(net.Conn) {})
		})
		require.NoError(t, err)
	})

	t.Run("listen error", func(t *testing.T) {
		boom := errors.New("accept: too many open files")
		transport := &failingTransport{err: boom}
		sup := NewSupervisor(transport)
		require.NoError(t, sup.Bind(""))

		require.ErrorIs(t, sup.Run(testNET(), func(net.Conn) {}), boom)
		require.True(t, transport.waited.Load())
		require.True(t, transport.closed.Load())

		returnsWithin(t, time.Second, sup.Stop)
	})

	t.Run("repeated stop", func(t *testing.T) {
		sup := NewSupervisor(NewTCP())
		require.NoError(t, sup.Bind("127.0.0.1:0"))

		errch := make(chan error, 1)
		go func() {
			errch <- sup.Run(testNET(), func(net.Conn) {})
		}()

		time.Sleep(50 * time.Millisecond)
		returnsWithin(t, time.Second, sup.Stop)
		returnsWithin(t, time.Second, sup.Stop)
		require.NoError(t, <-errch)
	})
}
