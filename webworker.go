package webworker

import (
	"log"
	"net"

	"github.com/indigo-web/webworker/config"
	"github.com/indigo-web/webworker/internal/worker"
	"github.com/indigo-web/webworker/transport"
)

type Logger = worker.Logger

// App binds a TCP listener and answers one request per accepted connection with
// a file from the configured root.
type App struct {
	addr       string
	cfg        *config.Config
	log        Logger
	hooks      hooks
	tcp        *transport.TCP
	supervisor *transport.Supervisor
}

// New returns a new App instance.
func New(addr string) *App {
	tcp := transport.NewTCP()

	return &App{
		addr:       addr,
		cfg:        config.Default(),
		log:        log.Default(),
		tcp:        tcp,
		supervisor: transport.NewSupervisor(tcp),
	}
}

// Tune replaces default settings.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger replaces the default logger, which is log.Default().
func (a *App) Logger(logger Logger) *App {
	a.log = logger
	return a
}

// NotifyOnStart calls the callback at the moment the listener is bound, right
// before the accept loop starts.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback after the accept loop is stopped and every
// in-flight connection is done.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve binds the address and blocks until Stop is called or accepting fails.
func (a *App) Serve() error {
	if err := a.supervisor.Bind(a.addr); err != nil {
		return err
	}

	a.log.Printf("serving %s on %s", a.cfg.Worker.Root, a.tcp.Addr())
	callIfNotNil(a.hooks.OnStart)
	err := a.supervisor.Run(a.cfg.NET, worker.New(a.cfg, a.log).Serve)
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Addr returns the bound address. It's nil until the App started serving.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Stop stops accepting new connections and waits until the in-flight ones are
// done. Called before Serve, it makes Serve return right after binding.
func (a *App) Stop() {
	a.supervisor.Stop()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
