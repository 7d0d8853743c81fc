package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/webworker"
	"github.com/indigo-web/webworker/config"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	root := flag.String("root", "", "directory to serve files from (overrides the config)")
	cfgPath := flag.String("config", "", "path to a JSON config file")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}

	if *root != "" {
		cfg.Worker.Root = *root
	}

	app := webworker.New(*addr).Tune(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		app.Stop()
	}()

	if err := app.Serve(); err != nil {
		log.Fatal(err)
	}
}
