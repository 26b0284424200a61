/*
Headless host application for the transform pipeline: it stands in for
a windowed renderer, driving frames against the no-op backend.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/prisma/engine"
	"github.com/spaghettifunk/prisma/engine/config"
)

func main() {
	cfg, err := config.Load("prisma.toml")
	if err != nil {
		panic(err)
	}

	eng, err := engine.New(cfg)
	if err != nil {
		panic(err)
	}

	if err := eng.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		_ = eng.Shutdown()
	}()

	// run engine
	if err := eng.Run(); err != nil {
		panic(err)
	}
}
