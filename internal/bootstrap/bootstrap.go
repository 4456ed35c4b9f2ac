package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"minihttp/internal/config"
	"minihttp/internal/fileserver"
	"minihttp/internal/storage"
	"minihttp/internal/transport"
	"minihttp/internal/version"
)

type Bootstrap struct {
	Config     config.Config
	HTTPServer transport.Transport
	ErrChan    chan error
	SignalChan chan os.Signal
}

func New(conf config.Config) (*Bootstrap, error) {
	info, err := os.Stat(conf.RootDir())
	if err != nil {
		return nil, fmt.Errorf("serving root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("serving root %s is not a directory", conf.RootDir())
	}

	handler := fileserver.New(storage.NewDir(conf.RootDir()), fileserver.Config{
		DefaultDocument: conf.DefaultDocument(),
		ServerName:      version.ServerName(),
		BufferSize:      conf.BufferSize(),
		MaxRequestSize:  conf.MaxRequestSize(),
	})

	return &Bootstrap{
		Config:     conf,
		HTTPServer: transport.NewHTTPServer(conf.HTTPPort(), handler, conf.ReadTimeout()),
		ErrChan:    make(chan error, 5),
		SignalChan: make(chan os.Signal, 1),
	}, nil
}

func serveHTTP(server transport.Transport, ln net.Listener, errChan chan<- error) {
	if err := server.Serve(ln); err != nil && !errors.Is(err, net.ErrClosed) {
		errChan <- fmt.Errorf("error when serving http server: %w", err)
	}
}

func startPprof(pprofPort string, errChan chan<- error) {
	pprofAddr := fmt.Sprintf("localhost:%s", pprofPort)
	log.Printf("Starting pprof server on http://%s/debug/pprof/", pprofAddr)
	if err := http.ListenAndServe(pprofAddr, nil); err != nil {
		errChan <- fmt.Errorf("pprof server error: %v", err)
	}
}

func (b *Bootstrap) Run() error {
	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	ln, err := b.HTTPServer.Listen()
	if err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}
	defer func() {
		if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Printf("Failed to close listener: %v", err)
		}
	}()

	go serveHTTP(b.HTTPServer, ln, b.ErrChan)

	if b.Config.PprofEnabled() {
		go startPprof(b.Config.PprofPort(), b.ErrChan)
	}

	log.Printf("%s serving %s on %s", version.GetVersion(), b.Config.RootDir(), ln.Addr())

	select {
	case err = <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		log.Printf("Received signal %s, shutting down", sig)
		return nil
	}
}
