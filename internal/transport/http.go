package transport

import (
	"errors"
	"log"
	"net"
	"time"
)

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

type httpServer struct {
	handler *httpHandler
	port    string
	sleep   func(time.Duration)
}

func NewHTTPServer(port string, handler Handler, readTimeout time.Duration) Transport {
	return &httpServer{
		handler: newHTTPHandler(handler, readTimeout),
		port:    port,
		sleep:   time.Sleep,
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", ":"+ht.port)
}

// Serve handles accepted connections one at a time, in order. The next
// Accept happens only after the previous connection has been closed.
// Repeated Accept failures back off from minAcceptDelay up to
// maxAcceptDelay so that persistent errors such as EMFILE do not spin.
func (ht *httpServer) Serve(listener net.Listener) error {
	log.Printf("HTTP server is listening on %s (one request at a time)", listener.Addr())
	var delay time.Duration
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			if delay == 0 {
				delay = minAcceptDelay
			} else {
				delay = min(2*delay, maxAcceptDelay)
			}
			log.Printf("Error accepting connection: %v; retrying in %v", err, delay)
			ht.sleep(delay)
			continue
		}
		delay = 0

		ht.handler.handle(conn)
	}
}
