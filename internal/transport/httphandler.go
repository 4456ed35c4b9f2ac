package transport

import (
	"errors"
	"log"
	"net"
	"time"
)

type httpHandler struct {
	handler     Handler
	readTimeout time.Duration
}

func newHTTPHandler(handler Handler, readTimeout time.Duration) *httpHandler {
	return &httpHandler{
		handler:     handler,
		readTimeout: readTimeout,
	}
}

func (hh *httpHandler) handle(conn net.Conn) {
	defer hh.closeConnection(conn)
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("Recovered from panic while serving %s: %v", conn.RemoteAddr(), rec)
		}
	}()

	log.Printf("Client connected from %s", conn.RemoteAddr())

	if hh.readTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(hh.readTimeout)); err != nil {
			log.Printf("Failed to set read deadline: %v", err)
		}
	}

	resp := hh.handler.Serve(conn)
	if resp == nil {
		return
	}

	if _, err := conn.Write(resp); err != nil {
		log.Printf("Failed to write response to %s: %v", conn.RemoteAddr(), err)
	}
}

func (hh *httpHandler) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("Error closing connection: %v", err)
	}
}
