package transport

import (
	"io"
	"net"
)

type Transport interface {
	Listen() (net.Listener, error)
	Serve(listener net.Listener) error
}

// Handler turns the bytes of one request into the bytes of its response.
// A nil result means nothing is written back.
type Handler interface {
	Serve(r io.Reader) []byte
}
