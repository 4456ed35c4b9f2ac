package fileserver

import (
	"fmt"
	"io"
	"log"
	"time"

	"minihttp/internal/http/contenttype"
	"minihttp/internal/http/header"
	"minihttp/internal/http/response"
	"minihttp/internal/http/stream"
	"minihttp/internal/http/target"
	"minihttp/internal/storage"

	"github.com/dustin/go-humanize"
)

const (
	methodGet             = "GET"
	defaultBufferSize     = 4096
	defaultMaxRequestSize = 65536
)

type Config struct {
	DefaultDocument string
	ServerName      string
	BufferSize      int
	MaxRequestSize  int
}

// Handler serves one request from a raw byte stream.
type Handler struct {
	storage         storage.Storage
	defaultDocument string
	serverName      string
	bufferSize      int
	maxRequestSize  int
	now             func() time.Time
}

func New(store storage.Storage, cfg Config) *Handler {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}
	if cfg.MaxRequestSize < cfg.BufferSize {
		cfg.MaxRequestSize = max(defaultMaxRequestSize, cfg.BufferSize)
	}
	return &Handler{
		storage:         store,
		defaultDocument: cfg.DefaultDocument,
		serverName:      cfg.ServerName,
		bufferSize:      cfg.BufferSize,
		maxRequestSize:  cfg.MaxRequestSize,
		now:             time.Now,
	}
}

// Serve reads one request from r and returns the wire bytes of the
// response, or nil when nothing should be sent.
func (h *Handler) Serve(r io.Reader) []byte {
	msg := h.Handle(r)
	if msg == nil {
		return nil
	}
	return msg.Finalize(h.now(), h.serverName)
}

// Handle runs the request through parsing, resolution and lookup. It
// returns nil only when the peer sent no bytes at all. A panic while
// assembling the response becomes a 500.
func (h *Handler) Handle(r io.Reader) (msg *response.Message) {
	ex := &exchange{handler: h, reader: r}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("Recovered from panic while handling request: %v", rec)
			msg = response.InternalError()
		}
	}()

	for state := awaitRequestLine; state != nil; {
		state = state(ex)
	}

	if ex.res != nil {
		ex.logAccess()
	}
	return ex.res
}

type exchange struct {
	handler  *Handler
	reader   io.Reader
	raw      []byte
	req      header.RequestHeader
	resolved string
	res      *response.Message
}

type stateFunc func(*exchange) stateFunc

func awaitRequestLine(ex *exchange) stateFunc {
	raw, err := stream.ReadHead(ex.reader, ex.handler.bufferSize, ex.handler.maxRequestSize)
	if err != nil {
		log.Printf("Error reading request: %v", err)
	}
	if len(raw) == 0 {
		return nil
	}
	ex.raw = raw
	return parseRequestLine
}

func parseRequestLine(ex *exchange) stateFunc {
	req, err := header.NewRequest(ex.raw)
	if err != nil {
		log.Printf("Error parsing request line: %v", err)
		ex.res = response.BadRequest()
		return nil
	}
	ex.req = req

	if req.Method() != methodGet {
		ex.res = response.MethodNotAllowed()
		return nil
	}
	return resolvePath
}

func resolvePath(ex *exchange) stateFunc {
	resolved, err := target.Resolve(ex.req.Path(), ex.handler.defaultDocument)
	if err != nil {
		log.Printf("Rejected target %q: %v", ex.req.Path(), err)
		ex.res = response.Rejected()
		return nil
	}
	ex.resolved = resolved
	return lookupResource
}

func lookupResource(ex *exchange) stateFunc {
	res := ex.handler.storage.Lookup(ex.resolved)
	switch res.Status {
	case storage.Found:
		ex.res = response.New(200, res.Data, contenttype.ByPath(ex.resolved))
	case storage.NotFound:
		ex.res = response.NotFound()
	case storage.Failed:
		log.Printf("Error reading %s: %v", ex.resolved, res.Err)
		ex.res = response.InternalError()
	default:
		panic(fmt.Sprintf("unexpected lookup status %v", res.Status))
	}
	return nil
}

func (ex *exchange) logAccess() {
	method, path := "-", "-"
	if ex.req != nil {
		method, path = ex.req.Method(), ex.req.Path()
	}
	log.Printf("%s %s -> %d %s (%s)", method, path, ex.res.Status,
		header.StatusText(ex.res.Status), humanize.Bytes(uint64(len(ex.res.Body))))
}
