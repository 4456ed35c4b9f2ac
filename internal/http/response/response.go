// Package response assembles complete HTTP/1.1 responses. Every message
// carries Date, Server, Content-Length and "Connection: close"; only 200
// responses carry Content-Type.
package response

import (
	"strconv"
	"time"

	"minihttp/internal/http/header"
)

// TimeFormat is the Date header layout. Times are rendered in UTC.
const TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

var (
	BadRequestBody       = []byte("Bad Request")
	MethodNotAllowedBody = []byte("Only GET supported")
	NotFoundBody         = []byte("<h1>404 Not Found</h1>")
	RejectedBody         = []byte("Not Found")
	InternalErrorBody    = []byte("Internal Server Error")
)

type Message struct {
	Status      int
	ContentType string
	Body        []byte
}

func New(status int, body []byte, contentType string) *Message {
	return &Message{
		Status:      status,
		ContentType: contentType,
		Body:        body,
	}
}

func BadRequest() *Message       { return New(400, BadRequestBody, "") }
func MethodNotAllowed() *Message { return New(405, MethodNotAllowedBody, "") }
func NotFound() *Message         { return New(404, NotFoundBody, "") }

// Rejected answers a target that resolves above the serving root.
func Rejected() *Message { return New(404, RejectedBody, "") }
func InternalError() *Message    { return New(500, InternalErrorBody, "") }

// Header builds the header block for m.
func (m *Message) Header(now time.Time, server string) header.ResponseHeader {
	h := header.NewResponse(m.Status)
	h.Set("Date", now.UTC().Format(TimeFormat))
	h.Set("Server", server)
	h.Set("Content-Length", strconv.Itoa(len(m.Body)))
	h.Set("Connection", "close")
	if m.Status == 200 && m.ContentType != "" {
		h.Set("Content-Type", m.ContentType)
	}
	return h
}

// Finalize renders the status line, headers and body as sent on the wire.
func (m *Message) Finalize(now time.Time, server string) []byte {
	head := m.Header(now, server).Finalize()
	out := make([]byte, 0, len(head)+len(m.Body))
	out = append(out, head...)
	return append(out, m.Body...)
}
